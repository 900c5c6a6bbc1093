package platform

// Package platform contains OS and filesystem glue kept out of the
// download pipeline: source URL validation, destination directory
// handling, and default download locations.
