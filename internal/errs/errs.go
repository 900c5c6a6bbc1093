// Package errs defines the error taxonomy shared by the download
// pipeline. Every failure surfaced to the CLI wraps exactly one of the
// sentinel errors below so the reporting boundary can map it to an exit
// code without string matching.
package errs

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedSource indicates the URL does not correspond to a
	// downloadable video: malformed, removed, private, or restricted.
	ErrUnsupportedSource = errors.New("unsupported source")
	// ErrMissingDependency indicates a required external tool is not
	// available on the system path.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrTransport indicates a network-level failure reaching the video
	// service. Potentially transient, but never retried here.
	ErrTransport = errors.New("transport failure")
	// ErrStorage indicates the output file could not be written.
	ErrStorage = errors.New("storage failure")
)

// Kind identifies which taxonomy bucket an error belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnsupportedSource
	KindMissingDependency
	KindTransport
	KindStorage
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsupportedSource:
		return "unsupported source"
	case KindMissingDependency:
		return "missing dependency"
	case KindTransport:
		return "transport"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// KindOf reports the taxonomy bucket of err, or KindUnknown if err does
// not wrap one of the sentinels.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrUnsupportedSource):
		return KindUnsupportedSource
	case errors.Is(err, ErrMissingDependency):
		return KindMissingDependency
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrStorage):
		return KindStorage
	default:
		return KindUnknown
	}
}

// Markers yt-dlp prints for failures we must classify. The tool reports
// extraction problems on stderr as "ERROR: ..." lines; these substrings
// are stable across releases and are the same ones the upstream test
// suite greps for.
var (
	unsupportedMarkers = []string{
		"video unavailable",
		"private video",
		"this video is not available",
		"sign in to confirm your age",
		"age-restricted",
		"not available in your country",
		"is not a valid url",
		"unsupported url",
		"unable to extract",
		"members-only",
		"account associated with this video has been terminated",
	}
	transportMarkers = []string{
		"unable to download webpage",
		"unable to download video data",
		"connection refused",
		"connection reset",
		"timed out",
		"temporary failure in name resolution",
		"no address associated with hostname",
		"network is unreachable",
		"http error 5",
		"got error: ",
	}
	storageMarkers = []string{
		"no space left on device",
		"permission denied",
		"read-only file system",
		"unable to open for writing",
		"file name too long",
	}
)

// Classify wraps err with the sentinel matching the yt-dlp failure text.
// The original error stays in the chain. Errors that already carry a
// sentinel are returned unchanged, and errors with no recognizable
// marker are left unclassified rather than guessed at.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindUnknown {
		return err
	}

	msg := strings.ToLower(err.Error())
	for _, m := range unsupportedMarkers {
		if strings.Contains(msg, m) {
			return &classified{sentinel: ErrUnsupportedSource, cause: err}
		}
	}
	for _, m := range storageMarkers {
		if strings.Contains(msg, m) {
			return &classified{sentinel: ErrStorage, cause: err}
		}
	}
	for _, m := range transportMarkers {
		if strings.Contains(msg, m) {
			return &classified{sentinel: ErrTransport, cause: err}
		}
	}
	return err
}

type classified struct {
	sentinel error
	cause    error
}

func (c *classified) Error() string {
	return c.sentinel.Error() + ": " + c.cause.Error()
}

func (c *classified) Unwrap() []error {
	return []error{c.sentinel, c.cause}
}
