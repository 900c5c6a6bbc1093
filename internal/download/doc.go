// Package download implements the downloader orchestrator: it validates
// a request, verifies the external toolchain, hands yt-dlp (via
// github.com/lrstanley/go-ytdlp) a declarative format selection that
// merges the best video stream of at most 1080p with the best audio
// stream, and resolves the path of the merged output file. Each
// invocation runs one linear pass from request to merged result;
// retries, resume and caching are deliberately absent.
package download
