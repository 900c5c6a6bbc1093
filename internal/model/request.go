package model

import (
	"fmt"
	"strings"
	"time"
)

// Quality selects which declarative format expression is handed to the
// extraction tool. The zero value is QualityBest.
type Quality string

const (
	// QualityBest requests the best video stream capped at 1080p plus
	// the best audio stream, merged into one container.
	QualityBest Quality = "best"

	// QualityLowest requests the smallest available video and audio
	// streams, merged. Useful for quick previews and slow links.
	QualityLowest Quality = "lowest"

	// QualityAudio requests the best audio stream only.
	QualityAudio Quality = "audio"
)

// Valid reports whether q is one of the recognized presets.
func (q Quality) Valid() bool {
	switch q {
	case QualityBest, QualityLowest, QualityAudio:
		return true
	}
	return false
}

// DownloadRequest describes a single download invocation. URL is
// required; everything else falls back to configured defaults.
type DownloadRequest struct {
	URL           string
	OutputDir     string        // destination directory; cwd if empty
	Template      string        // output filename template, e.g. "%(title)s.%(ext)s"
	Quality       Quality       // format preset; QualityBest if empty
	MergeFormat   string        // container override for the merged file, e.g. "mkv"
	Proxy         string        // forwarded to the extraction tool verbatim
	SocketTimeout time.Duration // network timeout pass-through; 0 means tool default
	Restrict      bool          // restrict output filenames to ASCII
}

// DownloadResult is returned once per successful invocation.
type DownloadResult struct {
	OutputPath string        // resolved path of the merged media file
	Title      string        // video title as reported by the extractor
	Elapsed    time.Duration // wall time of the whole operation
}

// Progress is a point-in-time snapshot of a running download, suitable
// for rendering on a terminal status line.
type Progress struct {
	Status          TaskStatus
	Percent         int     // 0 to 100
	DownloadedBytes int64   // bytes fetched so far
	TotalBytes      int64   // 0 if unknown
	Speed           float64 // bytes per second, 0 if unknown
	ETASec          int     // -1 if unknown
	Title           string
}

// ETAString returns the ETA formatted as mm:ss or hh:mm:ss, or "--"
// when unknown.
func (p Progress) ETAString() string {
	if p.ETASec < 0 {
		return "--"
	}
	hours := p.ETASec / 3600
	minutes := (p.ETASec % 3600) / 60
	seconds := p.ETASec % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// DisplayTitle returns the best short label for the result: the title if
// known, otherwise the output filename without its extension.
func (r DownloadResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	path := r.OutputPath
	parts := strings.FieldsFunc(path, func(c rune) bool {
		return c == '/' || c == '\\'
	})
	if len(parts) == 0 {
		return path
	}
	name := parts[len(parts)-1]
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
