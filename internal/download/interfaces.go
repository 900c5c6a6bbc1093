package download

import (
	"context"
	"time"

	"github.com/ytgrab/ytgrab/internal/model"
)

// Downloader is the orchestrator contract consumed by the CLI.
type Downloader interface {
	// SetProgressCallback registers a callback invoked with progress
	// snapshots while a download runs.
	SetProgressCallback(func(model.Progress))

	// Download executes one request synchronously and returns the
	// resolved result. Errors wrap the sentinels in internal/errs.
	Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadResult, error)
}

// CommandSpec is the fixed set of options handed to the extraction
// tool. It is the compile-time-checkable surface of the otherwise
// open-ended yt-dlp option space.
type CommandSpec struct {
	URL           string
	Format        string // declarative format selection expression
	OutputTmpl    string // output path template, directory already joined
	MergeFormat   string // "" lets the tool pick the container
	Proxy         string
	SocketTimeout time.Duration
	Restrict      bool // restrict filenames to ASCII
	Overwrite     bool // replace an existing file with the same name
}

// Extraction is what the orchestrator needs back from the extraction
// tool: where the merged file ended up and what the video is called.
type Extraction struct {
	Filename string
	Title    string
}

// Extractor runs the external extraction tool. The production
// implementation shells out to yt-dlp; tests substitute a stub.
type Extractor interface {
	Fetch(ctx context.Context, spec CommandSpec, onProgress func(model.Progress)) (*Extraction, error)
}
