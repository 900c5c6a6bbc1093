package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytgrab/ytgrab/internal/errs"
	"github.com/ytgrab/ytgrab/internal/logger"
	"github.com/ytgrab/ytgrab/internal/model"
)

// progressInterval is how often yt-dlp progress snapshots are emitted.
const progressInterval = 500 * time.Millisecond

// ytdlpExtractor drives the yt-dlp binary through go-ytdlp. The library
// provisions yt-dlp itself on first use; ffmpeg stays a system
// prerequisite checked by the toolchain.
type ytdlpExtractor struct {
	log logger.Logger

	installOnce sync.Once
	installErr  error
}

func newYtdlpExtractor(log logger.Logger) *ytdlpExtractor {
	return &ytdlpExtractor{log: log}
}

func (e *ytdlpExtractor) ensureInstalled(ctx context.Context) error {
	e.installOnce.Do(func() {
		resolved, err := ytdlp.Install(ctx, nil)
		if err != nil {
			e.installErr = err
			return
		}
		e.log.WithField("executable", resolved.Executable).Debug("yt-dlp resolved")
	})
	return e.installErr
}

// Fetch runs one yt-dlp invocation with the given options and waits for
// the transfer and merge to finish.
func (e *ytdlpExtractor) Fetch(ctx context.Context, spec CommandSpec, onProgress func(model.Progress)) (*Extraction, error) {
	if err := e.ensureInstalled(ctx); err != nil {
		return nil, fmt.Errorf("%w: yt-dlp is unavailable: %s", errs.ErrMissingDependency, err)
	}

	dl := ytdlp.New().
		NoPlaylist().
		Format(spec.Format).
		Output(spec.OutputTmpl)

	if spec.Overwrite {
		dl = dl.ForceOverwrites()
	}
	if spec.Restrict {
		dl = dl.RestrictFilenames()
	}
	if spec.MergeFormat != "" {
		dl = dl.MergeOutputFormat(spec.MergeFormat)
	}
	if spec.Proxy != "" {
		dl = dl.Proxy(spec.Proxy)
	}
	if spec.SocketTimeout > 0 {
		dl = dl.SocketTimeout(spec.SocketTimeout.Seconds())
	}

	if onProgress != nil {
		dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(toProgress(update))
		})
	}

	result, err := dl.Run(ctx, spec.URL)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}

	return extractionFromResult(result)
}

// toProgress converts a yt-dlp progress update into the domain snapshot.
func toProgress(update ytdlp.ProgressUpdate) model.Progress {
	p := model.Progress{
		Status:          model.TaskStatusDownloading,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		ETASec:          -1,
	}

	if update.TotalBytes > 0 {
		p.Percent = int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			p.Speed = float64(update.DownloadedBytes) / elapsed.Seconds()
		}
	}

	if eta := update.ETA(); eta > 0 {
		p.ETASec = int(eta.Seconds())
	}

	if update.Info != nil && update.Info.Title != nil {
		p.Title = *update.Info.Title
	}

	return p
}

// extractionFromResult pulls the final filename and title out of the
// yt-dlp run result.
func extractionFromResult(result *ytdlp.Result) (*Extraction, error) {
	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to read extracted info: %w", err)
	}

	extraction := &Extraction{}
	for _, entry := range info {
		if entry == nil {
			continue
		}
		if extraction.Title == "" && entry.Title != nil {
			extraction.Title = *entry.Title
		}
		if extraction.Filename == "" && entry.Filename != nil {
			extraction.Filename = *entry.Filename
		}
	}
	if extraction.Filename == "" {
		return nil, fmt.Errorf("yt-dlp reported no output filename")
	}
	return extraction, nil
}
