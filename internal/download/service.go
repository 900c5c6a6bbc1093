package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytgrab/ytgrab/internal/errs"
	"github.com/ytgrab/ytgrab/internal/logger"
	"github.com/ytgrab/ytgrab/internal/media"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/platform"
)

const taskIDPrefix = "dl-"

// Service is the production Downloader. One Download call runs at a
// time per invocation; the service itself holds no cross-run state.
type Service struct {
	log        logger.Logger
	tools      media.Toolchain
	extractor  Extractor
	onProgress func(model.Progress)
}

// NewService creates an orchestrator using the yt-dlp extractor.
func NewService(log logger.Logger, tools media.Toolchain) *Service {
	return &Service{
		log:       log,
		tools:     tools,
		extractor: newYtdlpExtractor(log),
	}
}

// NewServiceWithExtractor creates an orchestrator with a custom
// extractor. Used by tests to avoid spawning real binaries.
func NewServiceWithExtractor(log logger.Logger, tools media.Toolchain, ex Extractor) *Service {
	return &Service{log: log, tools: tools, extractor: ex}
}

// SetProgressCallback registers the progress callback. Must be called
// before Download.
func (s *Service) SetProgressCallback(callback func(model.Progress)) {
	s.onProgress = callback
}

// Download runs the full pipeline: validate, verify toolchain, fetch
// and merge, resolve output. The toolchain check runs before anything
// touches the network so a missing ffmpeg never wastes a transfer.
func (s *Service) Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadResult, error) {
	started := time.Now()
	taskID := generateTaskID()
	log := s.log.WithField("task", taskID)

	s.notify(model.Progress{Status: model.TaskStatusPending})

	if err := platform.ValidateVideoURL(req.URL); err != nil {
		return s.fail(fmt.Errorf("%w: %s", errs.ErrUnsupportedSource, err))
	}

	s.notify(model.Progress{Status: model.TaskStatusStarting})

	if err := s.tools.Verify(); err != nil {
		return s.fail(err)
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = platform.WorkingDirectory()
	}
	if err := platform.EnsureDirectory(outputDir); err != nil {
		return s.fail(fmt.Errorf("%w: cannot use output directory %s: %s", errs.ErrStorage, outputDir, err))
	}

	template := req.Template
	if template == "" {
		template = "%(title)s.%(ext)s"
	}

	spec := CommandSpec{
		URL:           req.URL,
		Format:        FormatExpression(req.Quality),
		OutputTmpl:    filepath.Join(outputDir, template),
		MergeFormat:   req.MergeFormat,
		Proxy:         req.Proxy,
		SocketTimeout: req.SocketTimeout,
		Restrict:      req.Restrict,
		Overwrite:     true, // collision policy: a rerun replaces the previous file
	}

	log.WithFields(logger.Fields{
		"url":    req.URL,
		"format": spec.Format,
		"output": spec.OutputTmpl,
	}).Info("starting download")

	extraction, err := s.extractor.Fetch(ctx, spec, s.notify)
	if err != nil {
		return s.fail(errs.Classify(err))
	}

	outputPath, err := s.resolveOutput(outputDir, extraction)
	if err != nil {
		return s.fail(err)
	}

	s.probeOutput(ctx, log, outputPath, req.Quality)

	s.notify(model.Progress{Status: model.TaskStatusCompleted, Percent: 100})

	result := &model.DownloadResult{
		OutputPath: outputPath,
		Title:      extraction.Title,
		Elapsed:    time.Since(started),
	}
	log.WithFields(logger.Fields{
		"path":    result.OutputPath,
		"elapsed": result.Elapsed.Round(time.Millisecond),
	}).Info("download finished")
	return result, nil
}

// resolveOutput confirms the extraction produced a file on disk and
// returns its path.
func (s *Service) resolveOutput(outputDir string, extraction *Extraction) (string, error) {
	path := extraction.Filename
	if path == "" {
		return "", fmt.Errorf("%w: extraction finished but reported no output file", errs.ErrStorage)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(outputDir, filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: output file missing after download: %s", errs.ErrStorage, path)
	}
	return path, nil
}

// probeOutput asks ffprobe to confirm the merged file carries the
// expected tracks. Advisory only: a probe failure is logged, never
// fatal, since the file is already on disk.
func (s *Service) probeOutput(ctx context.Context, log logger.Logger, path string, quality model.Quality) {
	report, err := s.tools.Probe(ctx, path)
	if err != nil {
		log.WithError(err).Debug("skipping output probe")
		return
	}

	log = log.WithFields(logger.Fields{
		"video":  report.HasVideo,
		"audio":  report.HasAudio,
		"height": report.Height,
	})
	switch {
	case quality == model.QualityAudio:
		log.Debug("probed output")
	case !report.Merged():
		log.Warn("output file is missing a video or audio track")
	case report.Height > 1080 && quality == model.QualityBest:
		log.Warn("output exceeds the requested 1080p cap")
	default:
		log.Debug("probed output")
	}
}

func (s *Service) notify(p model.Progress) {
	if s.onProgress != nil {
		s.onProgress(p)
	}
}

// fail reports the terminal error status so renderers can settle, then
// passes the error through. Every failing return goes through here.
func (s *Service) fail(err error) (*model.DownloadResult, error) {
	s.notify(model.Progress{Status: model.TaskStatusError})
	return nil, err
}

// generateTaskID returns a unique, time-ordered ID for log correlation.
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(taskIDPrefix+"%d", time.Now().UnixNano())
	}
	return taskIDPrefix + id.String()
}
