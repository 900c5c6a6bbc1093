package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/errs"
	"github.com/ytgrab/ytgrab/internal/logger"
	"github.com/ytgrab/ytgrab/internal/media"
	"github.com/ytgrab/ytgrab/internal/model"
)

type fakeDownloader struct {
	result  *model.DownloadResult
	err     error
	lastReq model.DownloadRequest
	onProg  func(model.Progress)
}

func (f *fakeDownloader) SetProgressCallback(cb func(model.Progress)) {
	f.onProg = cb
}

func (f *fakeDownloader) Download(ctx context.Context, req model.DownloadRequest) (*model.DownloadResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// withFakeDownloader swaps the service constructor for the duration of a
// test.
func withFakeDownloader(t *testing.T, fake *fakeDownloader) {
	t.Helper()
	orig := newDownloader
	newDownloader = func(log logger.Logger, tools media.Toolchain) download.Downloader {
		return fake
	}
	t.Cleanup(func() { newDownloader = orig })
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunPrintsOutputPath(t *testing.T) {
	fake := &fakeDownloader{
		result: &model.DownloadResult{OutputPath: "/downloads/Test Video.mp4", Title: "Test Video"},
	}
	withFakeDownloader(t, fake)

	stdout, _, err := execute(t, "https://www.youtube.com/watch?v=abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.TrimSpace(stdout) != "/downloads/Test Video.mp4" {
		t.Errorf("Expected stdout to carry only the output path, got %q", stdout)
	}
	if fake.lastReq.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("Unexpected request URL %q", fake.lastReq.URL)
	}
	if fake.lastReq.Quality != model.QualityBest {
		t.Errorf("Expected default quality, got %q", fake.lastReq.Quality)
	}
}

func TestRunRequiresURL(t *testing.T) {
	_, _, err := execute(t)
	if err == nil {
		t.Error("Expected error when no URL is given")
	}
}

func TestRunRejectsConflictingPresets(t *testing.T) {
	withFakeDownloader(t, &fakeDownloader{result: &model.DownloadResult{}})

	_, _, err := execute(t, "--low-quality", "--audio-only", "https://youtu.be/abc123")
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("Expected mutual-exclusion error, got %v", err)
	}
}

func TestRunQualityFlags(t *testing.T) {
	tests := []struct {
		flag string
		want model.Quality
	}{
		{"--low-quality", model.QualityLowest},
		{"--audio-only", model.QualityAudio},
	}

	for _, tt := range tests {
		fake := &fakeDownloader{result: &model.DownloadResult{OutputPath: "/tmp/x.mp4"}}
		withFakeDownloader(t, fake)

		_, _, err := execute(t, tt.flag, "https://youtu.be/abc123")
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", tt.flag, err)
		}
		if fake.lastReq.Quality != tt.want {
			t.Errorf("%s: expected quality %q, got %q", tt.flag, tt.want, fake.lastReq.Quality)
		}
	}
}

func TestRunOutputFlagAsDirectory(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeDownloader{result: &model.DownloadResult{OutputPath: filepath.Join(dir, "v.mp4")}}
	withFakeDownloader(t, fake)

	_, _, err := execute(t, "-o", dir, "https://youtu.be/abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fake.lastReq.OutputDir != dir {
		t.Errorf("Expected output dir %q, got %q", dir, fake.lastReq.OutputDir)
	}
	if fake.lastReq.Template == "" || !strings.Contains(fake.lastReq.Template, "%(title)s") {
		t.Errorf("Expected title-derived template, got %q", fake.lastReq.Template)
	}
}

func TestRunOutputFlagAsFilePath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "exact-name.mp4")
	fake := &fakeDownloader{result: &model.DownloadResult{OutputPath: target}}
	withFakeDownloader(t, fake)

	_, _, err := execute(t, "-o", target, "https://youtu.be/abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fake.lastReq.OutputDir != dir {
		t.Errorf("Expected output dir %q, got %q", dir, fake.lastReq.OutputDir)
	}
	if fake.lastReq.Template != "exact-name.mp4" {
		t.Errorf("Expected exact filename template, got %q", fake.lastReq.Template)
	}
}

func TestRunPropagatesPipelineError(t *testing.T) {
	cause := fmt.Errorf("%w: video is private", errs.ErrUnsupportedSource)
	withFakeDownloader(t, &fakeDownloader{err: cause})

	stdout, _, err := execute(t, "https://youtu.be/abc123")
	if !errors.Is(err, errs.ErrUnsupportedSource) {
		t.Fatalf("Expected ErrUnsupportedSource, got %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected no stdout on failure, got %q", stdout)
	}
}

func TestResolveDestination(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name         string
		output       string
		wantDir      string
		wantTemplate string
	}{
		{"empty", "", "", ""},
		{"existing directory", dir, dir, ""},
		{"trailing separator", "clips/", "clips", ""},
		{"file path", filepath.Join(dir, "video.mp4"), dir, "video.mp4"},
		{"bare filename", "video.mp4", ".", "video.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDir, gotTemplate := resolveDestination(tt.output)
			if gotDir != tt.wantDir || gotTemplate != tt.wantTemplate {
				t.Errorf("resolveDestination(%q) = (%q, %q), want (%q, %q)",
					tt.output, gotDir, gotTemplate, tt.wantDir, tt.wantTemplate)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{fmt.Errorf("wrapped: %w", errs.ErrUnsupportedSource), exitUnsupportedSource},
		{fmt.Errorf("wrapped: %w", errs.ErrMissingDependency), exitMissingDependency},
		{fmt.Errorf("wrapped: %w", errs.ErrTransport), exitTransport},
		{fmt.Errorf("wrapped: %w", errs.ErrStorage), exitStorage},
		{errors.New("anything else"), exitFailure},
	}

	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
