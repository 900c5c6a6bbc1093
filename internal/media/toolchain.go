// Package media wraps the external ffmpeg/ffprobe binaries: PATH
// discovery with install guidance, and a post-download probe of the
// merged output file.
package media

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/ytgrab/ytgrab/internal/errs"
)

// Executable names resolved on the system path.
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// Toolchain is the out-of-process media tool contract. Implementations
// locate the binaries and inspect produced files; tests substitute a
// stub so no binary is spawned.
type Toolchain interface {
	// Verify confirms ffmpeg is resolvable. The returned error wraps
	// errs.ErrMissingDependency and carries install guidance.
	Verify() error

	// Probe inspects a media file and reports its streams. Callers may
	// treat failures as advisory.
	Probe(ctx context.Context, path string) (*ProbeReport, error)
}

// ExecToolchain reaches the binaries through the system path.
type ExecToolchain struct {
	// LookPath is swappable for tests; defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

// NewToolchain returns a Toolchain backed by the system path.
func NewToolchain() *ExecToolchain {
	return &ExecToolchain{LookPath: exec.LookPath}
}

// Verify confirms ffmpeg is on the path. yt-dlp refuses to merge
// separate video and audio streams without it, so this runs before any
// network transfer.
func (t *ExecToolchain) Verify() error {
	if _, err := t.LookPath(FFmpegCommand); err != nil {
		return fmt.Errorf("%w: %s is not installed or not found in PATH\n%s",
			errs.ErrMissingDependency, FFmpegCommand, InstallHint(runtime.GOOS))
	}
	return nil
}

// InstallHint returns platform-specific guidance for installing ffmpeg.
func InstallHint(goos string) string {
	switch goos {
	case "windows":
		return "Install ffmpeg from https://ffmpeg.org/download.html and add it to your system PATH."
	case "darwin":
		return "Install ffmpeg with Homebrew: brew install ffmpeg"
	case "linux":
		return "Install ffmpeg with your package manager, e.g.\n" +
			"  Ubuntu/Debian: sudo apt-get install ffmpeg\n" +
			"  Fedora: sudo dnf install ffmpeg\n" +
			"  Arch: sudo pacman -S ffmpeg"
	default:
		return "Install ffmpeg manually for your platform: https://ffmpeg.org/download.html"
	}
}
