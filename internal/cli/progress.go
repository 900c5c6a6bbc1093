package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ytgrab/ytgrab/internal/model"
)

// progressRenderer writes a single self-overwriting status line to the
// terminal. Diagnostics and progress share stderr so stdout stays a
// clean, scriptable output path.
type progressRenderer struct {
	w       io.Writer
	quiet   bool
	lastLen int
}

func newProgressRenderer(w io.Writer, quiet bool) *progressRenderer {
	return &progressRenderer{w: w, quiet: quiet}
}

// Render prints one progress snapshot, overwriting the previous line.
func (r *progressRenderer) Render(p model.Progress) {
	if r.quiet || p.Status != model.TaskStatusDownloading {
		return
	}

	line := fmt.Sprintf("%3d%%", p.Percent)
	if p.Speed > 0 {
		line += fmt.Sprintf("  %s/s", humanize.Bytes(uint64(p.Speed)))
	}
	if p.TotalBytes > 0 {
		line += fmt.Sprintf("  %s / %s",
			humanize.Bytes(uint64(p.DownloadedBytes)), humanize.Bytes(uint64(p.TotalBytes)))
	}
	line += "  ETA " + p.ETAString()

	// Pad with spaces so a shorter line fully covers the previous one.
	padding := ""
	if n := r.lastLen - len(line); n > 0 {
		padding = strings.Repeat(" ", n)
	}
	fmt.Fprintf(r.w, "\r%s%s", line, padding)
	r.lastLen = len(line)
}

// Done terminates the status line once the download finishes.
func (r *progressRenderer) Done() {
	if r.lastLen > 0 {
		fmt.Fprintln(r.w)
		r.lastLen = 0
	}
}
