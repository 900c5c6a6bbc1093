package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// ffprobe invocation settings.
const (
	ffprobeLogLevel    = "error"
	ffprobeShowEntries = "stream=codec_type,height"
	ffprobeOutputJSON  = "json"
)

// ProbeReport summarizes the streams found in a media file.
type ProbeReport struct {
	HasVideo bool
	HasAudio bool
	Height   int // vertical resolution of the video stream, 0 if unknown
}

// Merged reports whether the file carries both a video and an audio
// track, i.e. the merge step actually happened.
func (r *ProbeReport) Merged() bool {
	return r.HasVideo && r.HasAudio
}

// Probe runs ffprobe against path and reports the contained streams.
func (t *ExecToolchain) Probe(ctx context.Context, path string) (*ProbeReport, error) {
	if _, err := t.LookPath(FFprobeCommand); err != nil {
		return nil, fmt.Errorf("%s not found in PATH", FFprobeCommand)
	}

	cmd := exec.CommandContext(ctx, FFprobeCommand,
		"-v", ffprobeLogLevel,
		"-show_entries", ffprobeShowEntries,
		"-of", ffprobeOutputJSON,
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", FFprobeCommand, err)
	}

	return parseProbeOutput(output)
}

type probeStreams struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

func parseProbeOutput(output []byte) (*ProbeReport, error) {
	var parsed probeStreams
	if err := json.Unmarshal(output, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s output: %w", FFprobeCommand, err)
	}

	report := &ProbeReport{}
	for _, s := range parsed.Streams {
		switch s.CodecType {
		case "video":
			report.HasVideo = true
			if s.Height > report.Height {
				report.Height = s.Height
			}
		case "audio":
			report.HasAudio = true
		}
	}
	return report, nil
}
