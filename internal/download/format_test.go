package download

import (
	"strings"
	"testing"

	"github.com/ytgrab/ytgrab/internal/model"
)

func TestFormatExpression(t *testing.T) {
	tests := []struct {
		quality model.Quality
		want    string
	}{
		{model.QualityBest, formatBest},
		{model.QualityLowest, formatLowest},
		{model.QualityAudio, formatAudio},
		{model.Quality(""), formatBest},
		{model.Quality("bogus"), formatBest},
	}

	for _, tt := range tests {
		if got := FormatExpression(tt.quality); got != tt.want {
			t.Errorf("FormatExpression(%q) = %q, want %q", tt.quality, got, tt.want)
		}
	}
}

func TestDefaultFormatCapsHeight(t *testing.T) {
	if !strings.Contains(formatBest, "height<=1080") {
		t.Errorf("Expected default policy to cap video height at 1080, got %q", formatBest)
	}
	if !strings.Contains(formatBest, "+ba") {
		t.Errorf("Expected default policy to request a separate audio stream, got %q", formatBest)
	}
}
