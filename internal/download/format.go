package download

import "github.com/ytgrab/ytgrab/internal/model"

// Format selection expressions evaluated by yt-dlp. mp4 video with m4a
// audio is preferred so the merged container stays mp4 and plays
// everywhere; the fallbacks keep restricted videos downloadable when
// only pre-merged or free formats are offered.
const (
	// formatBest caps video height at 1080 and pairs it with the best
	// audio stream.
	formatBest = "bv[height<=1080][ext=mp4]+ba[ext=m4a]/best[ext=mp4]/best"

	// formatLowest picks the smallest streams available.
	formatLowest = "worstvideo[ext=mp4]+worstaudio[ext=m4a]/worst[ext=mp4]/worst"

	// formatAudio picks the best audio stream only.
	formatAudio = "ba[ext=m4a]/bestaudio"
)

// FormatExpression maps a quality preset to the expression handed to
// yt-dlp. Unknown presets fall back to the default policy.
func FormatExpression(q model.Quality) string {
	switch q {
	case model.QualityLowest:
		return formatLowest
	case model.QualityAudio:
		return formatAudio
	default:
		return formatBest
	}
}
