package sequence

import (
	"fmt"
	"strings"

	"github.com/thaimozhi-2005/sequence-bot/internal/core/domain"
)

// renderSummary formats the final report sent after dispatch
func renderSummary(s domain.Summary) string {
	var b strings.Builder

	b.WriteString("✅ **SORTING COMPLETE** ✅\n")
	fmt.Fprintf(&b, "📊 %d/%d files sorted by quality\n\n", s.Processed, s.Total)

	for _, bucket := range s.Buckets {
		if bucket.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "📺 %dp: %d episodes (%s)\n", bucket.Quality, bucket.Count, formatRange(bucket.Range))
	}
	if s.OtherCount > 0 {
		fmt.Fprintf(&b, "📺 Other: %d episodes (%s)\n", s.OtherCount, formatRange(s.OtherRange))
	}

	if s.Failed > 0 {
		fmt.Fprintf(&b, "\n\n❌ **%d files could not be processed** (invalid naming format)", s.Failed)
	}

	b.WriteString("\n\n🎉 Files sent in quality order: 480p → 720p → 1080p")
	return b.String()
}

func formatRange(r *domain.EpisodeRange) string {
	if r == nil {
		return "None"
	}
	return fmt.Sprintf("E%02d-E%02d", r.Min, r.Max)
}
