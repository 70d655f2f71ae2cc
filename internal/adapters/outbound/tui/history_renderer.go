package tui

import (
	"fmt"
	"strings"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// RenderHistory formats recorded validation runs for terminal output,
// oldest first, with trend arrows on the success rate.
func RenderHistory(records []domain.RunRecord) string {
	if len(records) == 0 {
		return "  " + dimStyle.Render("No validation runs recorded.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, r := range records {
		date := r.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		verdict := failStyle.Render("FAIL")
		if r.Success {
			verdict = passStyle.Render("PASS")
		}

		rate := percentText(r.Statistics.SuccessPercent)

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			verdict,
			rate,
			titleStyle.Render(r.SuiteName),
		)
		if r.DataRef != "" {
			line += "  " + faintStyle.Render(r.DataRef)
		}

		if i > 0 {
			diff := r.Statistics.SuccessPercent - records[i-1].Statistics.SuccessPercent
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%.0f", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%.0f", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func percentText(percent float64) string {
	style := passStyle
	if percent < 100 {
		style = warnStyle
	}
	if percent < 50 {
		style = failStyle
	}
	return style.Render(fmt.Sprintf("%5.1f%%", percent))
}
