package tui

import (
	"fmt"
	"strings"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	passedBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(success).
			Foreground(success).
			Bold(true).
			Padding(0, 4)

	failedBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(danger).
			Foreground(danger).
			Bold(true).
			Padding(0, 4)
)

// RenderRunHeader renders the banner shown before a validation run.
func RenderRunHeader(dataRef, suitePath string) string {
	title := headerStyle.Render("dq")
	subtitle := dimStyle.Render("Data Quality Validation")
	refs := titleStyle.Render(dataRef) + "\n" + dimStyle.Render("suite: "+suitePath)

	return boxStyle.Render(title+"\n"+subtitle+"\n\n"+refs) + "\n"
}

// RenderResult renders the run verdict: summary counts, per-expectation
// failures and the pass/fail banner.
func RenderResult(result *domain.ValidationResult) string {
	var b strings.Builder
	stats := result.Statistics

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render(result.SuiteName))
	if result.Meta.BatchID != "" {
		b.WriteString("  " + faintStyle.Render(result.Meta.BatchID))
	}
	b.WriteString("\n\n")

	failedText := fmt.Sprintf("%d", stats.UnsuccessfulExpectations)
	if stats.UnsuccessfulExpectations > 0 {
		failedText = failStyle.Render(failedText)
	} else {
		failedText = dimStyle.Render(failedText)
	}

	fmt.Fprintf(&b, "  %s %d\n", padRight("Expectations evaluated", 24), stats.EvaluatedExpectations)
	fmt.Fprintf(&b, "  %s %s\n", padRight("Passed", 24), passStyle.Render(fmt.Sprintf("%d", stats.SuccessfulExpectations)))
	fmt.Fprintf(&b, "  %s %s\n", padRight("Failed", 24), failedText)
	fmt.Fprintf(&b, "  %s %s %s\n", padRight("Success rate", 24),
		successBar(stats.SuccessPercent, 20),
		dimStyle.Render(fmt.Sprintf("%.1f%%", stats.SuccessPercent)))

	failures := failedResults(result)
	if len(failures) > 0 {
		b.WriteString("\n  " + separatorLine + "\n\n")
		b.WriteString("  " + titleStyle.Render("Failures") + "  " +
			errorTagStyle.Render(fmt.Sprintf("%d", len(failures))) + "\n\n")
		for _, r := range failures {
			renderFailure(&b, r)
		}
	}

	b.WriteString("\n")
	if result.Success {
		b.WriteString(passedBanner.Render("Validation PASSED ✓"))
	} else {
		b.WriteString(failedBanner.Render("Validation FAILED ✗"))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderReportSaved renders the pointer to the persisted report.
func RenderReportSaved(path string) string {
	return "  " + dimStyle.Render("report saved to "+path) + "\n"
}

// RenderDocsSaved renders the pointer to the generated HTML page.
func RenderDocsSaved(path string) string {
	return "  " + dimStyle.Render("docs page saved to "+path) + "\n"
}

// RenderError renders an operational failure.
func RenderError(err error) string {
	return "\n  " + errorTagStyle.Render("error") + " " + dimStyle.Render(err.Error()) + "\n"
}

func failedResults(result *domain.ValidationResult) []domain.ExpectationResult {
	var out []domain.ExpectationResult
	for _, r := range result.Results {
		if !r.Success {
			out = append(out, r)
		}
	}
	return out
}

func renderFailure(b *strings.Builder, r domain.ExpectationResult) {
	header := failStyle.Render("✗") + " " + titleStyle.Render(r.ExpectationConfig.Type)
	if col, ok := r.ExpectationConfig.Kwargs["column"].(string); ok && col != "" {
		header += " " + dimStyle.Render("("+col+")")
	}
	fmt.Fprintf(b, "    %s\n", header)

	detail := r.Describe()
	if r.ExceptionInfo.RaisedException {
		fmt.Fprintf(b, "      %s\n", warnStyle.Render(detail))
		return
	}
	fmt.Fprintf(b, "      %s\n", dimStyle.Render(detail))
}

func successBar(percent float64, width int) string {
	filled := int(percent) * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	color := percentColor(percent)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := faintStyle.Render(strings.Repeat("░", width-filled))
	return filledStr + emptyStr
}

func percentColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 100:
		return success
	case percent >= 80:
		return lipgloss.Color("#A3E635") // lime
	case percent >= 50:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
