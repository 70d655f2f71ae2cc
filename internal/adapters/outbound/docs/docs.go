// Package docs renders a validation result as a single self-contained
// HTML page, the lightweight counterpart of the engine's data docs.
package docs

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
	"github.com/fatih/camelcase"
)

//go:embed templates
var templateFS embed.FS

var funcMap = template.FuncMap{
	"humanize": Humanize,
	"passClass": func(success bool) string {
		if success {
			return "pass"
		}
		return "fail"
	},
	"fmtPercent": func(p float64) string {
		return fmt.Sprintf("%.1f%%", p)
	},
	"fmtTime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05 MST")
	},
	"column": func(kwargs map[string]any) string {
		s, _ := kwargs["column"].(string)
		return s
	},
}

var reportTmpl = mustParseTmpl("report.html")

func mustParseTmpl(names ...string) *template.Template {
	patterns := make([]string, len(names))
	for i, n := range names {
		patterns[i] = "templates/" + n
	}
	return template.Must(template.New(names[0]).Funcs(funcMap).ParseFS(templateFS, patterns...))
}

// Builder writes HTML report pages.
type Builder struct{}

// New creates a Builder.
func New() *Builder { return &Builder{} }

// Build renders the result into dir and returns the page path. The file
// name mirrors the JSON report name for the same run.
func (b *Builder) Build(result *domain.ValidationResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating docs directory: %w", err)
	}

	name := strings.TrimSuffix(domain.DefaultReportName(result.Meta.RunTime), ".json") + ".html"
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating docs page: %w", err)
	}
	defer f.Close()

	if err := reportTmpl.ExecuteTemplate(f, "report.html", result); err != nil {
		return "", fmt.Errorf("rendering docs page: %w", err)
	}
	return path, nil
}

// Humanize turns identifier-style names into readable headings:
// "expect_column_values_to_not_be_null" becomes
// "Expect Column Values To Not Be Null", "userId" becomes "User Id".
func Humanize(name string) string {
	var words []string
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for _, part := range parts {
		for _, word := range camelcase.Split(part) {
			words = append(words, upperFirst(word))
		}
	}
	return strings.Join(words, " ")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// OpenInBrowser opens target with the platform opener. Best-effort: the
// spawned process is not waited on.
func OpenInBrowser(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}
