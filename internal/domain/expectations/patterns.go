package expectations

import (
	"fmt"
	"regexp"

	"github.com/Tac0Dude/data-quality-cli/internal/domain"
)

// Regex rules use search semantics: the pattern may match anywhere in the
// cell unless it is explicitly anchored.

func compilePattern(kw kwargs) (*regexp.Regexp, error) {
	pattern, ok, err := kw.str("regex")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &evalError{msg: "kwarg \"regex\" is required"}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return re, nil
}

func evalValuesMatchRegex(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	re, err := compilePattern(kw)
	if err != nil {
		return nil, false, err
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		return !re.MatchString(cell)
	})
}

func evalValuesNotMatchRegex(t *domain.Table, kw kwargs) (map[string]any, bool, error) {
	re, err := compilePattern(kw)
	if err != nil {
		return nil, false, err
	}
	return evalColumnMap(t, kw, func(cell string) bool {
		return re.MatchString(cell)
	})
}
