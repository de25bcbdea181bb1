package patternRewrite

import (
	"fmt"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"github.com/t-kuni/stignore/util/path"
	"path/filepath"
	"regexp"
	"strings"
)

var ErrNoPatterns = eris.New("no patterns supplied")

// patternRegex splits a pattern into a modifier prefix (the include
// directive, or a run of "!", "(?d)" and "(?i)") and a non-empty path. The
// modifier run gives back tokens until the path is non-empty, so "!" is a
// path and "!(?d)" is "!" followed by the path "(?d)".
var patternRegex = regexp.MustCompile(`^(` + regexp.QuoteMeta(ignoreFile.IncludeDirective) + ` |(?:\(\?[di]\)|!)*) *(.+)$`)

// InvalidPatternsError lists every pattern that failed to parse.
type InvalidPatternsError struct {
	Patterns []string
}

func (err InvalidPatternsError) Error() string {
	plural := ""
	if len(err.Patterns) > 1 {
		plural = "s"
	}
	return fmt.Sprintf("incorrect pattern%s:\n%s", plural, strings.Join(err.Patterns, "\n"))
}

type PatternRewriteService struct {
	lineEnding string
}

func NewPatternRewriteService(lineEnding string) *PatternRewriteService {
	return &PatternRewriteService{
		lineEnding: lineEnding,
	}
}

// Rewrite turns raw user input into the text to append to an ignore file.
// With a nil prefix patterns are copied as-is; otherwise each path is
// re-rooted under prefix.
func (s *PatternRewriteService) Rewrite(rawPatterns []string, prefix *string) (string, error) {
	var out strings.Builder
	var invalid []string

	for _, raw := range rawPatterns {
		for _, pattern := range strings.Split(raw, "\n") {
			pattern = strings.TrimSpace(pattern)

			if pattern == "" || strings.HasPrefix(pattern, ignoreFile.CommentMarker) {
				out.WriteString(pattern)
				out.WriteString(s.lineEnding)
				continue
			}

			modifier, patternPath, ok := Split(pattern)
			if !ok {
				invalid = append(invalid, pattern)
				continue
			}

			if prefix != nil {
				patternPath = prependPrefix(*prefix, patternPath)
			}

			out.WriteString(modifier)
			out.WriteString(patternPath)
			out.WriteString(s.lineEnding)
		}
	}

	if len(invalid) > 0 {
		return "", InvalidPatternsError{Patterns: invalid}
	}
	if strings.TrimSpace(out.String()) == "" {
		return "", ErrNoPatterns
	}
	return out.String(), nil
}

// Split separates a trimmed pattern into its modifier prefix and path
// portion. ok is false when the pattern has no path portion at all.
func Split(pattern string) (modifier, patternPath string, ok bool) {
	m := patternRegex.FindStringSubmatch(pattern)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// prependPrefix re-roots patternPath under prefix. A pattern naming the
// folder root itself stays the root.
func prependPrefix(prefix, patternPath string) string {
	parts := path.Components(prefix)
	parts = append(parts, path.Components(patternPath)...)
	if len(parts) == 0 {
		return string(filepath.Separator)
	}
	return strings.Join(parts, string(filepath.Separator))
}
