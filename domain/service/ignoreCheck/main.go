package ignoreCheck

import (
	"github.com/denormal/go-gitignore"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"github.com/t-kuni/stignore/domain/repository/file"
	"github.com/t-kuni/stignore/domain/service/patternRewrite"
	"github.com/t-kuni/stignore/domain/service/rootFind"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var includeRegex = regexp.MustCompile(`^` + regexp.QuoteMeta(ignoreFile.IncludeDirective) + `\s+(.+)$`)

type IgnoreCheckService struct {
	fileRepository file.Repository
	log            logrus.FieldLogger
}

func NewIgnoreCheckService(fileRepository file.Repository, log logrus.FieldLogger) *IgnoreCheckService {
	return &IgnoreCheckService{
		fileRepository: fileRepository,
		log:            log,
	}
}

type Result struct {
	// Path as given by the user.
	Path string
	// Outside is set when Path doesn't lie within the synchronization root.
	Outside bool
	Ignored bool
	// Pattern is the pattern that matched, as written in the ignore file.
	Pattern string
}

// Check reports, for every path, whether the patterns configured at the
// root ignore it. Syncthing's (?d) and (?i) flags are dropped, so matching
// is case sensitive.
func (s *IgnoreCheckService) Check(root rootFind.Root, paths []string) ([]Result, error) {
	lines, err := s.loadLines(filepath.Join(root.Dir, ignoreFile.Primary), map[string]bool{})
	if err != nil {
		return nil, err
	}

	ignore := gitignore.New(strings.NewReader(strings.Join(lines, "\n")), root.Dir, func(e gitignore.Error) bool {
		s.log.WithError(e).Debug("Skipping unparsable pattern")
		return true
	})

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, s.check(ignore, root, p))
	}
	return results, nil
}

func (s *IgnoreCheckService) check(ignore gitignore.GitIgnore, root rootFind.Root, p string) Result {
	result := Result{Path: p}

	abs := p
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root.WorkDir, p)
	}
	rel, err := filepath.Rel(root.Dir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		result.Outside = true
		return result
	}
	if rel == "." {
		return result
	}

	// A path is ignored when it or any of its parent directories is.
	parts := strings.Split(rel, string(filepath.Separator))
	for i := range parts {
		sub := filepath.Join(parts[:i+1]...)
		isDir := i < len(parts)-1 || s.fileRepository.IsDir(abs)
		if m := ignore.Relative(sub, isDir); m != nil {
			result.Ignored = m.Ignore()
			result.Pattern = m.String()
			if result.Ignored {
				return result
			}
		}
	}
	return result
}

// loadLines returns the patterns of path in gitignore syntax, inlining
// #include'd files. Every file is read at most once.
func (s *IgnoreCheckService) loadLines(path string, visited map[string]bool) ([]string, error) {
	if visited[path] {
		return nil, nil
	}
	visited[path] = true

	content, err := s.fileRepository.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.WithField("path", path).Debug("Ignore file does not exist")
			return nil, nil
		}
		return nil, eris.Wrapf(err, "failed to read %s", path)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ignoreFile.CommentMarker) {
			continue
		}

		if m := includeRegex.FindStringSubmatch(line); m != nil {
			included, err := s.loadLines(filepath.Join(filepath.Dir(path), strings.TrimSpace(m[1])), visited)
			if err != nil {
				return nil, err
			}
			lines = append(lines, included...)
			continue
		}

		if converted, ok := toGitignore(line); ok {
			lines = append(lines, converted)
		}
	}
	return lines, nil
}

// toGitignore keeps negation, drops Syncthing-only flags and escapes a
// leading "#" that gitignore would read as a comment.
func toGitignore(line string) (string, bool) {
	modifier, patternPath, ok := patternRewrite.Split(line)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(modifier, ignoreFile.IncludeDirective) || patternPath == ignoreFile.IncludeDirective {
		return "", false
	}
	if modifier == "" && patternPath == "!" {
		return "", false
	}

	if strings.HasPrefix(patternPath, "#") {
		patternPath = `\` + patternPath
	}
	if strings.Contains(modifier, "!") {
		return "!" + patternPath, true
	}
	return patternPath, true
}
