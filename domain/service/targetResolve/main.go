package targetResolve

import (
	"bufio"
	"github.com/rotisserie/eris"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"github.com/t-kuni/stignore/domain/model/target"
	"github.com/t-kuni/stignore/domain/repository/file"
	"io"
	"path/filepath"
	"regexp"
)

var includeSyncRegex = regexp.MustCompile(`^\s*` + regexp.QuoteMeta(ignoreFile.IncludeDirective) + `\s+` + regexp.QuoteMeta(ignoreFile.Secondary) + `\s*$`)

type TargetResolveService struct {
	fileRepository file.Repository
}

func NewTargetResolveService(fileRepository file.Repository) *TargetResolveService {
	return &TargetResolveService{
		fileRepository: fileRepository,
	}
}

type Resolution struct {
	Target *ignoreFile.Handle
	// Mode is never target.Auto.
	Mode target.Mode
	// SyncNotIncluded is set in auto mode when .stignore_sync exists but
	// .stignore doesn't include it.
	SyncNotIncluded bool
}

// Resolve picks the file that receives new patterns. Auto mode reads
// .stignore and therefore creates it even when .stignore_sync is chosen.
func (s *TargetResolveService) Resolve(mode target.Mode, rootDir string) (Resolution, error) {
	switch mode {
	case target.Stignore:
		return Resolution{Target: ignoreFile.PrimaryIn(s.fileRepository, rootDir), Mode: mode}, nil
	case target.StignoreSync:
		return Resolution{Target: ignoreFile.SecondaryIn(s.fileRepository, rootDir), Mode: mode}, nil
	case target.Auto:
	default:
		return Resolution{}, eris.Errorf("unknown target: %s", mode)
	}

	primary := ignoreFile.PrimaryIn(s.fileRepository, rootDir)
	included, err := s.IsSyncIncluded(primary)
	if err != nil {
		_ = primary.Close()
		return Resolution{}, eris.Wrapf(err, "can't read %s file", ignoreFile.Primary)
	}

	if included {
		if err := primary.Close(); err != nil {
			return Resolution{}, eris.Wrapf(err, "failed to close %s", primary.Path())
		}
		return Resolution{
			Target: ignoreFile.SecondaryIn(s.fileRepository, rootDir),
			Mode:   target.StignoreSync,
		}, nil
	}

	return Resolution{
		Target:          primary,
		Mode:            target.Stignore,
		SyncNotIncluded: s.fileRepository.IsFile(filepath.Join(rootDir, ignoreFile.Secondary)),
	}, nil
}

// IsSyncIncluded scans the file behind h, opening it if needed, for an
// "#include .stignore_sync" line.
func (s *TargetResolveService) IsSyncIncluded(h *ignoreFile.Handle) (bool, error) {
	f, err := h.Open()
	if err != nil {
		return false, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if includeSyncRegex.MatchString(line) {
			return true, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}
