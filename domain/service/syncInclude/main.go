package syncInclude

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"github.com/t-kuni/stignore/domain/repository/file"
	"github.com/t-kuni/stignore/domain/service/fileAppend"
	"github.com/t-kuni/stignore/domain/service/targetResolve"
)

type SyncIncludeService struct {
	fileRepository       file.Repository
	targetResolveService *targetResolve.TargetResolveService
	fileAppendService    *fileAppend.FileAppendService
	lineEnding           string
}

func NewSyncIncludeService(
	fileRepository file.Repository,
	targetResolveService *targetResolve.TargetResolveService,
	fileAppendService *fileAppend.FileAppendService,
	lineEnding string,
) *SyncIncludeService {
	return &SyncIncludeService{
		fileRepository:       fileRepository,
		targetResolveService: targetResolveService,
		fileAppendService:    fileAppendService,
		lineEnding:           lineEnding,
	}
}

// Link makes .stignore include .stignore_sync, creating either file when
// missing. It reports false when the directive was already there.
func (s *SyncIncludeService) Link(rootDir string) (bool, error) {
	primary := ignoreFile.PrimaryIn(s.fileRepository, rootDir)
	defer primary.Close()

	included, err := s.targetResolveService.IsSyncIncluded(primary)
	if err != nil {
		return false, eris.Wrapf(err, "can't read %s file", ignoreFile.Primary)
	}
	if included {
		return false, nil
	}

	secondary := ignoreFile.SecondaryIn(s.fileRepository, rootDir)
	if _, err := secondary.Open(); err != nil {
		return false, eris.Wrapf(err, "can't create %s file", ignoreFile.Secondary)
	}
	if err := secondary.Close(); err != nil {
		return false, eris.Wrapf(err, "failed to close %s", secondary.Path())
	}

	directive := ignoreFile.IncludeDirective + " " + ignoreFile.Secondary + s.lineEnding
	if err := s.fileAppendService.Append(primary, directive); err != nil {
		return false, eris.Wrapf(err, "can't append to %s file", ignoreFile.Primary)
	}
	return true, nil
}
