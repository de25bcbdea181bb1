package addPatterns

import (
	"fmt"
	"github.com/rotisserie/eris"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"github.com/t-kuni/stignore/domain/model/target"
	"github.com/t-kuni/stignore/domain/repository/file"
	"github.com/t-kuni/stignore/domain/service/fileAppend"
	"github.com/t-kuni/stignore/domain/service/patternRewrite"
	"github.com/t-kuni/stignore/domain/service/rootFind"
	"github.com/t-kuni/stignore/domain/service/targetResolve"
	"github.com/t-kuni/stignore/domain/system/confirm"
	"io"
	"os"
)

type AddPatternsService struct {
	rootFindService       *rootFind.RootFindService
	patternRewriteService *patternRewrite.PatternRewriteService
	targetResolveService  *targetResolve.TargetResolveService
	fileAppendService     *fileAppend.FileAppendService
	fileRepository        file.Repository
	confirm               confirm.IConfirm
	log                   logrus.FieldLogger
}

func NewAddPatternsService(
	rootFindService *rootFind.RootFindService,
	patternRewriteService *patternRewrite.PatternRewriteService,
	targetResolveService *targetResolve.TargetResolveService,
	fileAppendService *fileAppend.FileAppendService,
	fileRepository file.Repository,
	confirm confirm.IConfirm,
	log logrus.FieldLogger,
) *AddPatternsService {
	return &AddPatternsService{
		rootFindService:       rootFindService,
		patternRewriteService: patternRewriteService,
		targetResolveService:  targetResolveService,
		fileAppendService:     fileAppendService,
		fileRepository:        fileRepository,
		confirm:               confirm,
		log:                   log,
	}
}

type AddParams struct {
	Patterns []string
	Target   target.Mode
	// Absolute copies patterns as-is instead of re-rooting them at the
	// working directory.
	Absolute bool
	Preview  bool
	Silent   bool
}

type AddResult struct {
	Path    string
	Content string
	// Written is false when the user declined the preview.
	Written bool
}

func (s *AddPatternsService) Add(params AddParams, out io.Writer) (AddResult, error) {
	root, err := s.rootFindService.FindRoot()
	if err != nil {
		return AddResult{}, err
	}
	s.log.WithField("root", root.Dir).WithField("prefix", root.Prefix).Debug("Found syncthing folder")

	var prefix *string
	if !params.Absolute {
		prefix = &root.Prefix
	}
	content, err := s.patternRewriteService.Rewrite(params.Patterns, prefix)
	if err != nil {
		return AddResult{}, err
	}

	resolution, err := s.targetResolveService.Resolve(params.Target, root.Dir)
	if err != nil {
		return AddResult{}, err
	}
	defer resolution.Target.Close()

	if resolution.SyncNotIncluded && !params.Silent {
		s.log.Warnf("%s exists, but wasn't included in %s. Working with %s (run `stignore include` to include it)",
			ignoreFile.Secondary, ignoreFile.Primary, ignoreFile.Primary)
	}

	result := AddResult{
		Path:    resolution.Target.Path(),
		Content: content,
	}

	if !params.Silent {
		fmt.Fprintf(out, "Appending to %s:\n%s", result.Path, content)
	}

	if params.Preview {
		if err := s.printDiff(out, result.Path, content); err != nil {
			return AddResult{}, err
		}

		ok, err := s.confirm.Confirm("Proceed?")
		if err != nil {
			return AddResult{}, err
		}
		if !ok {
			fmt.Fprintln(out, "Aborting.")
			return result, nil
		}
	}

	err = s.fileAppendService.Append(resolution.Target, content)
	if err != nil {
		return AddResult{}, eris.Wrap(err, "can't append to file")
	}
	s.log.WithField("path", result.Path).Debug("Patterns appended")

	result.Written = true
	return result, nil
}

func (s *AddPatternsService) printDiff(out io.Writer, path, content string) error {
	oldContent, err := s.fileRepository.Read(path)
	if err != nil && !os.IsNotExist(err) {
		return eris.Wrapf(err, "failed to read file: %s", path)
	}

	newContent := s.fileAppendService.Preview(oldContent, content)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(oldContent), newContent, false)
	fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
	return nil
}
