package cmd

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/t-kuni/stignore/cmd/addCommand"
	"github.com/t-kuni/stignore/cmd/checkCommand"
	"github.com/t-kuni/stignore/cmd/includeCommand"
	"github.com/t-kuni/stignore/cmd/versionCommand"
	"github.com/t-kuni/stignore/domain/model/lineEnding"
	"github.com/t-kuni/stignore/domain/repository/config"
	"github.com/t-kuni/stignore/domain/repository/file"
	"github.com/t-kuni/stignore/domain/service/addPatterns"
	"github.com/t-kuni/stignore/domain/service/fileAppend"
	"github.com/t-kuni/stignore/domain/service/ignoreCheck"
	"github.com/t-kuni/stignore/domain/service/patternRewrite"
	"github.com/t-kuni/stignore/domain/service/rootFind"
	"github.com/t-kuni/stignore/domain/service/syncInclude"
	"github.com/t-kuni/stignore/domain/service/targetResolve"
	"github.com/t-kuni/stignore/domain/system/confirm"
	configRepo "github.com/t-kuni/stignore/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/stignore/infrastructure/repository/file"
	confirmImpl "github.com/t-kuni/stignore/infrastructure/system/confirm"
	"github.com/t-kuni/stignore/infrastructure/system/logger"
	"os"
)

type RootCommand struct {
	CobraCommand *cobra.Command
	silent       *bool
}

// Silent reports whether --silent was given. Failures are then only
// signalled through the exit status.
func (c *RootCommand) Silent() bool {
	return c.silent != nil && *c.silent
}

// DotEnvPath is loaded into the environment before anything reads it.
const DotEnvPath = ".env"

func NewRootCommand() (*RootCommand, error) {
	envErr := loadDotEnv(DotEnvPath)

	configRepository := configRepo.NewConfigRepository()
	configPath, err := configRepository.Path()
	if err != nil {
		return nil, err
	}
	cfg, err := configRepository.Read(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(os.Stderr)
	if envErr != nil {
		log.WithError(envErr).Debug("Failed to load " + DotEnvPath)
	}
	log.WithField("path", configPath).Debug("Loaded config")

	return NewRootCommandWith(
		fileRepo.NewFileRepository(),
		confirmImpl.NewPromptConfirm(os.Stdin, os.Stdout),
		cfg,
		log,
	), nil
}

// loadDotEnv loads path with godotenv. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func NewRootCommandWith(
	fileRepository file.Repository,
	confirm confirm.IConfirm,
	cfg *config.Config,
	log *logrus.Logger,
) *RootCommand {
	var silent bool

	rootFindSrv := rootFind.NewRootFindService(fileRepository)
	patternRewriteSrv := patternRewrite.NewPatternRewriteService(lineEnding.Default)
	targetResolveSrv := targetResolve.NewTargetResolveService(fileRepository)
	fileAppendSrv := fileAppend.NewFileAppendService(lineEnding.Default)
	syncIncludeSrv := syncInclude.NewSyncIncludeService(fileRepository, targetResolveSrv, fileAppendSrv, lineEnding.Default)
	ignoreCheckSrv := ignoreCheck.NewIgnoreCheckService(fileRepository, log)
	addPatternsSrv := addPatterns.NewAddPatternsService(
		rootFindSrv,
		patternRewriteSrv,
		targetResolveSrv,
		fileAppendSrv,
		fileRepository,
		confirm,
		log,
	)

	cmd := addCommand.NewAddCommand(addPatternsSrv, cfg, &silent).CobraCommand
	cmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "don't display messages")
	cmd.MarkFlagsMutuallyExclusive("preview", "silent")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if silent {
			logger.Silence(log)
		}
	}

	cmd.AddCommand(includeCommand.NewIncludeCommand(rootFindSrv, syncIncludeSrv, &silent).CobraCommand)
	cmd.AddCommand(checkCommand.NewCheckCommand(rootFindSrv, ignoreCheckSrv).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
		silent:       &silent,
	}
}
