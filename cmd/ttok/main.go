package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/codefionn/ttok/internal/cli"
	"github.com/codefionn/ttok/internal/config"
	"github.com/codefionn/ttok/internal/consts"
	"github.com/codefionn/ttok/internal/logger"
	"github.com/codefionn/ttok/internal/pprof"
	"github.com/codefionn/ttok/internal/tokenizer"
	"github.com/codefionn/ttok/internal/vcs"
)

func main() {
	program := programName(os.Args)
	if err := run(program, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", program, err)
		os.Exit(1)
	}
}

func programName(argv []string) string {
	if len(argv) == 0 || argv[0] == "" {
		return consts.AppName
	}
	return filepath.Base(argv[0])
}

func run(program string, args []string, stdin io.Reader, stdout io.Writer) (err error) {
	settings, err := config.Load(config.GetConfigPath())
	if err != nil {
		return err
	}
	settings.ApplyEnv(os.Getenv)

	if initErr := logger.Init(logger.ParseLevel(settings.LogLevel), settings.LogPath); initErr != nil {
		return fmt.Errorf("failed to initialize logger: %w", initErr)
	}
	defer func() {
		if err != nil {
			logger.Error("%v", err)
		}
		if closeErr := logger.Global().Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close logger: %w", closeErr)
		}
	}()

	profile := pprof.Config{
		CPUProfile:   settings.CPUProfile,
		HeapProfile:  settings.HeapProfile,
		TraceProfile: settings.TraceProfile,
	}
	if profile.Enabled() {
		logger.Debug("profiling: cpu=%q heap=%q trace=%q", profile.CPUProfile, profile.HeapProfile, profile.TraceProfile)
	}
	profiler := pprof.NewHandler(profile)
	if startErr := profiler.Start(); startErr != nil {
		return startErr
	}
	defer func() {
		if stopErr := profiler.Stop(); stopErr != nil {
			logger.Warn("profiling: %v", stopErr)
		}
	}()

	logger.Debug("%s starting: args=%q encoding=%s git=%s", program, args, settings.DefaultEncoding, settings.GitBinary)

	cfg, err := cli.ParseArgs(args, settings.DefaultEncoding)
	if err != nil {
		return err
	}

	runner := cli.New(cli.Options{
		Program: program,
		Loader:  tokenizer.NewTiktokenLoader(settings.OfflineVocab),
		Differ:  vcs.NewGit(settings.GitBinary, settings.WorkingDir),
		Stdin:   stdin,
		Stdout:  stdout,
	})

	// git is waited on without a deadline
	return runner.Run(context.Background(), cfg)
}
