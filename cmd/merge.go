// Package cmd implements the stitch CLI subcommands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/transcriptkit/stitch/config"
	"github.com/transcriptkit/stitch/pkg/logging"
	"github.com/transcriptkit/stitch/pkg/stitch"
)

// MergeCommandDeps holds the dependencies for the merge command.
type MergeCommandDeps struct {
	LoadConfig func() (*config.CLIConfig, error)
	NewLogger  func(cfg *logging.Config) logging.Logger
}

// DefaultMergeDeps returns the default dependencies for production use.
func DefaultMergeDeps() *MergeCommandDeps {
	return &MergeCommandDeps{
		LoadConfig: config.LoadConfig,
		NewLogger:  logging.NewLogger,
	}
}

// Merge command flags.
var (
	mergeOutputPath string
	mergeDebug      bool
)

// NewMergeCommand creates the 'merge' command.
func NewMergeCommand(deps *MergeCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultMergeDeps()
	}

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Merge transcription result files into one transcript",
		Long: `Merge chronologically-ordered transcription result files into one
continuous, speaker-labeled transcript.

Each input file carries a speaker diarization timeline and a word timeline,
with timestamps restarted at zero. Files are merged in the order given, and a
running time offset shifts every file's timestamps to be relative to the start
of the first file. Speaker labels are NOT matched across files: spk_0 in the
second file is an unrelated speaker to spk_0 in the first.

Any malformed file aborts the whole run. A silently skipped file would shift
the time offset of every file after it, so there is no skip-and-continue.

Examples:
  # Merge two chunks into out.txt
  stitch merge part1.mp3.json part2.mp3.json -o out.txt

  # Stream the merged transcript to stdout
  stitch merge part1.mp3.json part2.mp3.json -o -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(deps, args)
		},
	}

	cmd.Flags().StringVarP(&mergeOutputPath, "output-file", "o", "", "File to write the merged transcript to ('-' for stdout)")
	cmd.Flags().BoolVar(&mergeDebug, "debug", false, "Enable debug logging")
	cmd.MarkFlagRequired("output-file")

	return cmd
}

// runMerge executes the merge command.
func runMerge(deps *MergeCommandDeps, paths []string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if mergeDebug {
		cfg.Debug = true
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.Level(cfg.LogLevel)
	log := deps.NewLogger(logCfg).With(logging.F("run_id", uuid.NewString()))

	stitcher := stitch.NewStitcher(log)

	if mergeOutputPath == "-" {
		result, err := stitcher.Run(paths, os.Stdout)
		if err != nil {
			return err
		}
		logResult(log, result)
		return nil
	}

	// Write through a temp file in the destination directory so the output
	// path only ever holds a complete transcript: a failed run must not
	// leave a partial file behind.
	dir := filepath.Dir(mergeOutputPath)
	tmp, err := os.CreateTemp(dir, ".stitch-*")
	if err != nil {
		return fmt.Errorf("creating temp output file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	result, err := stitcher.Run(paths, tmp)
	if err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), mergeOutputPath); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}

	logResult(log, result)
	return nil
}

func logResult(log logging.Logger, result *stitch.Result) {
	log.Info("merge complete",
		logging.F("files", result.Files),
		logging.F("blocks", result.Blocks),
		logging.F("total_duration", stitch.FormatDuration(result.TotalOffset)))
}
