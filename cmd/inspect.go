package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transcriptkit/stitch/config"
	"github.com/transcriptkit/stitch/pkg/stitch"
	"github.com/transcriptkit/stitch/pkg/transcript"
)

// InspectCommandDeps holds the dependencies for the inspect command.
type InspectCommandDeps struct {
	LoadConfig func() (*config.CLIConfig, error)
	LoadFile   func(path string) (*transcript.File, error)
}

// DefaultInspectDeps returns the default dependencies for production use.
func DefaultInspectDeps() *InspectCommandDeps {
	return &InspectCommandDeps{
		LoadConfig: config.LoadConfig,
		LoadFile:   transcript.LoadFile,
	}
}

// Inspect command flags.
var inspectOutput string

// fileSummary is the per-file report the inspect command produces.
type fileSummary struct {
	File         string  `json:"file"`
	Speakers     int     `json:"speakers"`
	Segments     int     `json:"segments"`
	Tokens       int     `json:"tokens"`
	Punctuation  int     `json:"punctuation"`
	DurationSecs float64 `json:"duration_seconds"`
}

// NewInspectCommand creates the 'inspect' command.
func NewInspectCommand(deps *InspectCommandDeps) *cobra.Command {
	if deps == nil {
		deps = DefaultInspectDeps()
	}

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Summarize transcription result files without merging",
		Long: `Show per-file statistics for transcription result files: speaker count,
segment count, token count, and duration.

Useful for checking chunk ordering and completeness before a merge.

Examples:
  # Summarize all chunks
  stitch inspect part1.mp3.json part2.mp3.json

  # Machine-readable output
  stitch inspect part1.mp3.json --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, deps, args)
		},
	}

	cmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "Output format: text, json")

	return cmd
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, deps *InspectCommandDeps, paths []string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	format := cfg.OutputFormat
	if inspectOutput != "" {
		format = config.OutputFormat(inspectOutput)
		if !format.IsValid() {
			return fmt.Errorf("invalid output format %q (must be text or json)", inspectOutput)
		}
	}

	summaries := make([]fileSummary, 0, len(paths))
	for _, path := range paths {
		file, err := deps.LoadFile(path)
		if err != nil {
			return err
		}
		summaries = append(summaries, summarize(file))
	}

	out := cmd.OutOrStdout()
	if format == config.OutputFormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	for _, s := range summaries {
		fmt.Fprintf(out, "%s\n", s.File)
		fmt.Fprintf(out, "  speakers:    %d\n", s.Speakers)
		fmt.Fprintf(out, "  segments:    %d\n", s.Segments)
		fmt.Fprintf(out, "  tokens:      %d (%d punctuation)\n", s.Tokens, s.Punctuation)
		fmt.Fprintf(out, "  duration:    %s\n", stitch.FormatDuration(s.DurationSecs))
	}
	return nil
}

// summarize computes one file's statistics.
func summarize(file *transcript.File) fileSummary {
	speakers := make(map[string]struct{})
	duration := 0.0
	for _, seg := range file.Segments {
		speakers[seg.SpeakerLabel] = struct{}{}
		if seg.EndTime > duration {
			duration = seg.EndTime
		}
	}

	punctuation := 0
	for _, tok := range file.Tokens {
		if tok.IsPunctuation {
			punctuation++
		} else if tok.EndTime > duration {
			duration = tok.EndTime
		}
	}

	return fileSummary{
		File:         file.Source,
		Speakers:     len(speakers),
		Segments:     len(file.Segments),
		Tokens:       len(file.Tokens),
		Punctuation:  punctuation,
		DurationSecs: duration,
	}
}
