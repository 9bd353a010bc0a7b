// Package main provides the stitch CLI entry point.
// stitch reassembles chunked speech-transcription results into one
// continuous, speaker-labeled transcript.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/transcriptkit/stitch/cmd"
	"github.com/transcriptkit/stitch/pkg/buildinfo"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stitch",
	Short: "Stitch chunked transcription results into one transcript",
	Long: `stitch merges multiple chronologically-ordered speech-transcription result
files into one continuous, speaker-labeled transcript.

Long recordings are often split into chunks before transcription; each chunk
comes back with its own diarization timeline and timestamps restarted at
zero. stitch walks both timelines of every chunk, groups words into speaker
turns, and re-bases timestamps so the output reads as one recording.

Speaker labels are never matched across files: a label identifies a speaker
only within its own chunk's diarization run.

COMMON WORKFLOWS:
  Check chunks:   stitch inspect part*.mp3.json
  Merge chunks:   stitch merge part1.mp3.json part2.mp3.json -o out.txt
  Pipe onward:    stitch merge part*.mp3.json -o - | less`,
}

// Version command flags.
var versionOutputJSON bool

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version, commit hash, and build time of the stitch CLI.

Examples:
  stitch version                Show version
  stitch version --output-json  Machine-readable output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.Get()
		out := cmd.OutOrStdout()

		if versionOutputJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		}

		fmt.Fprintf(out, "stitch version %s\n", info.Version)
		fmt.Fprintf(out, "  commit:     %s\n", info.Commit)
		fmt.Fprintf(out, "  built:      %s\n", info.BuildTime)
		fmt.Fprintf(out, "  go:         %s\n", info.GoVersion)
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionOutputJSON, "output-json", false, "Output as JSON")

	rootCmd.AddCommand(cmd.NewMergeCommand(nil))
	rootCmd.AddCommand(cmd.NewInspectCommand(nil))
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
