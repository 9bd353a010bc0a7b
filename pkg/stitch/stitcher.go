package stitch

import (
	"fmt"
	"io"

	"github.com/transcriptkit/stitch/pkg/logging"
	"github.com/transcriptkit/stitch/pkg/transcript"
)

// Stitcher merges an ordered list of transcription result files into one
// rendered transcript stream.
//
// Files are processed strictly sequentially: the running time offset for
// file N+1 is file N's largest end time folded into the previous offset, so
// it cannot be known before file N completes. The offset is threaded through
// explicitly; there is no shared state between files beyond it.
type Stitcher struct {
	log logging.Logger
}

// NewStitcher creates a Stitcher. A nil logger disables logging.
func NewStitcher(log logging.Logger) *Stitcher {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Stitcher{log: log}
}

// Result summarizes one completed run.
type Result struct {
	Files       int
	Blocks      int
	TotalOffset float64
}

// Run stitches the files in the order given, writing each rendered block to w
// followed by a blank line. Any malformed file aborts the whole run: a file
// skipped silently would corrupt the time offsets of every file after it.
func (s *Stitcher) Run(paths []string, w io.Writer) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files")
	}

	result := &Result{}
	timeOffset := 0.0

	for i, path := range paths {
		file, err := transcript.LoadFile(path)
		if err != nil {
			return nil, err
		}

		s.log.Debug("loaded file",
			logging.F("file", path),
			logging.F("segments", len(file.Segments)),
			logging.F("tokens", len(file.Tokens)),
			logging.F("time_offset", timeOffset))

		merger := NewMerger(file.Segments, file.Tokens, timeOffset)
		blocks := 0
		for {
			block, err := merger.Next()
			if err != nil {
				return nil, fmt.Errorf("merging %s: %w", path, err)
			}
			if block == nil {
				break
			}
			if _, err := io.WriteString(w, block.Render()+"\n\n"); err != nil {
				return nil, fmt.Errorf("writing output: %w", err)
			}
			blocks++
		}

		s.log.Debug("streams exhausted",
			logging.F("file", path),
			logging.F("max_offset", merger.MaxOffset()))

		timeOffset += merger.MaxOffset()
		result.Files++
		result.Blocks += blocks

		s.log.Info("stitched file",
			logging.F("file", path),
			logging.F("position", fmt.Sprintf("%d/%d", i+1, len(paths))),
			logging.F("blocks", blocks),
			logging.F("next_offset", timeOffset))
	}

	result.TotalOffset = timeOffset
	return result, nil
}
