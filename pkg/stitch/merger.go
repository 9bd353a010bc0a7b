package stitch

import (
	"fmt"

	sterrors "github.com/transcriptkit/stitch/pkg/errors"
	"github.com/transcriptkit/stitch/pkg/transcript"
)

// Merger walks one file's speaker segment stream and token stream in lockstep
// and yields speaker-attributed blocks.
//
// It is a two-cursor state machine: a token either falls inside the current
// segment (and is appended to the in-progress block) or crosses the segment's
// end (and the segment cursor advances). A new block opens only when the
// advanced-to segment carries a different speaker label; a re-segmentation
// with the same label keeps accumulating into the same block.
//
// The yielded sequence is finite and non-restartable. Blocks must not be
// mutated after Next returns them.
type Merger struct {
	segments   []transcript.SpeakerSegment
	tokens     []transcript.Token
	timeOffset float64

	si, ti    int
	current   *Block
	done      bool
	err       error
	maxOffset float64
}

// NewMerger creates a Merger over one file's two ordered timelines.
// timeOffset is the running cross-file base time; it is recorded on every
// yielded block and never mutated.
func NewMerger(segments []transcript.SpeakerSegment, tokens []transcript.Token, timeOffset float64) *Merger {
	return &Merger{
		segments:   segments,
		tokens:     tokens,
		timeOffset: timeOffset,
	}
}

// Next returns the next completed block, or (nil, nil) once both streams are
// exhausted. After an error, every subsequent call returns the same error.
func (m *Merger) Next() (*Block, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.done {
		return nil, nil
	}

	if m.current == nil {
		if len(m.segments) == 0 || len(m.tokens) == 0 {
			return nil, m.fail(fmt.Errorf("empty segment or token stream: %w", sterrors.ErrBadFormat))
		}
		m.current = newBlock(m.segments[0], m.timeOffset)
	}

	for {
		if m.ti >= len(m.tokens) {
			return m.finish()
		}

		tok := m.tokens[m.ti]
		seg := m.segments[m.si]

		// A punctuation token always belongs to the current segment, and so
		// does a word ending at or before the segment's end (the bound is
		// inclusive: equality never advances the segment).
		if tok.IsPunctuation || tok.EndTime <= seg.EndTime {
			if !tok.IsPunctuation && tok.StartTime < seg.StartTime {
				return nil, m.fail(fmt.Errorf(
					"token %q starts at %gs before its segment (%s) starts at %gs: %w",
					tok.Text, tok.StartTime, seg.SpeakerLabel, seg.StartTime,
					sterrors.ErrOrderingConsistency))
			}
			m.current.append(tok)
			m.ti++
			continue
		}

		// The token runs past the current segment: advance the segment
		// cursor and re-evaluate the same token against the new segment.
		m.si++
		if m.si >= len(m.segments) {
			return nil, m.fail(fmt.Errorf(
				"segment stream exhausted with %d tokens unconsumed: %w",
				len(m.tokens)-m.ti, sterrors.ErrStreamDesync))
		}

		next := m.segments[m.si]
		if next.SpeakerLabel != seg.SpeakerLabel {
			finished := m.current
			m.current = newBlock(next, m.timeOffset)
			return finished, nil
		}
		// Same speaker across the segment boundary: a diarization
		// re-segmentation, not a turn change. Keep accumulating.
	}
}

// finish runs the termination checks once the token stream is exhausted: the
// segment cursor must be on the final segment, or the file is truncated.
func (m *Merger) finish() (*Block, error) {
	if m.si != len(m.segments)-1 {
		return nil, m.fail(fmt.Errorf(
			"token stream exhausted with %d speaker segments unconsumed: %w",
			len(m.segments)-1-m.si, sterrors.ErrStreamDesync))
	}

	lastSeg := m.segments[len(m.segments)-1]
	lastTok := m.tokens[len(m.tokens)-1]
	m.maxOffset = lastSeg.EndTime
	if lastTok.EndTime > m.maxOffset {
		m.maxOffset = lastTok.EndTime
	}

	m.done = true
	return m.current, nil
}

func (m *Merger) fail(err error) error {
	m.err = err
	return err
}

// MaxOffset returns the largest end time observed in the file, the amount the
// running offset grows by for the next file. Valid only after Next has
// yielded the final block.
func (m *Merger) MaxOffset() float64 {
	return m.maxOffset
}
