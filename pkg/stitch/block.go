// Package stitch merges per-file speaker and token timelines into one
// continuous speaker-labeled transcript.
//
// A long recording that was split into chunks before transcription comes back
// as one result file per chunk, each with timestamps restarted at zero. The
// Merger walks one file's two timelines in lockstep and groups tokens into
// speaker-attributed blocks; the Stitcher runs the Merger over every file in
// order, carrying a running time offset so the output reads as one recording.
package stitch

import (
	"fmt"
	"math"
	"strings"

	"github.com/transcriptkit/stitch/pkg/transcript"
)

// Block is one speaker turn: a contiguous same-speaker run of tokens.
//
// A block is attributed to the first speaker segment of its run; diarization
// re-segmentations that keep the same label extend the block without changing
// its attribution. The time offset is fixed at creation and shifts the
// rendered header times to be relative to the start of the first file.
type Block struct {
	segment    transcript.SpeakerSegment
	tokens     []transcript.Token
	timeOffset float64
}

// newBlock starts a block attributed to seg with the given running offset.
func newBlock(seg transcript.SpeakerSegment, timeOffset float64) *Block {
	return &Block{segment: seg, timeOffset: timeOffset}
}

// append adds a token to the end of the block.
func (b *Block) append(tok transcript.Token) {
	b.tokens = append(b.tokens, tok)
}

// Segment returns the speaker segment this block is attributed to.
func (b *Block) Segment() transcript.SpeakerSegment {
	return b.segment
}

// Tokens returns the block's tokens in chronological order.
func (b *Block) Tokens() []transcript.Token {
	return b.tokens
}

// StartTime returns the block's start in seconds relative to the first file.
func (b *Block) StartTime() float64 {
	return b.segment.StartTime + b.timeOffset
}

// EndTime returns the block's end in seconds relative to the first file.
func (b *Block) EndTime() float64 {
	return b.segment.EndTime + b.timeOffset
}

// Text reconstructs the spoken text: one space before every word after the
// first piece of content, no space before punctuation so it attaches to the
// preceding word.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, tok := range b.tokens {
		if sb.Len() > 0 && !tok.IsPunctuation {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Render produces the block's two-line output form:
//
//	[ speaker spk_1:part2.mp3.json ] : ( 00:31:05:120 - 00:31:09:800 )
//	Sounds good, see you then.
//
// Times come from the attributed segment shifted by the running offset, not
// from the token span. Render is pure; calling it twice gives the same text.
func (b *Block) Render() string {
	header := fmt.Sprintf("[ speaker %s:%s ] : ( %s - %s )",
		b.segment.SpeakerLabel,
		b.segment.SourceFile,
		FormatDuration(b.StartTime()),
		FormatDuration(b.EndTime()),
	)
	return header + "\n" + b.Text()
}

// FormatDuration formats a duration in seconds as HH:MM:SS:mmm.
func FormatDuration(secs float64) string {
	millis := int64(math.Round(secs * 1000))
	h := millis / 3600000
	m := millis % 3600000 / 60000
	s := millis % 60000 / 1000
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d:%03d", h, m, s, ms)
}
