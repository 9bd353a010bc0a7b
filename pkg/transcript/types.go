// Package transcript models and parses speech transcription result files.
//
// A result file carries two parallel timelines: a speaker diarization
// timeline (who spoke when) and an item timeline (the transcribed words and
// punctuation marks). Both are relative to the start of their own file.
package transcript

// Token is one transcribed unit: a word or a punctuation mark.
//
// Punctuation tokens carry no timing. For word tokens both timestamps are
// guaranteed present by the parser; a word without them is rejected as a
// malformed item before any Token is constructed.
type Token struct {
	// Text is the surface text of the best transcription alternative.
	Text string

	// StartTime and EndTime are seconds relative to the start of the source
	// file. Zero for punctuation tokens.
	StartTime float64
	EndTime   float64

	// IsPunctuation marks tokens that attach to the preceding word when
	// rendered.
	IsPunctuation bool
}

// SpeakerSegment is one contiguous run of the diarization timeline attributed
// to a single speaker label.
//
// Labels are unique within one diarization run but not across files: spk_0 in
// one file and spk_0 in another are unrelated speakers.
type SpeakerSegment struct {
	// SpeakerLabel is the diarizer's opaque identifier, e.g. "spk_0".
	SpeakerLabel string

	// StartTime and EndTime are seconds relative to the start of the source
	// file, with EndTime >= StartTime.
	StartTime float64
	EndTime   float64

	// SourceFile identifies the file this segment came from.
	SourceFile string

	// TokenCount is the number of items the diarizer placed in this segment.
	// Informational only; it does not drive the merge.
	TokenCount int
}

// File holds one parsed result file: its two ordered timelines plus the
// identity they came from.
type File struct {
	Source   string
	Segments []SpeakerSegment
	Tokens   []Token
}
