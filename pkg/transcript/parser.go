package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	sterrors "github.com/transcriptkit/stitch/pkg/errors"
)

// itemTypePunctuation is the item type the transcription service assigns to
// punctuation marks; any other type is treated as a timed word.
const itemTypePunctuation = "punctuation"

// seconds decodes a timestamp that the transcription service emits either as
// a numeric string ("12.34") or as a bare number.
type seconds float64

func (s *seconds) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("parsing timestamp %q: %w", str, err)
		}
		*s = seconds(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = seconds(f)
	return nil
}

// document mirrors the transcription result JSON shape. Only the fields the
// merge consumes are decoded.
type document struct {
	Results struct {
		SpeakerLabels struct {
			Segments []rawSegment `json:"segments"`
		} `json:"speaker_labels"`
		Items []rawItem `json:"items"`
	} `json:"results"`
}

type rawSegment struct {
	StartTime    *seconds          `json:"start_time"`
	EndTime      *seconds          `json:"end_time"`
	SpeakerLabel string            `json:"speaker_label"`
	Items        []json.RawMessage `json:"items"`
}

type rawItem struct {
	StartTime    *seconds `json:"start_time"`
	EndTime      *seconds `json:"end_time"`
	Type         string   `json:"type"`
	Alternatives []struct {
		Content string `json:"content"`
	} `json:"alternatives"`
}

// LoadFile reads and parses one transcription result file. The file's path is
// recorded as the source identity on every segment.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transcript file: %w", err)
	}
	defer f.Close()

	parsed, err := Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return parsed, nil
}

// Parse decodes a transcription result document from r, attributing segments
// to the given source identity.
//
// Parsing is where the malformed-item invariant is enforced: a
// non-punctuation item missing either timestamp aborts with ErrMalformedItem.
// Files whose results section is missing either timeline entirely are
// rejected with ErrBadFormat.
func Parse(r io.Reader, source string) (*File, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding document: %v: %w", err, sterrors.ErrBadFormat)
	}

	rawSegments := doc.Results.SpeakerLabels.Segments
	rawItems := doc.Results.Items
	if len(rawSegments) == 0 {
		return nil, fmt.Errorf("no speaker segments in results: %w", sterrors.ErrBadFormat)
	}
	if len(rawItems) == 0 {
		return nil, fmt.Errorf("no items in results: %w", sterrors.ErrBadFormat)
	}

	segments := make([]SpeakerSegment, 0, len(rawSegments))
	for i, rs := range rawSegments {
		seg := SpeakerSegment{
			SpeakerLabel: rs.SpeakerLabel,
			SourceFile:   source,
			TokenCount:   len(rs.Items),
		}
		// Missing segment times default to zero, matching the service's
		// behavior of omitting them only for zero-length leading segments.
		if rs.StartTime != nil {
			seg.StartTime = float64(*rs.StartTime)
		}
		if rs.EndTime != nil {
			seg.EndTime = float64(*rs.EndTime)
		}
		if seg.EndTime < seg.StartTime {
			return nil, fmt.Errorf("segment %d: end time %g before start time %g: %w",
				i, seg.EndTime, seg.StartTime, sterrors.ErrBadFormat)
		}
		segments = append(segments, seg)
	}

	tokens := make([]Token, 0, len(rawItems))
	for i, ri := range rawItems {
		if len(ri.Alternatives) == 0 {
			return nil, fmt.Errorf("item %d has no alternatives: %w", i, sterrors.ErrBadFormat)
		}

		tok := Token{
			Text:          ri.Alternatives[0].Content,
			IsPunctuation: ri.Type == itemTypePunctuation,
		}
		if !tok.IsPunctuation {
			if ri.StartTime == nil || ri.EndTime == nil {
				return nil, fmt.Errorf("item %d (%q, type %q) missing timestamps: %w",
					i, tok.Text, ri.Type, sterrors.ErrMalformedItem)
			}
			tok.StartTime = float64(*ri.StartTime)
			tok.EndTime = float64(*ri.EndTime)
		}
		tokens = append(tokens, tok)
	}

	return &File{Source: source, Segments: segments, Tokens: tokens}, nil
}
