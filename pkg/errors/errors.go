// Package errors provides the domain error types for the stitch CLI.
//
// All three stitch failure modes are unrecoverable: skipping a malformed
// file would corrupt the running time offset for every file after it, so
// there is no retry or skip-and-continue path. Typed sentinels enable
// consistent errors.Is() checks at the command layer.
//
// Usage:
//
//	import sterrors "github.com/transcriptkit/stitch/pkg/errors"
//
//	// Return a domain error with context
//	return fmt.Errorf("item %d: %w", i, sterrors.ErrMalformedItem)
//
//	// Check for domain errors
//	if sterrors.IsMalformedItem(err) {
//	    // handle malformed input
//	}
package errors

import "errors"

// Domain errors - sentinel errors for the stitch failure taxonomy.
var (
	// ErrMalformedItem indicates a non-punctuation transcript item with a
	// missing start or end time.
	ErrMalformedItem = errors.New("malformed item")

	// ErrOrderingConsistency indicates a token that claims to start before
	// the speaker segment it is attributed to.
	ErrOrderingConsistency = errors.New("ordering consistency violation")

	// ErrStreamDesync indicates the segment stream and item stream of one
	// file did not exhaust together (truncated or structurally invalid input).
	ErrStreamDesync = errors.New("stream desynchronization")

	// ErrBadFormat indicates a document that does not match the expected
	// transcription result shape at all.
	ErrBadFormat = errors.New("bad format")
)

// IsMalformedItem reports whether any error in err's chain is ErrMalformedItem.
func IsMalformedItem(err error) bool {
	return errors.Is(err, ErrMalformedItem)
}

// IsOrderingConsistency reports whether any error in err's chain is ErrOrderingConsistency.
func IsOrderingConsistency(err error) bool {
	return errors.Is(err, ErrOrderingConsistency)
}

// IsStreamDesync reports whether any error in err's chain is ErrStreamDesync.
func IsStreamDesync(err error) bool {
	return errors.Is(err, ErrStreamDesync)
}

// IsBadFormat reports whether any error in err's chain is ErrBadFormat.
func IsBadFormat(err error) bool {
	return errors.Is(err, ErrBadFormat)
}
