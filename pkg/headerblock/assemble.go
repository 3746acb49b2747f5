package headerblock

import (
	"errors"
	"fmt"

	"h2wire/pkg/frame"
)

// ErrBadSequence is returned by Assemble for a frame sequence that is not
// a header-block sequence: one that does not open with HEADERS or
// PUSH_PROMISE, or that contains a foreign frame type after the opener.
var ErrBadSequence = errors.New("headerblock: malformed header block sequence")

// Assemble concatenates the block fragments of an ordered
// HEADERS/PUSH_PROMISE + CONTINUATION* sequence into one compressed
// header block.
//
// The caller's stream state machine is expected to have already decided
// the sequence is complete (on END_HEADERS) and well ordered; Assemble
// checks only the payload variants, not flags or stream ids. A sequence
// ordered by a remote peer can still be malformed, so violations are
// reported as errors wrapping ErrBadSequence rather than asserted.
func Assemble(frames []frame.Frame) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrBadSequence)
	}
	var block []byte
	switch p := frames[0].Payload.(type) {
	case frame.HeadersPayload:
		block = append(block, p.BlockFragment...)
	case frame.PushPromisePayload:
		block = append(block, p.BlockFragment...)
	default:
		return nil, fmt.Errorf("%w: opens with %s, want HEADERS or PUSH_PROMISE",
			ErrBadSequence, frames[0].Header.Type)
	}
	for i, f := range frames[1:] {
		p, ok := f.Payload.(frame.ContinuationPayload)
		if !ok {
			return nil, fmt.Errorf("%w: frame %d is %s, want CONTINUATION",
				ErrBadSequence, i+1, f.Header.Type)
		}
		block = append(block, p.BlockFragment...)
	}
	return block, nil
}
