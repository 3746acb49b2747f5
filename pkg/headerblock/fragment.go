package headerblock

import (
	"errors"

	"golang.org/x/net/http2/hpack"

	"h2wire/pkg/frame"
)

// ErrFrameSize is returned by Fragment for a max frame size of zero.
var ErrFrameSize = errors.New("headerblock: max frame size must be at least 1")

// Fragment compresses a header list against the connection's encode
// context and splits the result into a HEADERS + CONTINUATION* frame
// sequence. All frames carry streamID; END_STREAM is set on the HEADERS
// frame iff endStream is requested; END_HEADERS is set on the last frame
// of the sequence. The returned context supersedes ctx, which is spent.
//
// An empty header list still produces a single zero-length HEADERS frame
// so the stream sees a complete header block.
func Fragment(streamID uint32, headers []hpack.HeaderField, ctx *EncodeContext, maxFrameSize uint32, endStream bool) ([]frame.Frame, *EncodeContext, error) {
	if maxFrameSize < 1 {
		return nil, ctx, ErrFrameSize
	}
	block, next, err := ctx.compress(headers)
	if err != nil {
		return nil, nil, err
	}
	return SplitBlock(streamID, block, maxFrameSize, endStream), next, nil
}

// SplitBlock splits an already-compressed header block into the frame
// sequence described for Fragment. Every frame before the last carries
// exactly maxFrameSize bytes; the last carries the remainder, possibly
// zero bytes.
func SplitBlock(streamID uint32, block []byte, maxFrameSize uint32, endStream bool) []frame.Frame {
	var chunks [][]byte
	for uint32(len(block)) > maxFrameSize {
		chunks = append(chunks, block[:maxFrameSize])
		block = block[maxFrameSize:]
	}
	chunks = append(chunks, block)

	frames := make([]frame.Frame, len(chunks))
	for i, chunk := range chunks {
		h := frame.FrameHeader{
			Length:   uint32(len(chunk)),
			StreamID: streamID,
		}
		if i == 0 {
			h.Type = frame.FrameHeaders
			if endStream {
				h.Flags |= frame.FlagHeadersEndStream
			}
			frames[i] = frame.Frame{Header: h, Payload: frame.HeadersPayload{BlockFragment: chunk}}
		} else {
			h.Type = frame.FrameContinuation
			frames[i] = frame.Frame{Header: h, Payload: frame.ContinuationPayload{BlockFragment: chunk}}
		}
	}

	last := &frames[len(frames)-1].Header
	if last.Type == frame.FrameHeaders {
		last.Flags |= frame.FlagHeadersEndHeaders
	} else {
		last.Flags |= frame.FlagContinuationEndHeaders
	}
	return frames
}
