package headerblock

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/net/http2/hpack"
)

// DefaultHeaderTableSize is the initial HPACK dynamic table size
// (RFC 7540 Section 6.5.2).
const DefaultHeaderTableSize = 4096

// ErrContextSpent is returned when a context handle is used after it has
// been consumed by an encode or decode call.
var ErrContextSpent = errors.New("headerblock: context handle already spent")

// encoderState is the connection-scoped HPACK encoder shared by the chain
// of EncodeContext handles.
type encoderState struct {
	buf bytes.Buffer
	enc *hpack.Encoder
}

// EncodeContext is a single-owner handle on a connection's HPACK encoder.
// Each compression call consumes the handle and returns its successor, so
// ordered use of the shared dynamic table is visible in the types: holding
// the newest handle means holding the right to encode next.
type EncodeContext struct {
	state *encoderState
	spent bool
}

// NewEncodeContext returns the first handle on a fresh HPACK encoder.
func NewEncodeContext(maxTableSize uint32) *EncodeContext {
	s := &encoderState{}
	s.enc = hpack.NewEncoder(&s.buf)
	s.enc.SetMaxDynamicTableSize(maxTableSize)
	return &EncodeContext{state: s}
}

// compress encodes the header list into one compressed block and hands
// back the successor handle. The receiving handle is spent either way;
// after an encoding error the dynamic table state is unreliable and no
// successor is issued.
func (c *EncodeContext) compress(headers []hpack.HeaderField) ([]byte, *EncodeContext, error) {
	if c.spent {
		return nil, nil, ErrContextSpent
	}
	c.spent = true
	s := c.state
	s.buf.Reset()
	for _, f := range headers {
		if err := s.enc.WriteField(f); err != nil {
			return nil, nil, fmt.Errorf("headerblock: compress %q: %w", f.Name, err)
		}
	}
	block := append([]byte(nil), s.buf.Bytes()...)
	return block, &EncodeContext{state: s}, nil
}

// DecodeContext is the inbound counterpart of EncodeContext: a
// single-owner handle on a connection's HPACK decoder, consumed and
// reissued per decoded block so blocks are decompressed in arrival order.
type DecodeContext struct {
	dec   *hpack.Decoder
	spent bool
}

// NewDecodeContext returns the first handle on a fresh HPACK decoder.
func NewDecodeContext(maxTableSize uint32) *DecodeContext {
	return &DecodeContext{dec: hpack.NewDecoder(maxTableSize, nil)}
}

// Decode decompresses one complete header block, as produced by Assemble,
// and hands back the successor handle.
func (c *DecodeContext) Decode(block []byte) ([]hpack.HeaderField, *DecodeContext, error) {
	if c.spent {
		return nil, nil, ErrContextSpent
	}
	c.spent = true
	fields, err := c.dec.DecodeFull(block)
	if err != nil {
		return nil, nil, fmt.Errorf("headerblock: decompress: %w", err)
	}
	return fields, &DecodeContext{dec: c.dec}, nil
}
