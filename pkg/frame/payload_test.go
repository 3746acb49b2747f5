package frame

import (
	"bytes"
	"errors"
	"testing"
)

// TestHeadersPayloadRoundTrip tests HEADERS body encode/decode with and
// without the priority sub-field.
func TestHeadersPayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload HeadersPayload
	}{
		{"plain", HeadersPayload{BlockFragment: []byte{0x82, 0x86, 0x84}}},
		{"empty fragment", HeadersPayload{BlockFragment: nil}},
		{"with priority", HeadersPayload{
			Priority:      &PrioritySpec{StreamDep: 3, Weight: 15},
			BlockFragment: []byte{0x82},
		}},
		{"exclusive priority", HeadersPayload{
			Priority:      &PrioritySpec{Exclusive: true, StreamDep: 7, Weight: 255},
			BlockFragment: []byte("fragment"),
		}},
	}
	for _, tt := range tests {
		body := tt.payload.Encode()
		h := FrameHeader{
			Length:   uint32(len(body)),
			Type:     FrameHeaders,
			StreamID: 1,
		}
		if tt.payload.Priority != nil {
			h.Flags |= FlagHeadersPriority
		}
		got, remaining, err := DecodeHeadersPayload(body, h)
		if err != nil {
			t.Fatalf("%s: DecodeHeadersPayload: %v", tt.name, err)
		}
		if len(remaining) != 0 {
			t.Errorf("%s: remaining = %d bytes, want 0", tt.name, len(remaining))
		}
		if !bytes.Equal(got.BlockFragment, tt.payload.BlockFragment) {
			t.Errorf("%s: fragment = % x, want % x", tt.name, got.BlockFragment, tt.payload.BlockFragment)
		}
		if (got.Priority == nil) != (tt.payload.Priority == nil) {
			t.Fatalf("%s: priority presence = %v, want %v", tt.name, got.Priority != nil, tt.payload.Priority != nil)
		}
		if got.Priority != nil && *got.Priority != *tt.payload.Priority {
			t.Errorf("%s: priority = %+v, want %+v", tt.name, *got.Priority, *tt.payload.Priority)
		}
	}
}

// TestHeadersPayloadRemaining tests that bytes past the declared frame
// length are handed back untouched.
func TestHeadersPayloadRemaining(t *testing.T) {
	trailer := []byte{0x00, 0x00, 0x04, 0x00, 0x00}
	raw := append([]byte{0x82, 0x86}, trailer...)
	h := FrameHeader{Length: 2, Type: FrameHeaders, StreamID: 1}
	got, remaining, err := DecodeHeadersPayload(raw, h)
	if err != nil {
		t.Fatalf("DecodeHeadersPayload: %v", err)
	}
	if !bytes.Equal(got.BlockFragment, []byte{0x82, 0x86}) {
		t.Errorf("fragment = % x", got.BlockFragment)
	}
	if !bytes.Equal(remaining, trailer) {
		t.Errorf("remaining = % x, want % x", remaining, trailer)
	}
}

// TestHeadersSelfDependency tests that a priority sub-field depending on
// the frame's own stream is rejected with the stream's id and
// PROTOCOL_ERROR, and that the remainder survives in the error.
func TestHeadersSelfDependency(t *testing.T) {
	p := HeadersPayload{
		Priority:      &PrioritySpec{StreamDep: 5, Weight: 10},
		BlockFragment: []byte{0x82},
	}
	trailer := []byte("next frame")
	raw := append(p.Encode(), trailer...)
	h := FrameHeader{
		Length:   uint32(len(p.Encode())),
		Type:     FrameHeaders,
		Flags:    FlagHeadersPriority,
		StreamID: 5,
	}
	_, _, err := DecodeHeadersPayload(raw, h)
	var perr *ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ProtocolError", err)
	}
	if perr.StreamID != 5 {
		t.Errorf("StreamID = %d, want 5", perr.StreamID)
	}
	if perr.Code != ErrCodeProtocolError {
		t.Errorf("Code = %s, want PROTOCOL_ERROR", perr.Code)
	}
	if !bytes.Equal(perr.Remaining, trailer) {
		t.Errorf("Remaining = %q, want %q", perr.Remaining, trailer)
	}
}

// TestHeadersPadding tests decoding of padded HEADERS bodies, both valid
// and with a pad length that swallows the whole payload.
func TestHeadersPadding(t *testing.T) {
	fragment := []byte{0x82, 0x86, 0x84}

	// Pad Length byte, fragment, then 4 bytes of padding.
	body := append([]byte{4}, fragment...)
	body = append(body, 0, 0, 0, 0)
	h := FrameHeader{
		Length:   uint32(len(body)),
		Type:     FrameHeaders,
		Flags:    FlagHeadersPadded,
		StreamID: 1,
	}
	got, _, err := DecodeHeadersPayload(body, h)
	if err != nil {
		t.Fatalf("DecodeHeadersPayload: %v", err)
	}
	if !bytes.Equal(got.BlockFragment, fragment) {
		t.Errorf("fragment = % x, want % x", got.BlockFragment, fragment)
	}

	// Declared pad length exceeds what is left of the payload.
	trailer := []byte{0xff, 0xfe}
	bad := append([]byte{200, 0x82}, trailer...)
	h = FrameHeader{Length: 2, Type: FrameHeaders, Flags: FlagHeadersPadded, StreamID: 1}
	_, _, err = DecodeHeadersPayload(bad, h)
	var perr *ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ProtocolError", err)
	}
	if perr.StreamID != 0 {
		t.Errorf("StreamID = %d, want 0 (connection-level)", perr.StreamID)
	}
	if perr.Code != ErrCodeProtocolError {
		t.Errorf("Code = %s, want PROTOCOL_ERROR", perr.Code)
	}
	if !bytes.Equal(perr.Remaining, trailer) {
		t.Errorf("Remaining = % x, want % x", perr.Remaining, trailer)
	}
}

// TestHeadersShortBuffer tests that a buffer shorter than the declared
// frame length fails with a malformed-frame error before any unpacking.
func TestHeadersShortBuffer(t *testing.T) {
	h := FrameHeader{Length: 100, Type: FrameHeaders, StreamID: 1}
	_, _, err := DecodeHeadersPayload([]byte{0x82}, h)
	var merr *MalformedFrameError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *MalformedFrameError", err)
	}
	if merr.Have != 1 || merr.Want != 100 {
		t.Errorf("Have/Want = %d/%d, want 1/100", merr.Have, merr.Want)
	}
}

// TestHeadersTruncatedPriority tests a PRIORITY-flagged frame whose
// unpadded body cannot hold the 5-byte sub-field.
func TestHeadersTruncatedPriority(t *testing.T) {
	h := FrameHeader{Length: 3, Type: FrameHeaders, Flags: FlagHeadersPriority, StreamID: 1}
	_, _, err := DecodeHeadersPayload([]byte{0x00, 0x00, 0x03}, h)
	var merr *MalformedFrameError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *MalformedFrameError", err)
	}
}

// TestGoawayRoundTrip tests GOAWAY body encode/decode.
func TestGoawayRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload GoawayPayload
	}{
		{"no debug data", GoawayPayload{LastStreamID: 5, ErrorCode: ErrCodeNo}},
		{"debug data", GoawayPayload{
			LastStreamID: 101,
			ErrorCode:    ErrCodeEnhanceYourCalm,
			DebugData:    []byte("too many pings"),
		}},
		{"max stream id", GoawayPayload{LastStreamID: 0x7fffffff, ErrorCode: ErrCodeProtocolError}},
	}
	for _, tt := range tests {
		body := tt.payload.Encode()
		h := FrameHeader{Length: uint32(len(body)), Type: FrameGoAway}
		got, remaining, err := DecodeGoawayPayload(body, h)
		if err != nil {
			t.Fatalf("%s: DecodeGoawayPayload: %v", tt.name, err)
		}
		if len(remaining) != 0 {
			t.Errorf("%s: remaining = %d bytes, want 0", tt.name, len(remaining))
		}
		if got.LastStreamID != tt.payload.LastStreamID || got.ErrorCode != tt.payload.ErrorCode {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.payload)
		}
		if !bytes.Equal(got.DebugData, tt.payload.DebugData) {
			t.Errorf("%s: debug data = %q, want %q", tt.name, got.DebugData, tt.payload.DebugData)
		}
	}
}

// TestGoawayReservedBit tests that the reserved bit ahead of the last
// stream id is zeroed on encode and ignored on decode.
func TestGoawayReservedBit(t *testing.T) {
	body := GoawayPayload{LastStreamID: 0x80000003}.Encode()
	if body[0]&0x80 != 0 {
		t.Errorf("reserved bit set on the wire: % x", body[:4])
	}
	body[0] |= 0x80
	h := FrameHeader{Length: uint32(len(body)), Type: FrameGoAway}
	got, _, err := DecodeGoawayPayload(body, h)
	if err != nil {
		t.Fatalf("DecodeGoawayPayload: %v", err)
	}
	if got.LastStreamID != 3 {
		t.Errorf("LastStreamID = %d, want 3", got.LastStreamID)
	}
}

// TestGoawayShort tests GOAWAY bodies shorter than the 8 fixed bytes.
func TestGoawayShort(t *testing.T) {
	h := FrameHeader{Length: 4, Type: FrameGoAway}
	_, _, err := DecodeGoawayPayload([]byte{0, 0, 0, 1}, h)
	var merr *MalformedFrameError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want *MalformedFrameError", err)
	}
}

// TestPushPromiseRoundTrip tests PUSH_PROMISE body encode/decode.
func TestPushPromiseRoundTrip(t *testing.T) {
	p := PushPromisePayload{PromisedStreamID: 4, BlockFragment: []byte{0x82, 0x86}}
	body := p.Encode()
	h := FrameHeader{Length: uint32(len(body)), Type: FramePushPromise, StreamID: 1}
	got, remaining, err := DecodePushPromisePayload(body, h)
	if err != nil {
		t.Fatalf("DecodePushPromisePayload: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("remaining = %d bytes, want 0", len(remaining))
	}
	if got.PromisedStreamID != p.PromisedStreamID {
		t.Errorf("PromisedStreamID = %d, want %d", got.PromisedStreamID, p.PromisedStreamID)
	}
	if !bytes.Equal(got.BlockFragment, p.BlockFragment) {
		t.Errorf("fragment = % x, want % x", got.BlockFragment, p.BlockFragment)
	}
}

// TestContinuationDecode tests CONTINUATION body decode.
func TestContinuationDecode(t *testing.T) {
	raw := []byte{0x82, 0x86, 0x84, 0xff}
	h := FrameHeader{Length: 3, Type: FrameContinuation, StreamID: 1}
	got, remaining, err := DecodeContinuationPayload(raw, h)
	if err != nil {
		t.Fatalf("DecodeContinuationPayload: %v", err)
	}
	if !bytes.Equal(got.BlockFragment, raw[:3]) {
		t.Errorf("fragment = % x, want % x", got.BlockFragment, raw[:3])
	}
	if !bytes.Equal(remaining, raw[3:]) {
		t.Errorf("remaining = % x, want % x", remaining, raw[3:])
	}
}

// TestReadWriteFrame tests the stream-level dispatcher round trip for
// every payload variant.
func TestReadWriteFrame(t *testing.T) {
	frames := []Frame{
		{
			Header: FrameHeader{Type: FrameHeaders, Flags: FlagHeadersEndHeaders | FlagHeadersPriority, StreamID: 1},
			Payload: HeadersPayload{
				Priority:      &PrioritySpec{StreamDep: 3, Weight: 100},
				BlockFragment: []byte{0x82},
			},
		},
		{
			Header:  FrameHeader{Type: FrameContinuation, Flags: FlagContinuationEndHeaders, StreamID: 1},
			Payload: ContinuationPayload{BlockFragment: []byte{0x86, 0x84}},
		},
		{
			Header:  FrameHeader{Type: FramePushPromise, Flags: FlagPushPromiseEndHeaders, StreamID: 1},
			Payload: PushPromisePayload{PromisedStreamID: 2, BlockFragment: []byte{0x82}},
		},
		{
			Header:  FrameHeader{Type: FrameGoAway, StreamID: 0},
			Payload: GoawayPayload{LastStreamID: 9, ErrorCode: ErrCodeNo, DebugData: []byte("bye")},
		},
		{
			Header:  FrameHeader{Type: FramePing, StreamID: 0},
			Payload: RawPayload{Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		},
	}
	var buf bytes.Buffer
	for _, f := range frames {
		if err := WriteFrame(&buf, f); err != nil {
			t.Fatalf("WriteFrame(%s): %v", f.Header.Type, err)
		}
	}
	for _, want := range frames {
		got, err := ReadFrame(&buf)
		if err != nil {
			t.Fatalf("ReadFrame: %v", err)
		}
		if got.Header.Type != want.Header.Type || got.Header.Flags != want.Header.Flags ||
			got.Header.StreamID != want.Header.StreamID {
			t.Errorf("header = %v, want type=%s flags=0x%02x stream=%d",
				got.Header, want.Header.Type, want.Header.Flags, want.Header.StreamID)
		}
		wantBody := EncodePayload(want.Payload)
		gotBody := EncodePayload(got.Payload)
		if !bytes.Equal(gotBody, wantBody) {
			t.Errorf("%s: body = % x, want % x", want.Header.Type, gotBody, wantBody)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes left in buffer after reading all frames", buf.Len())
	}
}
