package frame

import "io"

// ReadFrame reads one frame from r: the 9-byte header, then exactly the
// declared payload length, decoded into the matching Payload variant.
// Frame types without a codec here come back as RawPayload.
func ReadFrame(r io.Reader) (Frame, error) {
	h, err := ReadFrameHeader(r)
	if err != nil {
		return Frame{}, err
	}
	raw := make([]byte, h.Length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Frame{}, err
	}
	p, err := decodePayload(raw, h)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Header: h, Payload: p}, nil
}

func decodePayload(raw []byte, h FrameHeader) (Payload, error) {
	switch h.Type {
	case FrameHeaders:
		p, _, err := DecodeHeadersPayload(raw, h)
		return p, err
	case FrameContinuation:
		p, _, err := DecodeContinuationPayload(raw, h)
		return p, err
	case FramePushPromise:
		p, _, err := DecodePushPromisePayload(raw, h)
		return p, err
	case FrameGoAway:
		p, _, err := DecodeGoawayPayload(raw, h)
		return p, err
	default:
		return RawPayload{Data: raw}, nil
	}
}

// WriteFrame writes one frame to w. The header's Length field is set from
// the encoded payload; Type, Flags and StreamID are taken as given.
func WriteFrame(w io.Writer, f Frame) error {
	body := EncodePayload(f.Payload)
	f.Header.Length = uint32(len(body))
	if err := WriteFrameHeader(w, f.Header); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

// EncodePayload returns the wire form of any payload variant.
func EncodePayload(p Payload) []byte {
	switch p := p.(type) {
	case HeadersPayload:
		return p.Encode()
	case ContinuationPayload:
		return p.Encode()
	case PushPromisePayload:
		return p.Encode()
	case GoawayPayload:
		return p.Encode()
	case RawPayload:
		return p.Encode()
	default:
		return nil
	}
}
