package frame

import "encoding/binary"

// Payload is the decoded body of a frame. The set of implementations is
// closed: HeadersPayload, ContinuationPayload, PushPromisePayload,
// GoawayPayload and RawPayload. Frame types this package does not decode
// pass through as RawPayload.
type Payload interface {
	framePayload()
}

// Frame pairs a frame header with its decoded payload.
type Frame struct {
	Header  FrameHeader
	Payload Payload
}

// HeadersPayload is the body of a HEADERS frame. Priority is non-nil iff
// the frame's PRIORITY flag was set on decode, and controls whether Encode
// emits the 5-byte priority sub-field.
type HeadersPayload struct {
	Priority      *PrioritySpec
	BlockFragment []byte
}

// ContinuationPayload is the body of a CONTINUATION frame: a raw
// header-block fragment with no priority and no padding.
type ContinuationPayload struct {
	BlockFragment []byte
}

// PushPromisePayload is the body of a PUSH_PROMISE frame.
type PushPromisePayload struct {
	PromisedStreamID uint32
	BlockFragment    []byte
}

// GoawayPayload is the body of a GOAWAY frame.
type GoawayPayload struct {
	LastStreamID uint32
	ErrorCode    ErrCode
	DebugData    []byte
}

// RawPayload carries the undecoded body of any other frame type.
type RawPayload struct {
	Data []byte
}

func (HeadersPayload) framePayload()      {}
func (ContinuationPayload) framePayload() {}
func (PushPromisePayload) framePayload()  {}
func (GoawayPayload) framePayload()       {}
func (RawPayload) framePayload()          {}

// slicePayload cuts the frame's declared length off the front of raw.
// A buffer shorter than the declared length is a malformed frame, checked
// before any unpacking.
func slicePayload(raw []byte, h FrameHeader) (payload, remaining []byte, err error) {
	if len(raw) < int(h.Length) {
		return nil, nil, &MalformedFrameError{Type: h.Type, Have: len(raw), Want: int(h.Length)}
	}
	return raw[:h.Length], raw[h.Length:], nil
}

// DecodeHeadersPayload decodes a HEADERS frame body from the front of raw.
// Bytes past the frame's declared length are returned as remaining for the
// caller to continue parsing.
//
// Malformed padding and a priority sub-field that names the frame's own
// stream as its dependency are reported as *ProtocolError; the error
// carries remaining so the caller can still walk the rest of the buffer.
func DecodeHeadersPayload(raw []byte, h FrameHeader) (HeadersPayload, []byte, error) {
	payload, remaining, err := slicePayload(raw, h)
	if err != nil {
		return HeadersPayload{}, nil, err
	}
	data, err := stripPadding(payload, h)
	if err != nil {
		perr := err.(*paddingError)
		return HeadersPayload{}, remaining, &ProtocolError{
			StreamID:  0,
			Code:      perr.code,
			Remaining: remaining,
		}
	}
	var p HeadersPayload
	if h.Flags&FlagHeadersPriority != 0 {
		prio, rest, err := parsePriority(data)
		if err != nil {
			return HeadersPayload{}, remaining, err
		}
		// A stream cannot depend on itself (RFC 7540 Section 5.3.1).
		if prio.StreamDep == h.StreamID {
			return HeadersPayload{}, remaining, &ProtocolError{
				StreamID:  prio.StreamDep,
				Code:      ErrCodeProtocolError,
				Remaining: remaining,
			}
		}
		p.Priority = &prio
		data = rest
	}
	p.BlockFragment = data
	return p, remaining, nil
}

// Encode returns the wire form of the HEADERS body. No padding is emitted;
// padding is an encode-side choice that belongs to a higher layer.
func (p HeadersPayload) Encode() []byte {
	if p.Priority == nil {
		return p.BlockFragment
	}
	b := make([]byte, 0, prioritySize+len(p.BlockFragment))
	b = p.Priority.appendTo(b)
	return append(b, p.BlockFragment...)
}

// DecodeContinuationPayload decodes a CONTINUATION frame body from the
// front of raw.
func DecodeContinuationPayload(raw []byte, h FrameHeader) (ContinuationPayload, []byte, error) {
	payload, remaining, err := slicePayload(raw, h)
	if err != nil {
		return ContinuationPayload{}, nil, err
	}
	return ContinuationPayload{BlockFragment: payload}, remaining, nil
}

// Encode returns the wire form of the CONTINUATION body.
func (p ContinuationPayload) Encode() []byte {
	return p.BlockFragment
}

// DecodePushPromisePayload decodes a PUSH_PROMISE frame body from the
// front of raw. Padding errors are reported the same way as for HEADERS.
func DecodePushPromisePayload(raw []byte, h FrameHeader) (PushPromisePayload, []byte, error) {
	payload, remaining, err := slicePayload(raw, h)
	if err != nil {
		return PushPromisePayload{}, nil, err
	}
	data, err := stripPadding(payload, h)
	if err != nil {
		perr := err.(*paddingError)
		return PushPromisePayload{}, remaining, &ProtocolError{
			StreamID:  0,
			Code:      perr.code,
			Remaining: remaining,
		}
	}
	if len(data) < 4 {
		return PushPromisePayload{}, nil, &MalformedFrameError{Type: h.Type, Have: len(data), Want: 4}
	}
	return PushPromisePayload{
		PromisedStreamID: binary.BigEndian.Uint32(data[:4]) & 0x7fffffff,
		BlockFragment:    data[4:],
	}, remaining, nil
}

// Encode returns the wire form of the PUSH_PROMISE body.
func (p PushPromisePayload) Encode() []byte {
	b := make([]byte, 4, 4+len(p.BlockFragment))
	binary.BigEndian.PutUint32(b, p.PromisedStreamID&0x7fffffff)
	return append(b, p.BlockFragment...)
}

// goawayFixedLen is the fixed part of a GOAWAY body: last stream id plus
// error code.
const goawayFixedLen = 8

// DecodeGoawayPayload decodes a GOAWAY frame body from the front of raw.
// The reserved bit ahead of the last stream id is ignored.
func DecodeGoawayPayload(raw []byte, h FrameHeader) (GoawayPayload, []byte, error) {
	payload, remaining, err := slicePayload(raw, h)
	if err != nil {
		return GoawayPayload{}, nil, err
	}
	if len(payload) < goawayFixedLen {
		return GoawayPayload{}, nil, &MalformedFrameError{Type: h.Type, Have: len(payload), Want: goawayFixedLen}
	}
	p := GoawayPayload{
		LastStreamID: binary.BigEndian.Uint32(payload[:4]) & 0x7fffffff,
		ErrorCode:    ErrCode(binary.BigEndian.Uint32(payload[4:8])),
	}
	if len(payload) > goawayFixedLen {
		p.DebugData = payload[goawayFixedLen:]
	}
	return p, remaining, nil
}

// Encode returns the wire form of the GOAWAY body. The reserved bit is
// forced to zero.
func (p GoawayPayload) Encode() []byte {
	b := make([]byte, goawayFixedLen, goawayFixedLen+len(p.DebugData))
	binary.BigEndian.PutUint32(b[:4], p.LastStreamID&0x7fffffff)
	binary.BigEndian.PutUint32(b[4:8], uint32(p.ErrorCode))
	return append(b, p.DebugData...)
}

// Encode returns the raw bytes unchanged.
func (p RawPayload) Encode() []byte {
	return p.Data
}
