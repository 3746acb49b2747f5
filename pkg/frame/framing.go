package frame

import (
	"encoding/binary"
	"fmt"
	"io"
)

// FrameType identifies a frame type as defined in RFC 7540 Section 6.
type FrameType uint8

const (
	FrameData         FrameType = 0x0
	FrameHeaders      FrameType = 0x1
	FramePriority     FrameType = 0x2
	FrameRSTStream    FrameType = 0x3
	FrameSettings     FrameType = 0x4
	FramePushPromise  FrameType = 0x5
	FramePing         FrameType = 0x6
	FrameGoAway       FrameType = 0x7
	FrameWindowUpdate FrameType = 0x8
	FrameContinuation FrameType = 0x9
)

var frameTypeNames = map[FrameType]string{
	FrameData:         "DATA",
	FrameHeaders:      "HEADERS",
	FramePriority:     "PRIORITY",
	FrameRSTStream:    "RST_STREAM",
	FrameSettings:     "SETTINGS",
	FramePushPromise:  "PUSH_PROMISE",
	FramePing:         "PING",
	FrameGoAway:       "GOAWAY",
	FrameWindowUpdate: "WINDOW_UPDATE",
	FrameContinuation: "CONTINUATION",
}

func (t FrameType) String() string {
	if name, ok := frameTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_FRAME_TYPE_%d", uint8(t))
}

// Frame flags.
const (
	FlagHeadersEndStream       = 0x1
	FlagHeadersEndHeaders      = 0x4
	FlagHeadersPadded          = 0x8
	FlagHeadersPriority        = 0x20
	FlagDataEndStream          = 0x1
	FlagDataPadded             = 0x8
	FlagPushPromiseEndHeaders  = 0x4
	FlagPushPromisePadded      = 0x8
	FlagContinuationEndHeaders = 0x4
	FlagSettingsAck            = 0x1
	FlagPingAck                = 0x1
)

// ErrCode is an HTTP/2 error code (RFC 7540 Section 7), carried by
// RST_STREAM and GOAWAY frames and by ProtocolError.
type ErrCode uint32

const (
	ErrCodeNo                 ErrCode = 0x0
	ErrCodeProtocolError      ErrCode = 0x1
	ErrCodeInternalError      ErrCode = 0x2
	ErrCodeFlowControlError   ErrCode = 0x3
	ErrCodeSettingsTimeout    ErrCode = 0x4
	ErrCodeStreamClosed       ErrCode = 0x5
	ErrCodeFrameSizeError     ErrCode = 0x6
	ErrCodeRefusedStream      ErrCode = 0x7
	ErrCodeCancel             ErrCode = 0x8
	ErrCodeCompressionError   ErrCode = 0x9
	ErrCodeConnectError       ErrCode = 0xa
	ErrCodeEnhanceYourCalm    ErrCode = 0xb
	ErrCodeInadequateSecurity ErrCode = 0xc
	ErrCodeHTTP11Required     ErrCode = 0xd
)

var errCodeNames = map[ErrCode]string{
	ErrCodeNo:                 "NO_ERROR",
	ErrCodeProtocolError:      "PROTOCOL_ERROR",
	ErrCodeInternalError:      "INTERNAL_ERROR",
	ErrCodeFlowControlError:   "FLOW_CONTROL_ERROR",
	ErrCodeSettingsTimeout:    "SETTINGS_TIMEOUT",
	ErrCodeStreamClosed:       "STREAM_CLOSED",
	ErrCodeFrameSizeError:     "FRAME_SIZE_ERROR",
	ErrCodeRefusedStream:      "REFUSED_STREAM",
	ErrCodeCancel:             "CANCEL",
	ErrCodeCompressionError:   "COMPRESSION_ERROR",
	ErrCodeConnectError:       "CONNECT_ERROR",
	ErrCodeEnhanceYourCalm:    "ENHANCE_YOUR_CALM",
	ErrCodeInadequateSecurity: "INADEQUATE_SECURITY",
	ErrCodeHTTP11Required:     "HTTP_1_1_REQUIRED",
}

func (c ErrCode) String() string {
	if name, ok := errCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_ERROR_CODE_%d", uint32(c))
}

// Default values.
const (
	FrameHeaderLen      = 9
	DefaultMaxFrameSize = 16384
	MaxMaxFrameSize     = 16777215
	ConnectionPreface   = "PRI * HTTP/2.0\r\n\r\nSM\r\n\r\n"
)

// FrameHeader is the 9-byte frame header. Length is 24 bits on the wire,
// StreamID 31 bits; the reserved high bit of the stream id is always zero.
type FrameHeader struct {
	Length   uint32
	Type     FrameType
	Flags    uint8
	StreamID uint32
}

// ReadFrameHeader reads a frame header from the reader.
func ReadFrameHeader(r io.Reader) (FrameHeader, error) {
	var h FrameHeader
	data := make([]byte, FrameHeaderLen)
	if _, err := io.ReadFull(r, data); err != nil {
		return h, err
	}
	h.Length = uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
	h.Type = FrameType(data[3])
	h.Flags = data[4]
	h.StreamID = binary.BigEndian.Uint32(data[5:9]) & 0x7fffffff
	return h, nil
}

// WriteFrameHeader writes a frame header to the writer.
func WriteFrameHeader(w io.Writer, h FrameHeader) error {
	_, err := w.Write(AppendFrameHeader(nil, h))
	return err
}

// AppendFrameHeader appends the 9-byte wire form of h to b.
func AppendFrameHeader(b []byte, h FrameHeader) []byte {
	b = append(b, byte(h.Length>>16), byte(h.Length>>8), byte(h.Length))
	b = append(b, byte(h.Type), h.Flags)
	var sid [4]byte
	binary.BigEndian.PutUint32(sid[:], h.StreamID&0x7fffffff)
	return append(b, sid[:]...)
}

// String returns a string representation.
func (h FrameHeader) String() string {
	return fmt.Sprintf("FrameHeader{len=%d, type=%s, flags=0x%02x, stream=%d}",
		h.Length, h.Type, h.Flags, h.StreamID)
}
