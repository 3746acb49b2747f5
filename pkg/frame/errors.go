package frame

import "fmt"

// ProtocolError reports a protocol violation found while decoding a frame
// payload. StreamID is the stream the violation is attributed to (0 means
// the violation is not tied to a specific stream), Code is the HTTP/2 error
// code, and Remaining holds the unconsumed bytes past the rejected frame so
// the caller can keep parsing the rest of its read buffer.
//
// This layer only reports; whether a given violation tears down the stream
// or the whole connection is the caller's decision.
type ProtocolError struct {
	StreamID  uint32
	Code      ErrCode
	Remaining []byte
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error on stream %d: %s", e.StreamID, e.Code)
}

// MalformedFrameError reports a frame whose declared length cannot be
// satisfied by the bytes actually available. Unlike ProtocolError there is
// no remainder to hand back: a truncated buffer has no trustworthy frame
// boundary to resume from.
type MalformedFrameError struct {
	Type FrameType
	Have int
	Want int
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("malformed %s frame: have %d bytes, want %d", e.Type, e.Have, e.Want)
}

// paddingError is returned by stripPadding when the declared pad length
// exceeds the payload. It surfaces to callers wrapped in a ProtocolError.
type paddingError struct {
	code ErrCode
}

func (e *paddingError) Error() string {
	return fmt.Sprintf("pad length exceeds payload: %s", e.code)
}
