package frame

// paddedFlag returns the PADDED flag bit for frame types that support
// padding, or 0 for types that do not.
func paddedFlag(t FrameType) uint8 {
	switch t {
	case FrameData:
		return FlagDataPadded
	case FrameHeaders:
		return FlagHeadersPadded
	case FramePushPromise:
		return FlagPushPromisePadded
	default:
		return 0
	}
}

// stripPadding removes the pad-length prefix and trailing padding from a
// frame payload when the frame's PADDED flag is set. A declared pad length
// that equals or exceeds the remaining payload is a protocol violation
// (RFC 7540 Section 6.2).
func stripPadding(payload []byte, h FrameHeader) ([]byte, error) {
	flag := paddedFlag(h.Type)
	if flag == 0 || h.Flags&flag == 0 {
		return payload, nil
	}
	if len(payload) < 1 {
		return nil, &paddingError{code: ErrCodeProtocolError}
	}
	padLen := int(payload[0])
	body := payload[1:]
	if padLen > len(body) {
		return nil, &paddingError{code: ErrCodeProtocolError}
	}
	return body[:len(body)-padLen], nil
}
