/*
Package frame implements the HTTP/2 frame codecs for the control frames
that carry compressed header blocks (RFC 7540 Section 6).

This package covers:

  - The 9-byte frame header (Length, Type, Flags, Stream Identifier)
  - HEADERS payloads, including the optional 5-byte priority sub-field
    and optional padding
  - PUSH_PROMISE payloads
  - CONTINUATION payloads (raw header-block fragments)
  - GOAWAY payloads (last stream id, error code, debug data)

Payloads decode from byte buffers rather than streams: each decode slices
exactly the frame's declared length and hands back the unconsumed remainder,
so a caller can keep walking a read buffer that holds several frames. The
ReadFrame/WriteFrame pair layers a stream interface on top of the buffer
codecs for callers that work against an io.Reader.

# Wire Layout

All frames share the 9-byte header:

	00 00 0a 01 05 00 00 00 01
	|   |   | | |   |       |
	|   |   | | |   +------- Stream ID: 1
	|   |   | | +----------- Flags: END_HEADERS (0x04) | END_STREAM (0x01)
	|   |   | +------------- Type: HEADERS (0x01)
	|   |   +--------------- Length: 10 bytes
	+---------------------- Payload starts here

A HEADERS payload is laid out as:

	[Pad Length (8, iff PADDED)]
	[E(1) + Stream Dependency(31) + Weight(8), iff PRIORITY]
	[Header Block Fragment]
	[Padding (iff PADDED)]

A GOAWAY payload is laid out as:

	Reserved(1) + Last-Stream-ID(31) + Error Code(32) + Debug Data

Header-block fragments are opaque here; only the concatenation of every
fragment in a HEADERS/PUSH_PROMISE + CONTINUATION sequence forms a valid
compressed header block. See the headerblock package for fragmentation
and reassembly.
*/
package frame
