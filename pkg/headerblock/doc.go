/*
Package headerblock implements the multi-frame header-block protocol of
HTTP/2: splitting one compressed header block into a HEADERS frame followed
by zero or more CONTINUATION frames, and joining such a sequence back into
one compressed block.

Compression itself is HPACK (golang.org/x/net/http2/hpack). Because the
HPACK dynamic table is connection-global and mutates on every encode, the
encoder is wrapped in a single-owner EncodeContext handle: each Fragment
call consumes the handle it is given and returns a fresh one, and a spent
handle refuses further use. Funnel all outbound header encoding for a
connection through one sequential owner of the current handle.

Flag placement across a fragmented sequence:

	HEADERS      flags = END_STREAM (iff requested)
	CONTINUATION flags = 0
	...
	last frame   flags |= END_HEADERS

Every frame before the last carries exactly maxFrameSize bytes; the last
carries the remainder, which may be empty.
*/
package headerblock
