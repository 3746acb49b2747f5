package main

import (
	"bytes"
	"fmt"
	"log"

	"golang.org/x/net/http2/hpack"

	"h2wire/pkg/frame"
	"h2wire/pkg/headerblock"
)

func main() {
	fmt.Println("=== HTTP/2 Header Frame Demo ===")
	fmt.Println()

	// Demo 1: compress a header list and fragment it
	fmt.Println("1. Fragmenting a header block (max frame size 16):")
	headers := []hpack.HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":scheme", Value: "https"},
		{Name: ":path", Value: "/articles/42"},
		{Name: ":authority", Value: "demo.example.com"},
		{Name: "accept", Value: "text/html"},
	}
	ctx := headerblock.NewEncodeContext(headerblock.DefaultHeaderTableSize)
	frames, ctx, err := headerblock.Fragment(1, headers, ctx, 16, true)
	if err != nil {
		log.Fatal(err)
	}
	for i, f := range frames {
		fmt.Printf("   frame %d: %s\n", i, f.Header)
	}
	fmt.Println()

	// Demo 2: serialize the sequence and read it back
	fmt.Println("2. Wire round trip:")
	var wire bytes.Buffer
	for _, f := range frames {
		if err := frame.WriteFrame(&wire, f); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Printf("   %d frames serialized to %d bytes\n", len(frames), wire.Len())
	var received []frame.Frame
	for wire.Len() > 0 {
		f, err := frame.ReadFrame(&wire)
		if err != nil {
			log.Fatal(err)
		}
		received = append(received, f)
	}
	fmt.Printf("   %d frames read back\n", len(received))
	fmt.Println()

	// Demo 3: reassemble and decompress
	fmt.Println("3. Reassembly and decompression:")
	block, err := headerblock.Assemble(received)
	if err != nil {
		log.Fatal(err)
	}
	dec := headerblock.NewDecodeContext(headerblock.DefaultHeaderTableSize)
	fields, _, err := dec.Decode(block)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range fields {
		fmt.Printf("   %s\n", f)
	}
	fmt.Println()

	// Demo 4: the second encode reuses the shared dynamic table
	fmt.Println("4. Dynamic table reuse:")
	again, _, err := headerblock.Fragment(3, headers, ctx, 16, false)
	if err != nil {
		log.Fatal(err)
	}
	var total uint32
	for _, f := range again {
		total += f.Header.Length
	}
	fmt.Printf("   second encode of the same list: %d bytes in %d frame(s)\n", total, len(again))
	fmt.Println()

	// Demo 5: GOAWAY
	fmt.Println("5. GOAWAY frame:")
	goaway := frame.Frame{
		Header:  frame.FrameHeader{Type: frame.FrameGoAway, StreamID: 0},
		Payload: frame.GoawayPayload{LastStreamID: 3, ErrorCode: frame.ErrCodeNo, DebugData: []byte("demo over")},
	}
	var out bytes.Buffer
	if err := frame.WriteFrame(&out, goaway); err != nil {
		log.Fatal(err)
	}
	back, err := frame.ReadFrame(&out)
	if err != nil {
		log.Fatal(err)
	}
	gp := back.Payload.(frame.GoawayPayload)
	fmt.Printf("   last stream %d, code %s, debug %q\n", gp.LastStreamID, gp.ErrorCode, gp.DebugData)
}
