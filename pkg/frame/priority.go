package frame

import "encoding/binary"

// prioritySize is the wire size of the priority sub-field.
const prioritySize = 5

// PrioritySpec is the priority sub-field of a HEADERS frame: an exclusive
// bit, a 31-bit stream dependency and a weight byte. Weight is the raw wire
// value; add one to obtain the effective weight between 1 and 256.
type PrioritySpec struct {
	Exclusive bool
	StreamDep uint32
	Weight    uint8
}

// parsePriority parses the 5-byte priority sub-field from the front of b
// and returns the bytes after it.
func parsePriority(b []byte) (PrioritySpec, []byte, error) {
	if len(b) < prioritySize {
		return PrioritySpec{}, nil, &MalformedFrameError{
			Type: FrameHeaders,
			Have: len(b),
			Want: prioritySize,
		}
	}
	dep := binary.BigEndian.Uint32(b[:4])
	p := PrioritySpec{
		Exclusive: dep&0x80000000 != 0,
		StreamDep: dep & 0x7fffffff,
		Weight:    b[4],
	}
	return p, b[prioritySize:], nil
}

// appendTo appends the 5-byte wire form of p to b.
func (p PrioritySpec) appendTo(b []byte) []byte {
	dep := p.StreamDep & 0x7fffffff
	if p.Exclusive {
		dep |= 0x80000000
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], dep)
	b = append(b, buf[:]...)
	return append(b, p.Weight)
}
