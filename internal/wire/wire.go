package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1
	hdrLen       = 4 + 1 + 8 + 4 + 4
)

var (
	ErrCorrupt = errors.New("tricache: corrupt snapshot")
	magic4     = [...]byte{'T', 'R', 'I', 'S'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Snapshot: magic(4) | ver(1) | gen(u64 be) | count(u32 be) | plen(u32 be) | payload(plen)
//
// count is the number of terms the writer encoded; the reader checks it
// against the decoded payload.
func EncodeSnapshot(gen uint64, count int, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], gen)
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(count))
	buf.Write(u4[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeSnapshot validates framing strictly: trailing bytes are corruption.
func DecodeSnapshot(b []byte) (gen uint64, count int, payload []byte, err error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version {
		return 0, 0, nil, ErrCorrupt
	}

	off := 5

	gen = binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	count = int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4

	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen != len(b)-off {
		return 0, 0, nil, ErrCorrupt
	}

	return gen, count, b[off:], nil
}
