package vorbiscomment

import (
	"bytes"
	"encoding/binary"
)

// blockBuilder assembles raw Vorbis comment blocks for tests.
type blockBuilder struct {
	buf bytes.Buffer
}

func newBlock(vendor string) *blockBuilder {
	b := &blockBuilder{}
	b.buf.Write(signature[:])
	b.uint32(uint32(len(vendor)))
	b.buf.WriteString(vendor)
	return b
}

func (b *blockBuilder) uint32(v uint32) *blockBuilder {
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *blockBuilder) count(n int) *blockBuilder {
	return b.uint32(uint32(n))
}

func (b *blockBuilder) field(payload string) *blockBuilder {
	b.uint32(uint32(len(payload)))
	b.buf.WriteString(payload)
	return b
}

func (b *blockBuilder) framing(v byte) []byte {
	b.buf.WriteByte(v)
	return b.bytes()
}

func (b *blockBuilder) bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}
