package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/internal/conv"
	"github.com/hupe1980/succinct/intvector"
)

type payloadBuffer struct {
	buf []byte
	pos int
	err error
}

func newPayloadBuffer(b []byte) *payloadBuffer {
	return &payloadBuffer{buf: b}
}

func (p *payloadBuffer) writeUint64(v uint64) {
	if p.err != nil {
		return
	}
	p.buf = binary.LittleEndian.AppendUint64(p.buf, v)
}

func (p *payloadBuffer) writeWords(words []uint64) {
	p.writeUint64(uint64(len(words)))
	for _, w := range words {
		p.writeUint64(w)
	}
}

func (p *payloadBuffer) readUint64() uint64 {
	if p.err != nil {
		return 0
	}
	if p.pos+8 > len(p.buf) {
		p.err = io.ErrUnexpectedEOF
		return 0
	}
	v := binary.LittleEndian.Uint64(p.buf[p.pos:])
	p.pos += 8
	return v
}

// readInt reads a u64 that must fit a non-negative int.
func (p *payloadBuffer) readInt() int {
	v := p.readUint64()
	if p.err != nil {
		return 0
	}
	n, err := conv.Uint64ToInt(v)
	if err != nil {
		p.err = err
		return 0
	}
	return n
}

// readWords reads a word count followed by that many words. The count is
// checked against the remaining bytes before anything is allocated.
func (p *payloadBuffer) readWords() []uint64 {
	count := p.readInt()
	if p.err != nil {
		return nil
	}
	if count > (len(p.buf)-p.pos)/8 {
		p.err = io.ErrUnexpectedEOF
		return nil
	}
	words := make([]uint64, count)
	for i := range words {
		words[i] = p.readUint64()
	}
	return words
}

func (p *payloadBuffer) remaining() int {
	return len(p.buf) - p.pos
}

func (p *payloadBuffer) writeBitVector(bv *bitvector.BitVector) {
	p.writeUint64(uint64(bv.Len()))
	p.writeWords(bv.Words())
}

func (p *payloadBuffer) readBitVector() *bitvector.BitVector {
	n := p.readInt()
	words := p.readWords()
	if p.err != nil {
		return nil
	}
	bv, err := bitvector.FromWordsWithLength(n, words)
	if err != nil {
		p.err = fmt.Errorf("bit vector: %w", err)
		return nil
	}
	return bv
}

func (p *payloadBuffer) writeIntVector(iv *intvector.IntVector) {
	p.writeUint64(uint64(iv.Len()))
	p.writeUint64(uint64(iv.Width()))
	p.writeWords(iv.Words())
}

func (p *payloadBuffer) readIntVector() *intvector.IntVector {
	n := p.readInt()
	l := p.readInt()
	words := p.readWords()
	if p.err != nil {
		return nil
	}
	// Reject lengths the words cannot hold before intvector allocates for them.
	if total, err := conv.MulInt(n, l); err != nil || total > len(words)*bitvector.WordBits {
		p.err = fmt.Errorf("int vector: %d values of %d bits in %d words", n, l, len(words))
		return nil
	}
	iv, err := intvector.FromWords(n, l, words)
	if err != nil {
		p.err = fmt.Errorf("int vector: %w", err)
		return nil
	}
	return iv
}
