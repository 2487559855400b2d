package bitvector

import "iter"

// Reader is the read-only surface of a BitVector.
type Reader interface {
	Len() int
	Get(i int) (Bit, error)
	Rank1(i int) (uint64, error)
	Rank0(i int) (uint64, error)
	Select1(k int) (int, error)
	Select0(k int) (int, error)
	Scan(start, stop int, kind Bit, limit uint64) (uint64, int, error)
	Count(kind Bit) uint64
	Ones() iter.Seq[int]
	Words() []uint64
	String() string
}

var (
	_ Reader = (*BitVector)(nil)
	_ Reader = View{}
)

// View is a read-only handle to a BitVector. It exposes no mutation and
// Words returns a copy, so holders of a View cannot change the bits.
type View struct {
	bv *BitVector
}

func (v View) Len() int                    { return v.bv.Len() }
func (v View) Get(i int) (Bit, error)      { return v.bv.Get(i) }
func (v View) Rank1(i int) (uint64, error) { return v.bv.Rank1(i) }
func (v View) Rank0(i int) (uint64, error) { return v.bv.Rank0(i) }
func (v View) Select1(k int) (int, error)  { return v.bv.Select1(k) }
func (v View) Select0(k int) (int, error)  { return v.bv.Select0(k) }
func (v View) Count(kind Bit) uint64       { return v.bv.Count(kind) }
func (v View) Ones() iter.Seq[int]         { return v.bv.Ones() }
func (v View) Words() []uint64             { return v.bv.Words() }
func (v View) String() string              { return v.bv.String() }
func (v View) Equal(other *BitVector) bool { return v.bv.Equal(other) }

func (v View) Scan(start, stop int, kind Bit, limit uint64) (uint64, int, error) {
	return v.bv.Scan(start, stop, kind, limit)
}

// Clone returns a mutable deep copy of the viewed vector.
func (v View) Clone() *BitVector {
	return v.bv.Clone()
}
