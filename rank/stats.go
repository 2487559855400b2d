package rank

import (
	"fmt"

	"github.com/hupe1980/succinct/bitvector"
)

// Stats describes the geometry and footprint of an index.
type Stats struct {
	// Bits is the length of the indexed bit vector.
	Bits int

	// Ones is the number of set bits.
	Ones uint64

	// CoarseBlock and FineBlock are the block sizes; 0 means unblocked.
	CoarseBlock int
	FineBlock   int

	// Level1Entries and Level2Entries are the table lengths.
	Level1Entries int
	Level2Entries int

	// Level1Width and Level2Width are the bits used per table entry.
	Level1Width int
	Level2Width int

	// VectorBits is the storage of the bit vector itself.
	VectorBits int

	// IndexBits is the storage of both tables.
	IndexBits int
}

// Overhead returns IndexBits relative to VectorBits.
func (s Stats) Overhead() float64 {
	if s.VectorBits == 0 {
		return 0
	}
	return float64(s.IndexBits) / float64(s.VectorBits)
}

func (s Stats) String() string {
	return fmt.Sprintf("bits=%d ones=%d b1=%d b2=%d level1=%dx%db level2=%dx%db overhead=%.2f%%",
		s.Bits, s.Ones, s.CoarseBlock, s.FineBlock,
		s.Level1Entries, s.Level1Width, s.Level2Entries, s.Level2Width,
		s.Overhead()*100)
}

// Stats returns the index geometry.
func (idx *Index) Stats() Stats {
	return Stats{
		Bits:          idx.bv.Len(),
		Ones:          idx.ones,
		CoarseBlock:   idx.coarse.size,
		FineBlock:     idx.fine.size,
		Level1Entries: idx.level1.Len(),
		Level2Entries: idx.level2.Len(),
		Level1Width:   idx.level1.Width(),
		Level2Width:   idx.level2.Width(),
		VectorBits:    max(1, (idx.bv.Len()+bitvector.WordBits-1)/bitvector.WordBits) * bitvector.WordBits,
		IndexBits:     idx.level1.SizeInBits() + idx.level2.SizeInBits(),
	}
}
