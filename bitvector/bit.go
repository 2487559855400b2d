package bitvector

// Bit is the value of a single position.
type Bit uint8

const (
	// Zero is a cleared bit.
	Zero Bit = 0
	// One is a set bit.
	One Bit = 1
)

// BitOf returns One for true and Zero for false.
func BitOf(set bool) Bit {
	if set {
		return One
	}
	return Zero
}

// Flip returns the opposite bit.
func (b Bit) Flip() Bit {
	if b == Zero {
		return One
	}
	return Zero
}

func (b Bit) String() string {
	if b == Zero {
		return "0"
	}
	return "1"
}
