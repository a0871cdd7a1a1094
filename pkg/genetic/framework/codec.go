package framework

import (
	"fmt"
	"math"
)

// maxBitLength keeps every decoded block inside a uint64.
const maxBitLength = 63

// BitLength returns the smallest L >= 1 such that 2^L - 1 >= (max-min)/epsilon.
func BitLength(min, max, epsilon float64) (int, error) {
	if err := validateBounds(min, max, epsilon); err != nil {
		return 0, err
	}
	ratio := (max - min) / epsilon
	if ratio >= math.Ldexp(1, maxBitLength) {
		return 0, fmt.Errorf("%w: resolution %v over [%v, %v] needs more than %d bits",
			ErrInvalidDomain, epsilon, min, max, maxBitLength)
	}
	l := int(math.Ceil(math.Log2(ratio + 1)))
	if l < 1 {
		l = 1
	}
	return l, nil
}

func validateBounds(min, max, epsilon float64) error {
	for _, v := range []float64{min, max, epsilon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in (%v, %v, %v)", ErrInvalidDomain, min, max, epsilon)
		}
	}
	if max <= min {
		return fmt.Errorf("%w: max %v must be greater than min %v", ErrInvalidDomain, max, min)
	}
	if epsilon <= 0 {
		return fmt.Errorf("%w: epsilon %v must be positive", ErrInvalidDomain, epsilon)
	}
	return nil
}

// DecodeBits interprets the bits as a big-endian unsigned integer.
func DecodeBits(bits []bool) uint64 {
	var d uint64
	for _, bit := range bits {
		d <<= 1
		if bit {
			d |= 1
		}
	}
	return d
}

// EncodeBits writes d as a big-endian block of length l into dst.
func EncodeBits(dst []bool, d uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = d&1 == 1
		d >>= 1
	}
}

func maxDecoded(l int) uint64 {
	return uint64(1)<<uint(l) - 1
}

// Value linearly maps a decoded integer of an l-bit block onto [min, max].
func Value(min, max float64, d uint64, l int) float64 {
	top := maxDecoded(l)
	switch {
	case d == 0:
		return min
	case d >= top:
		return max
	}
	v := min + (float64(d)/float64(top))*(max-min)
	return math.Max(min, math.Min(max, v))
}

// EncodeValue is the inverse of Value, rounding x to the nearest representable point.
func EncodeValue(min, max, x float64, l int) uint64 {
	top := maxDecoded(l)
	if x <= min {
		return 0
	}
	if x >= max {
		return top
	}
	d := math.Round((x - min) / (max - min) * float64(top))
	if d >= float64(top) {
		return top
	}
	return uint64(d)
}

// Codec converts between decision vectors and chromosomes. Block lengths are derived once.
type Codec struct {
	bounds  []Bounds
	lengths []int
	offsets []int
	total   int
}

// NewCodec validates every variable's bounds and lays out one block per variable.
func NewCodec(bounds []Bounds) (*Codec, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: no decision variables", ErrInvalidDomain)
	}
	c := &Codec{
		bounds:  make([]Bounds, len(bounds)),
		lengths: make([]int, len(bounds)),
		offsets: make([]int, len(bounds)),
	}
	copy(c.bounds, bounds)
	for i, b := range bounds {
		l, err := BitLength(b.Min, b.Max, b.Epsilon)
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", i, err)
		}
		c.lengths[i] = l
		c.offsets[i] = c.total
		c.total += l
	}
	if c.total < 2 {
		return nil, fmt.Errorf("%w: total length %d leaves no crossover locus", ErrDegenerateChromosome, c.total)
	}
	return c, nil
}

// Len is the total chromosome length.
func (c *Codec) Len() int {
	return c.total
}

func (c *Codec) Dimensions() int {
	return len(c.bounds)
}

func (c *Codec) BitLengths() []int {
	l := make([]int, len(c.lengths))
	copy(l, c.lengths)
	return l
}

func (c *Codec) Bounds() []Bounds {
	b := make([]Bounds, len(c.bounds))
	copy(b, c.bounds)
	return b
}

// Encode quantises every variable to its block and concatenates the blocks.
func (c *Codec) Encode(values []float64) (Chromosome, error) {
	if len(values) != len(c.bounds) {
		return nil, fmt.Errorf("%w: got %d values for %d variables", ErrInvalidParameter, len(values), len(c.bounds))
	}
	chromosome := make(Chromosome, c.total)
	for i, b := range c.bounds {
		block := chromosome[c.offsets[i] : c.offsets[i]+c.lengths[i]]
		EncodeBits(block, EncodeValue(b.Min, b.Max, values[i], c.lengths[i]))
	}
	return chromosome, nil
}

// Decode splits the chromosome at the block boundaries and maps each block onto its bounds.
func (c *Codec) Decode(chromosome Chromosome) ([]float64, error) {
	if len(chromosome) != c.total {
		return nil, fmt.Errorf("%w: got %d bits, want %d", ErrMismatchedChromosomeLength, len(chromosome), c.total)
	}
	values := make([]float64, len(c.bounds))
	for i, b := range c.bounds {
		block := chromosome[c.offsets[i] : c.offsets[i]+c.lengths[i]]
		values[i] = Value(b.Min, b.Max, DecodeBits(block), c.lengths[i])
	}
	return values, nil
}
