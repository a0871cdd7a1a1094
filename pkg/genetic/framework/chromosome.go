package framework

import (
	"fmt"
	"strings"
)

// Chromosome uses a binary encoding scheme, where each group of bits encodes one
// decision variable. Index 0 is the most significant bit of the first variable.
type Chromosome []bool

// ParseChromosome converts a string of '0' and '1' runes into a Chromosome.
func ParseChromosome(s string) (Chromosome, error) {
	c := make(Chromosome, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			c = append(c, false)
		case '1':
			c = append(c, true)
		default:
			return nil, fmt.Errorf("chromosome: invalid character %q at %d", r, i)
		}
	}
	return c, nil
}

func (c Chromosome) Clone() Chromosome {
	if c == nil {
		return nil
	}
	bits := make(Chromosome, len(c))
	copy(bits, c)
	return bits
}

func (c Chromosome) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, bit := range c {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
