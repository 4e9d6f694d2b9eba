package canvas

import "math/rand/v2"

const hexDigits = "0123456789ABCDEF"

// ColorSource produces display colors in "#RRGGBB" form.
type ColorSource func() string

// NextColor returns a random "#RRGGBB" color, each digit drawn uniformly.
func NextColor() string {
	b := make([]byte, 7)
	b[0] = '#'
	for i := 1; i < len(b); i++ {
		b[i] = hexDigits[rand.IntN(len(hexDigits))]
	}
	return string(b)
}
