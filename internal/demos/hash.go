package demos

import (
	"math/rand"
	"strings"
)

const hexDigits = "0123456789abcdef"

// RandomTxHash fabricates a 64-hex-character transaction hash for the
// simulated walkthroughs. Deliberately non-cryptographic: the value is
// cosmetic and never leaves the demo UI.
func RandomTxHash() string {
	var b strings.Builder
	b.Grow(66)
	b.WriteString("0x")
	for i := 0; i < 64; i++ {
		b.WriteByte(hexDigits[rand.Intn(16)])
	}
	return b.String()
}
