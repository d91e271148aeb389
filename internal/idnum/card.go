package idnum

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ovolkova/clinicgen/internal/dict"
	"github.com/ovolkova/clinicgen/internal/pick"
)

// LuhnSum computes the Luhn checksum of a digit string: every second
// digit from the right is doubled (digit-summed when >9) and the total
// is reduced mod 10. A valid card number sums to 0.
func LuhnSum(digits string) int {
	total := 0
	n := len(digits)
	for i := 0; i < n; i++ {
		d := int(digits[n-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d = d/10 + d%10
			}
		}
		total += d
	}
	return total % 10
}

// LuhnValid reports whether a digit string passes the Luhn check.
func LuhnValid(digits string) bool {
	return LuhnSum(digits) == 0
}

// Card generates a 16-digit Luhn-valid payment card number. The issuing
// bank and payment network are drawn from their distributions, a BIN is
// picked from that pair's pool, and the trailing check digit is searched
// so the full number passes Luhn. Returns the formatted number
// ("DDDD DDDD DDDD DDDD"), the bank, and the network.
func Card(rng *rand.Rand) (number, bank, network string) {
	bank = pick.Weighted(rng, dict.BankDist, dict.DefaultBank)
	network = pick.Weighted(rng, dict.NetworkDist, dict.DefaultNetwork)

	pool := dict.BankBINs[bank][network]
	if len(pool) == 0 {
		// bank without this network: fall back to its default-network pool
		pool = dict.BankBINs[bank][dict.DefaultNetwork]
		network = dict.DefaultNetwork
	}
	bin := pick.One(rng, pool)

	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(bin)
	for i := 0; i < 9; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	partial := sb.String()

	full := partial + "0"
	for check := 0; check < 10; check++ {
		candidate := partial + string(byte('0'+check))
		if LuhnValid(candidate) {
			full = candidate
			break
		}
	}

	return FormatCard(full), bank, network
}

// FormatCard renders 16 digits as four space-separated groups of four.
func FormatCard(digits string) string {
	return fmt.Sprintf("%s %s %s %s",
		digits[0:4], digits[4:8], digits[8:12], digits[12:16])
}
