package idnum

import (
	"fmt"
	"math/rand"
)

// SNILSChecksum computes the two-digit control number for a 9-digit
// SNILS body. The weighted sum Σ digit[i]·(9−i) maps to the control as:
// sums below 100 are used as-is, 100 and 101 collapse to 0, larger sums
// are reduced mod 101 (with 100 again collapsing to 0).
func SNILSChecksum(digits string) int {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (9 - i)
	}
	switch {
	case sum < 100:
		return sum
	case sum == 100 || sum == 101:
		return 0
	default:
		sum %= 101
		if sum == 100 {
			return 0
		}
		return sum
	}
}

// FormatSNILS renders a 9-digit body and its checksum as
// "DDD-DDD-DDD SS".
func FormatSNILS(digits string) string {
	return fmt.Sprintf("%s-%s-%s %02d",
		digits[0:3], digits[3:6], digits[6:9], SNILSChecksum(digits))
}

// SNILS generates a random insurance number with a valid checksum.
func SNILS(rng *rand.Rand) string {
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = byte('0' + rng.Intn(10))
	}
	return FormatSNILS(string(buf))
}
