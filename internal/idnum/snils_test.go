package idnum

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestSNILSChecksum_Known(t *testing.T) {
	cases := []struct {
		digits string
		want   int
	}{
		{"000000000", 0},
		{"100000000", 9},  // single weighted digit
		{"112233445", 95}, // sum below 100 used as-is
		{"920000003", 0},  // sum exactly 100 collapses to 0
		{"999420000", 48}, // 250 mod 101
		{"999999999", 1},  // 405 mod 101
	}
	for _, tc := range cases {
		if got := SNILSChecksum(tc.digits); got != tc.want {
			t.Errorf("SNILSChecksum(%s) = %d, want %d", tc.digits, got, tc.want)
		}
	}
}

func TestSNILSChecksum_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		buf := make([]byte, 9)
		for j := range buf {
			buf[j] = byte('0' + rng.Intn(10))
		}
		got := SNILSChecksum(string(buf))
		if got < 0 || got > 99 {
			t.Fatalf("SNILSChecksum(%s) = %d, outside [0,99]", buf, got)
		}
	}
}

func TestFormatSNILS(t *testing.T) {
	got := FormatSNILS("112233445")
	if got != "112-233-445 95" {
		t.Errorf("FormatSNILS = %q, want %q", got, "112-233-445 95")
	}
}

var snilsFormatRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{3} \d{2}$`)

func TestSNILS_Generated(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		s := SNILS(rng)
		if !snilsFormatRe.MatchString(s) {
			t.Fatalf("SNILS %q does not match format", s)
		}
		digits := strings.NewReplacer("-", "", " ", "").Replace(s)
		control, err := strconv.Atoi(digits[9:11])
		if err != nil {
			t.Fatalf("control digits of %q: %v", s, err)
		}
		if SNILSChecksum(digits[:9]) != control {
			t.Fatalf("SNILS %q has wrong checksum", s)
		}
	}
}
