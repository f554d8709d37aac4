package bits_test

import (
	"testing"

	"hackemu.dev/emulator/pkg/bits"
)

func TestBit(t *testing.T) {
	cases := []struct {
		w    uint16
		i    uint
		want bool
	}{
		{0b0000000000000001, 0, true},
		{0b0000000000000001, 1, false},
		{0b1000000000000000, 15, true},
		{0b1000000000000000, 14, false},
		{0, 7, false},
		{0xFFFF, 7, true},
	}

	for _, c := range cases {
		if got := bits.Bit(c.w, c.i); got != c.want {
			t.Errorf("Bit(%016b, %d) = %v, want %v", c.w, c.i, got, c.want)
		}
	}
}

func TestSlice(t *testing.T) {
	cases := []struct {
		w        uint16
		lo, hi   uint
		want     uint16
	}{
		{0b1110101010000111, 0, 3, 0b111},
		{0b1110101010000111, 3, 6, 0b000},
		{0b1110101010000111, 6, 13, 0b0101010},
		{0xFFFF, 0, 16, 0xFFFF},
		{0, 0, 16, 0},
	}

	for _, c := range cases {
		got := bits.Slice(c.w, c.lo, c.hi)
		if got != c.want {
			t.Errorf("Slice(%016b, %d, %d) = %b, want %b", c.w, c.lo, c.hi, got, c.want)
		}
		if uint32(got) >= uint32(1)<<(c.hi-c.lo) {
			t.Errorf("Slice(%016b, %d, %d) = %b overflows %d bits", c.w, c.lo, c.hi, got, c.hi-c.lo)
		}
	}
}
