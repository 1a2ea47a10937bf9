package utils

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer
}

var ErrNotPowerOfTwo = errors.New("value is not a power of two")

// CheckPow2 returns an error naming the offending value when it is not a nonzero power of two.
func CheckPow2[T Number](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return errors.Wrapf(ErrNotPowerOfTwo, "%s (%d)", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two.
func AlignUp[T Number](value T, alignment T) T {
	return (value + alignment - 1) & ^(alignment - 1)
}

// AlignDown rounds value down to a multiple of alignment, which must be a power of two.
func AlignDown[T Number](value T, alignment T) T {
	return value & ^(alignment - 1)
}

// ForEachRange calls fn once per run of consecutive set bits in mask, lowest first.
func ForEachRange(mask uint32, fn func(first, count int)) {
	for mask != 0 {
		first := bits.TrailingZeros32(mask)
		run := bits.TrailingZeros32(^(mask >> first))
		fn(first, run)
		if first+run >= 32 {
			return
		}
		mask &= ^(((uint32(1) << run) - 1) << first)
	}
}

// ForEachBit calls fn with the index of every set bit in mask, lowest first.
func ForEachBit(mask uint32, fn func(index int)) {
	for mask != 0 {
		index := bits.TrailingZeros32(mask)
		fn(index)
		mask &= mask - 1
	}
}

// MaskRange returns a mask with count bits set starting at first.
func MaskRange(first, count int) uint32 {
	if count <= 0 {
		return 0
	}
	if count >= 32 {
		return ^uint32(0) << first
	}
	return ((uint32(1) << count) - 1) << first
}
