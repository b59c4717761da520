package buffer

import (
	"math"
	"strconv"
)

const baseDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// AppendInt appends v in the given base using lowercase digits. Bases
// outside [2, 36] are clamped. The residual is the number of digit bytes
// that did not fit.
//
// math.MinInt64 cannot be negated, so it falls back to strconv for bases
// 10, 16 and 8; in any other base it is silently dropped.
func (b *Buffer) AppendInt(v int64, base int) int {
	if base < 2 {
		base = 2
	} else if base > 36 {
		base = 36
	}
	if b.pos >= b.limit() {
		return 1
	}
	neg := v < 0
	if neg {
		v = -v
		if v < 0 {
			switch base {
			case 10, 16, 8:
				return b.AppendString(strconv.FormatInt(math.MinInt64, base))
			}
			return 0
		}
	}

	// Digits accumulate least significant first; 64 bits of base 2
	// plus a sign is the worst case.
	var stack [65]byte
	i := len(stack)
	u := uint64(v)
	for {
		q, r := u/uint64(base), u%uint64(base)
		i--
		stack[i] = baseDigits[r]
		u = q
		if u == 0 {
			break
		}
	}
	if neg {
		i--
		stack[i] = '-'
	}
	return b.Append(stack[i:])
}

// AppendUint appends v in the given base using lowercase digits. Bases
// outside [2, 36] are clamped.
func (b *Buffer) AppendUint(v uint64, base int) int {
	if base < 2 {
		base = 2
	} else if base > 36 {
		base = 36
	}
	if b.pos >= b.limit() {
		return 1
	}
	var stack [64]byte
	i := len(stack)
	for {
		q, r := v/uint64(base), v%uint64(base)
		i--
		stack[i] = baseDigits[r]
		v = q
		if v == 0 {
			break
		}
	}
	return b.Append(stack[i:])
}
