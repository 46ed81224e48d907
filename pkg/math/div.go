package math

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Integer interface {
	Signed | Unsigned
}

func DivRoundUp[T Integer](a, b T) T {
	if a%b == 0 {
		return a / b
	}
	return a/b + 1
}

// RoundUp returns the smallest multiple of `b` that is >= `a`.
func RoundUp[T Integer](a, b T) T {
	return DivRoundUp(a, b) * b
}
