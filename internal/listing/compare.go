package listing

import "cmp"

// Ordered compares records by a key with a natural ordering. Strings compare
// byte-wise, which is case-sensitive.
func Ordered[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Optional compares records by a key that may be missing. A missing key sorts below
// every present one.
func Optional[T any, K cmp.Ordered](key func(T) (K, bool)) func(a, b T) int {
	return func(a, b T) int {
		ka, okA := key(a)
		kb, okB := key(b)

		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}

		return cmp.Compare(ka, kb)
	}
}

type Cmper[K any] interface {
	Cmp(K) int
}

// Comparing compares records by a key that orders itself, such as decimal.Decimal.
func Comparing[T any, K Cmper[K]](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return key(a).Cmp(key(b))
	}
}

// Bools orders false before true.
func Bools[T any](key func(T) bool) func(a, b T) int {
	return func(a, b T) int {
		ka, kb := key(a), key(b)

		switch {
		case ka == kb:
			return 0
		case !ka:
			return -1
		default:
			return 1
		}
	}
}
