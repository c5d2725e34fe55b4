package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback.
// A present pointer to a zero value wins over the fallback, which is what gives
// partial updates their "explicit false/0 is applied" semantics.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr is Coalesce for nullable fields whose current value is itself a
// pointer. An omitted field keeps the stored value; clearing a nullable column
// through a patch is not supported.
func CoalescePtr[T any](ptr, fallback *T) *T {
	if ptr != nil {
		return ptr
	}
	return fallback
}
