package common

// Coalesce picks the first argument that is not the zero value of its type. Config loading uses
// it to fall back to orbit defaults for fields a document leaves out.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value when every candidate is zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v == zero {
			continue
		}
		return v
	}
	return zero
}

// Ptr returns a pointer to a copy of v, for optional fields where nil means "not set".
func Ptr[T any](v T) *T {
	return &v
}
