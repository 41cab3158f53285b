package utils

// ScaleTo8 reduces a 16-bit PCM value to the signed 8-bit range.
// The shift is arithmetic, so the sign is preserved.
func ScaleTo8(v int) int {
	return v >> 8
}
