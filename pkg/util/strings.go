package util

// TrimString cuts s down to at most length bytes
func TrimString(s string, length int) string {
	if len(s) <= length {
		return s
	}

	return s[:length]
}
