package cuid2

// IsValid reports whether id looks like a generated identifier: non-empty,
// starting with a lowercase letter, lowercase alphanumeric throughout, and
// with a length inside [minLength, maxLength]. It checks shape only and
// cannot tell whether id actually came from this package.
func IsValid(id string, minLength, maxLength int) bool {
	if len(id) == 0 {
		return false
	}
	if len(id) < minLength || len(id) > maxLength {
		return false
	}
	if id[0] < 'a' || id[0] > 'z' {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
