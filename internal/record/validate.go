package record

// ValidServiceName reports whether s is a legal service identifier:
// non-empty and built only from ASCII letters, digits, underscores,
// and hyphens.
func ValidServiceName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}
