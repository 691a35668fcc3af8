package rdf

// isQNameLocal reports whether value can be written as the local part of a
// prefixed name without escaping.
func isQNameLocal(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) && !isDigit(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	// a trailing '.' would terminate the statement
	return value[len(value)-1] != '.'
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || isDigit(ch) || ch == '-' || ch == '.'
}

// isPrefixName reports whether value is usable as a namespace prefix label.
func isPrefixName(value string) bool {
	if value == "" {
		return false
	}
	if !((value[0] >= 'A' && value[0] <= 'Z') || (value[0] >= 'a' && value[0] <= 'z')) {
		return false
	}
	for i := 1; i < len(value); i++ {
		if !isNameChar(value[i]) {
			return false
		}
	}
	return value[len(value)-1] != '.'
}
