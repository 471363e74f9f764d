package text

// OpenQuote reports the quote character left unmatched at the end of s.
//
// A backslash escapes the next rune outside single quotes; inside single
// quotes it is literal, as in a POSIX shell. Single quotes are checked
// first when both kinds are open.
func OpenQuote(s string) (rune, bool) {
	var single, double, escape bool
	for _, r := range s {
		switch r {
		case '\'':
			if !double && !escape {
				single = !single
			}
			escape = false
		case '"':
			if !single && !escape {
				double = !double
			}
			escape = false
		case '\\':
			if single {
				continue
			}
			escape = !escape
		default:
			escape = false
		}
	}
	switch {
	case single:
		return '\'', true
	case double:
		return '"', true
	default:
		return 0, false
	}
}
