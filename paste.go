package govt

// bracketedPasteEnd is the bracketed-paste end marker, ESC [ 2 0 1 ~, that a
// malicious or confused paste payload might smuggle in to trick an
// application into thinking bracketed paste mode ended early.
var bracketedPasteEnd = []byte{0x1b, '[', '2', '0', '1', '~'}

// PasteIsSafe reports whether b is safe to paste into a terminal without
// a confirmation prompt: it contains no LF/CR (which a shell would treat
// as Enter, potentially executing a partial or malicious command) and does
// not contain the bracketed-paste end sentinel (which could terminate
// bracketed-paste mode early and have the remainder interpreted as
// keystrokes). Empty input is always safe. O(n), no allocation.
func PasteIsSafe(b []byte) bool {
	for i, c := range b {
		if c == '\n' || c == '\r' {
			return false
		}
		if c == bracketedPasteEnd[0] && i+len(bracketedPasteEnd) <= len(b) {
			if matchesBracketedPasteEnd(b[i : i+len(bracketedPasteEnd)]) {
				return false
			}
		}
	}
	return true
}

func matchesBracketedPasteEnd(b []byte) bool {
	for i, c := range bracketedPasteEnd {
		if b[i] != c {
			return false
		}
	}
	return true
}
