// Package markup cleans reStructuredText artifacts out of human-readable
// provider descriptions before they are shown in a terminal.
package markup

import "strings"

// edgeCutset is trimmed from both ends of a description.
const edgeCutset = " \n."

// StripRST trims spaces, newlines and periods from both edges of s, then
// drops every backtick, underscore and angle bracket.
func StripRST(s string) string {
	s = strings.Trim(s, edgeCutset)
	return strings.Map(func(r rune) rune {
		switch r {
		case '`', '_', '<', '>':
			return -1
		}
		return r
	}, s)
}
