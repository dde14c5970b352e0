package gles

import "strings"

// trimLog drops the NUL terminator some desktop implementations leave in
// the log string.
func trimLog(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}
