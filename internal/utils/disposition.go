package utils

import (
	"fmt"
	"strings"
)

// ContentDisposition builds an attachment header value for the given
// filename. It carries both an ASCII-only fallback (quoted) for legacy
// clients and an RFC 5987 percent-encoded UTF-8 form for modern ones.
func ContentDisposition(filename string) string {
	fallback := strings.TrimSpace(stripNonASCII(filename))
	if fallback == "" {
		fallback = "download"
	}
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", fallback, rfc5987Encode(filename))
}

func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < 0x80 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// rfc5987Encode percent-encodes every byte outside the attr-char set.
func rfc5987Encode(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}
