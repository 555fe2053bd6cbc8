package address

import (
	"strings"
)

const DefaultHost = "0.0.0.0"

// Normalize completes an address consisting of a port only with the default host.
func Normalize(addr string) string {
	if len(stripPort(addr)) == 0 {
		return DefaultHost + addr
	}

	return addr
}

func stripPort(addr string) string {
	if colon := strings.LastIndexByte(addr, ':'); colon != -1 {
		return addr[:colon]
	}

	return addr
}
