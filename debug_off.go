//go:build !debug

package zjson

// checkInvariants is a no-op outside debug builds; see debug_on.go.
func checkInvariants(tokens []Token, buf []byte) {}
