//go:build debug

package zjson

import "fmt"

// checkInvariants panics if a just-loaded token array violates the
// invariants Load guarantees: every token fits inside buf, every
// container's Sub stays within the array, and stepping over its direct
// children by their own Sub counts finds Children of them (twice that
// for an object, one name and one value per pair). Built only into debug builds (-tags debug), same as a C
// assert() compiled out of release binaries.
func checkInvariants(tokens []Token, buf []byte) {
	for i, tok := range tokens {
		if tok.Start < 0 || tok.Start+tok.Len > len(buf) {
			panic(fmt.Sprintf("zjson: token %d out of bounds: %+v", i, tok))
		}
		if tok.Type != TypeObject && tok.Type != TypeArray {
			continue
		}
		if i+1+tok.Sub > len(tokens) {
			panic(fmt.Sprintf("zjson: token %d Sub overruns array: %+v", i, tok))
		}
		counted := 0
		for j := i + 1; j <= i+tok.Sub; {
			counted++
			j += 1 + tokens[j].Sub
		}
		expected := tok.Children
		if tok.Type == TypeObject {
			expected *= 2 // each pair contributes a name token and a value token
		}
		if counted != expected {
			panic(fmt.Sprintf("zjson: token %d Children/Sub mismatch: %+v", i, tok))
		}
	}
}
