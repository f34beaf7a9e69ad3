package zjson

// Parse is a convenience entry point that sizes, allocates, and loads a
// token array for buf in one call, for callers who don't need to manage
// their own preallocated Token slice. It trades the zero-allocation
// guarantee of Load for ergonomics: a sized-allocate-then-load trio
// collapsed into a single call.
func Parse(buf []byte, opts ...Option) ([]Token, error) {
	n, err := Count(buf)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, n)
	written, err := Load(buf, tokens, opts...)
	if err != nil {
		return nil, err
	}
	return tokens[:written], nil
}

// Tokens pairs a loaded token array with the buffer it references, so
// its Query/Number/String/Type methods don't need buf threaded through
// every call.
type Tokens struct {
	Array []Token
	Buf   []byte
}

// ParseTokens loads buf into a Tokens ready for querying.
func ParseTokens(buf []byte, opts ...Option) (Tokens, error) {
	tokens, err := Parse(buf, opts...)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{Array: tokens, Buf: buf}, nil
}

// Query resolves path against t and returns the index of the matching token.
func (t Tokens) Query(path string, opts ...QueryOption) (int, error) {
	return Query(t.Array, t.Buf, path, opts...)
}

// Type resolves path and reports the Type of the token it names.
func (t Tokens) Type(path string, opts ...QueryOption) (Type, error) {
	return QueryType(t.Array, t.Buf, path, opts...)
}

// String resolves path and returns the matching string token's raw bytes.
func (t Tokens) String(path string, opts ...QueryOption) ([]byte, error) {
	return QueryString(t.Array, t.Buf, path, opts...)
}

// Number resolves path and converts the matching token to a float64.
func (t Tokens) Number(path string, opts ...QueryOption) (float64, error) {
	return QueryNumber(t.Array, t.Buf, path, opts...)
}

// At returns the token at index i, panicking if i is out of range, same
// as a direct t.Array[i] index would.
func (t Tokens) At(i int) Token {
	return t.Array[i]
}
