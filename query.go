package zjson

import "fmt"

type segKind int

const (
	segName segKind = iota
	segIndex
)

type segment struct {
	kind segKind
	name []byte
	idx  int
}

// DefaultDelimiter separates name segments in a path string ("a.b.c")
// when no WithDelimiter QueryOption overrides it.
const DefaultDelimiter = '.'

type queryConfig struct {
	delim byte
}

// QueryOption configures Query and its QueryType/QueryString/QueryNumber
// siblings.
type QueryOption func(*queryConfig)

// WithDelimiter overrides DefaultDelimiter, the byte that separates name
// segments in a path string.
func WithDelimiter(d byte) QueryOption {
	return func(c *queryConfig) { c.delim = d }
}

// parsePath splits a dotted, bracket-indexed path like "a.b[2].c" into
// its segments. A leading delimiter and repeated delimiters are
// tolerated; there is no escaping the delimiter or '[' inside a name
// segment.
func parsePath(path string, delim byte) ([]segment, error) {
	var segs []segment
	i := 0
	for i < len(path) {
		switch path[i] {
		case delim:
			i++
		case '[':
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j >= len(path) {
				return nil, fmt.Errorf("%w: unterminated '[' in path %q", ErrInvalid, path)
			}
			idx, err := parseIndex(path[i+1 : j])
			if err != nil {
				return nil, err
			}
			segs = append(segs, segment{kind: segIndex, idx: idx})
			i = j + 1
		default:
			j := i
			for j < len(path) && path[j] != delim && path[j] != '[' {
				j++
			}
			segs = append(segs, segment{kind: segName, name: []byte(path[i:j])})
			i = j
		}
	}
	return segs, nil
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty index in path", ErrInvalid)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: non-numeric index %q", ErrInvalid, s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// cmp reports whether query is a byte-prefix of key. Query path segments
// match this way rather than by full equality: a compare bounded by the
// query's length lets a caller address a key by an unambiguous leading
// substring. A query longer than the key never matches.
func cmp(key, query []byte) bool {
	if len(query) > len(key) {
		return false
	}
	for i := range query {
		if key[i] != query[i] {
			return false
		}
	}
	return true
}

// walk resolves segs against tokens starting at the subtree rooted at
// tokens[root], stepping through object members and array elements using
// only Children and Sub — no parent pointers or child slices exist to
// walk instead.
func walk(tokens []Token, buf []byte, root int, segs []segment) (int, error) {
	idx := root
	for _, seg := range segs {
		tok := tokens[idx]
		switch seg.kind {
		case segName:
			if tok.Type != TypeObject {
				return 0, fmt.Errorf("%w: %s is not an object", ErrInvalid, tok.Type)
			}
			found := -1
			p := idx + 1
			for c := 0; c < tok.Children; c++ {
				name := tokens[p]
				valueIdx := p + 1 + name.Sub
				if cmp(name.Bytes(buf), seg.name) {
					found = valueIdx
					break
				}
				value := tokens[valueIdx]
				p = valueIdx + 1 + value.Sub
			}
			if found == -1 {
				return 0, fmt.Errorf("%w: key %q", ErrNotFound, seg.name)
			}
			idx = found
		case segIndex:
			if tok.Type != TypeArray {
				return 0, fmt.Errorf("%w: %s is not an array", ErrInvalid, tok.Type)
			}
			if seg.idx < 0 || seg.idx >= tok.Children {
				return 0, fmt.Errorf("%w: index %d out of range (len %d)", ErrNotFound, seg.idx, tok.Children)
			}
			p := idx + 1
			for c := 0; c < seg.idx; c++ {
				elem := tokens[p]
				p += 1 + elem.Sub
			}
			idx = p
		}
	}
	return idx, nil
}

func resolveQueryConfig(opts []QueryOption) queryConfig {
	cfg := queryConfig{delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Query resolves a dotted, bracket-indexed path against a Load'd token
// array and returns the index of the matching token within tokens.
func Query(tokens []Token, buf []byte, path string, opts ...QueryOption) (int, error) {
	if len(tokens) == 0 {
		return 0, ErrInvalid
	}
	cfg := resolveQueryConfig(opts)
	segs, err := parsePath(path, cfg.delim)
	if err != nil {
		return 0, err
	}
	return walk(tokens, buf, 0, segs)
}

// QueryType resolves path and reports the Type of the token it names.
func QueryType(tokens []Token, buf []byte, path string, opts ...QueryOption) (Type, error) {
	idx, err := Query(tokens, buf, path, opts...)
	if err != nil {
		return TypeNone, err
	}
	return tokens[idx].Type, nil
}

// QueryString resolves path and returns the matching token's raw bytes,
// aliasing buf. It fails if the token isn't a String.
func QueryString(tokens []Token, buf []byte, path string, opts ...QueryOption) ([]byte, error) {
	idx, err := Query(tokens, buf, path, opts...)
	if err != nil {
		return nil, err
	}
	tok := tokens[idx]
	if tok.Type != TypeString {
		return nil, fmt.Errorf("%w: %s at %q is not a string", ErrInvalid, tok.Type, path)
	}
	return tok.Bytes(buf), nil
}

// QueryNumber resolves path and converts the matching token to a float64.
// It fails if the token isn't a Number.
func QueryNumber(tokens []Token, buf []byte, path string, opts ...QueryOption) (float64, error) {
	idx, err := Query(tokens, buf, path, opts...)
	if err != nil {
		return 0, err
	}
	tok := tokens[idx]
	if tok.Type != TypeNumber {
		return 0, fmt.Errorf("%w: %s at %q is not a number", ErrInvalid, tok.Type, path)
	}
	v, ok := convertNumber(tok.Bytes(buf))
	if !ok {
		return 0, fmt.Errorf("%w: malformed number at %q", ErrParse, path)
	}
	return v, nil
}

// CopyString copies tok's bytes into dst and returns the number of bytes
// copied, giving a caller an owned copy when Bytes' buf-aliased slice
// can't outlive buf.
func CopyString(dst []byte, tok Token, buf []byte) int {
	return copy(dst, tok.Bytes(buf))
}
