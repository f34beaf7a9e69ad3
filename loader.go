package zjson

// DefaultMaxDepth bounds container nesting depth during Load when no
// WithMaxDepth option is given: Load rejects a document nested deeper
// than the bound. The bound applies to Load's own materializing
// recursion only; the Read that first sizes the document (and Count)
// recurses through every level of nesting without a limit.
const DefaultMaxDepth = 1024

type config struct {
	maxDepth int
}

// Option configures Load.
type Option func(*config)

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// Count reports how many tokens a full Load of buf's single top-level
// value would produce, so a caller can size its Token slice up front
// without loading anything.
func Count(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalid
	}
	tok, err := Begin(buf).Read()
	if err != nil {
		return 0, err
	}
	return 1 + tok.Sub, nil
}

// Load tokenizes buf's single top-level value into tokens in prefix
// (depth-first) order and returns the number of tokens written. It
// fails with ErrOutOfToken if tokens is too small, and with an error
// wrapping ErrParse if buf doesn't match the grammar.
func Load(buf []byte, tokens []Token, opts ...Option) (int, error) {
	if len(buf) == 0 || len(tokens) == 0 {
		return 0, ErrInvalid
	}
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	tok, err := Begin(buf).Read()
	if err != nil {
		return 0, err
	}
	if 1+tok.Sub > len(tokens) {
		return 0, ErrOutOfToken
	}
	tokens[0] = tok

	n, err := loadChildren(buf, tok, tokens[1:], 1, cfg.maxDepth)
	if err != nil {
		return 0, err
	}
	total := 1 + n
	checkInvariants(tokens[:total], buf)
	return total, nil
}

// loadChildren materializes tok's direct children and, recursively,
// their own descendants into dst in prefix order: for every child, its
// own token is emitted immediately before its subtree. This mirrors
// exactly the layout Read already counted into tok.Sub, so no
// additional bookkeeping is needed beyond tracking how many slots of
// dst have been used.
func loadChildren(buf []byte, tok Token, dst []Token, depth, maxDepth int) (int, error) {
	if tok.Type != TypeObject && tok.Type != TypeArray {
		return 0, nil
	}
	if depth > maxDepth {
		return 0, wrapParse(tok.Start, "maximum nesting depth exceeded")
	}

	it := beginRange(buf, tok.Start+1, tok.Start+tok.Len-1)
	written := 0

	emit := func(t Token) (int, error) {
		if written >= len(dst) {
			return 0, ErrOutOfToken
		}
		dst[written] = t
		written++
		n, err := loadChildren(buf, t, dst[written:], depth+1, maxDepth)
		if err != nil {
			return 0, err
		}
		written += n
		return n, nil
	}

	for i := 0; i < tok.Children; i++ {
		if tok.Type == TypeArray {
			value, err := it.Read()
			if err != nil {
				return written, err
			}
			if _, err := emit(value); err != nil {
				return written, err
			}
			continue
		}

		name, value, err := it.Parse()
		if err != nil {
			return written, err
		}
		if _, err := emit(name); err != nil {
			return written, err
		}
		if _, err := emit(value); err != nil {
			return written, err
		}
	}
	return written, nil
}
