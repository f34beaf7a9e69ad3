package zjson

import "io"

// Iterator reads one Token at a time from a byte buffer without ever
// copying or allocating. Read is the only entry point a caller needs;
// Count and Load (loader.go) are built on top of it.
type Iterator struct {
	buf []byte
	pos int
}

// Begin returns an Iterator positioned at the start of buf.
func Begin(buf []byte) *Iterator {
	return &Iterator{buf: buf}
}

// beginRange returns an Iterator scoped to buf[start:end], used by the
// loader to recurse into a container's interior. Only the end of buf is
// cut off; its start is kept, so Token offsets stay relative to the
// original buffer.
func beginRange(buf []byte, start, end int) *Iterator {
	return &Iterator{buf: buf[:end], pos: start}
}

// Pos reports the iterator's current byte offset into buf.
func (it *Iterator) Pos() int { return it.pos }

func (it *Iterator) skipLoop() {
	for it.pos < len(it.buf) && structTable[it.buf[it.pos]] == actLoop {
		it.pos++
	}
}

// Read consumes and returns the next value in buf: a string, a bare
// literal (number, true, false, or null), or a whole container. For a
// container, Read recurses into its members so Children and Sub are
// fully populated on return — no second pass over the container's bytes
// is needed.
//
// Read returns io.EOF once buf is exhausted, or an error wrapping
// ErrParse if the input doesn't match the grammar tables.go encodes.
func (it *Iterator) Read() (Token, error) {
	it.skipLoop()
	if it.pos >= len(it.buf) {
		return Token{}, io.EOF
	}
	start := it.pos
	switch structTable[it.buf[it.pos]] {
	case actQuoteUp:
		return it.readString()
	case actBareStart:
		return it.readBare()
	case actUp:
		return it.readContainer()
	default:
		return Token{}, wrapParse(start, "unexpected byte")
	}
}

func utf8ExtraBytes(a action) int {
	switch a {
	case actUTF8_2:
		return 1
	case actUTF8_3:
		return 2
	case actUTF8_4:
		return 3
	default:
		return 0
	}
}

func (it *Iterator) readString() (Token, error) {
	start := it.pos
	it.pos++ // opening quote
	contentStart := it.pos
	for it.pos < len(it.buf) {
		c := it.buf[it.pos]
		switch stringTable[c] {
		case actLoop:
			it.pos++
		case actQuoteDown:
			tok := Token{Type: TypeString, Start: contentStart, Len: it.pos - contentStart}
			it.pos++ // closing quote
			return tok, nil
		case actEsc:
			it.pos++
			if it.pos >= len(it.buf) || escTable[it.buf[it.pos]] != actUnesc {
				return Token{}, wrapParse(it.pos, "invalid escape sequence")
			}
			it.pos++
		case actUTF8_2, actUTF8_3, actUTF8_4:
			n := utf8ExtraBytes(stringTable[c])
			it.pos++
			for i := 0; i < n; i++ {
				if it.pos >= len(it.buf) || utf8ContTable[it.buf[it.pos]] != actUTF8Next {
					return Token{}, wrapParse(it.pos, "invalid utf8 continuation byte")
				}
				it.pos++
			}
		default:
			return Token{}, wrapParse(it.pos, "invalid byte in string")
		}
	}
	return Token{}, wrapParse(start, "unterminated string")
}

func bareType(lexeme []byte) Type {
	if len(lexeme) == 0 {
		return TypeNumber
	}
	switch lexeme[0] {
	case 't':
		return TypeTrue
	case 'f':
		return TypeFalse
	case 'n':
		return TypeNull
	default:
		return TypeNumber
	}
}

// readBare consumes a run of printable bytes up to the next structural
// terminator (whitespace, comma, or a closing bracket/brace) or EOF.
// Running off the end of buf terminates the literal rather than
// erroring. That happens for a bare value sitting at the true top level,
// and for the last member of a container interior the loader iterates
// through beginRange (whose buf ends just before the closing bracket or
// brace); both are well-formed. A bare value that's actually inside an unterminated
// container is instead caught by readContainer, which reports ErrParse
// when it runs out of buf looking for a closing bracket or brace.
func (it *Iterator) readBare() (Token, error) {
	start := it.pos
	for it.pos < len(it.buf) {
		switch bareTable[it.buf[it.pos]] {
		case actLoop:
			it.pos++
		case actUnbare:
			lexeme := it.buf[start:it.pos]
			return Token{Type: bareType(lexeme), Start: start, Len: it.pos - start}, nil
		default:
			return Token{}, wrapParse(it.pos, "invalid byte in bare literal")
		}
	}
	lexeme := it.buf[start:it.pos]
	return Token{Type: bareType(lexeme), Start: start, Len: it.pos - start}, nil
}

// readContainer consumes an object or array in full, recursing through
// Read for each member so Children (direct pairs/elements) and Sub
// (total transitive descendants) come out correct without a second
// pass: Sub is simply the sum, over each direct child, of 1 plus that
// child's own Sub.
func (it *Iterator) readContainer() (Token, error) {
	start := it.pos
	isObject := it.buf[it.pos] == '{'
	containerType := TypeArray
	if isObject {
		containerType = TypeObject
	}
	it.pos++

	children, sub := 0, 0
	for {
		it.skipLoop()
		if it.pos >= len(it.buf) {
			return Token{}, wrapParse(start, "unterminated container")
		}
		if structTable[it.buf[it.pos]] == actDown {
			it.pos++
			return Token{Type: containerType, Start: start, Len: it.pos - start, Children: children, Sub: sub}, nil
		}

		if !isObject {
			elem, err := it.Read()
			if err != nil {
				return Token{}, err
			}
			children++
			sub += 1 + elem.Sub
			continue
		}

		name, value, err := it.Parse()
		if err != nil {
			return Token{}, err
		}
		children++
		sub += 2 + name.Sub + value.Sub
	}
}

// Parse reads one "name separator value" triple from inside an object,
// without expecting surrounding braces: a name (typically a String
// token, though any value Read accepts is allowed), the pair separator
// (':' or '='), and the paired value. It's the low-level counterpart to
// Begin/Read for a caller driving the iterator directly over an
// object's members rather than through Load.
func (it *Iterator) Parse() (name, value Token, err error) {
	name, err = it.Read()
	if err != nil {
		return Token{}, Token{}, err
	}
	it.skipLoop()
	if it.pos >= len(it.buf) || structTable[it.buf[it.pos]] != actSeparator {
		return Token{}, Token{}, wrapParse(it.pos, "expected pair separator")
	}
	it.pos++
	it.skipLoop()
	value, err = it.Read()
	if err != nil {
		return Token{}, Token{}, err
	}
	return name, value, nil
}
