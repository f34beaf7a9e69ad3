package zjson

import (
	"errors"
	"testing"
)

func loadHelper(t *testing.T, input string) ([]Token, []byte) {
	t.Helper()
	buf := []byte(input)
	n, err := Count(buf)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	tokens := make([]Token, n)
	if _, err := Load(buf, tokens); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return tokens, buf
}

func TestParsePath(t *testing.T) {
	segs, err := parsePath("a.b[2].c", DefaultDelimiter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments got %d", len(segs))
	}
	if segs[0].kind != segName || string(segs[0].name) != "a" {
		t.Errorf("segment 0: %+v", segs[0])
	}
	if segs[1].kind != segName || string(segs[1].name) != "b" {
		t.Errorf("segment 1: %+v", segs[1])
	}
	if segs[2].kind != segIndex || segs[2].idx != 2 {
		t.Errorf("segment 2: %+v", segs[2])
	}
	if segs[3].kind != segName || string(segs[3].name) != "c" {
		t.Errorf("segment 3: %+v", segs[3])
	}
}

func TestQueryObjectKey(t *testing.T) {
	tokens, buf := loadHelper(t, `{"name":"bob","age":42}`)
	s, err := QueryString(tokens, buf, "name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(s) != "bob" {
		t.Errorf("expected %q got %q", "bob", s)
	}
	n, err := QueryNumber(tokens, buf, "age")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42 got %v", n)
	}
}

func TestQueryArrayIndex(t *testing.T) {
	tokens, buf := loadHelper(t, `[10,20,30]`)
	n, err := QueryNumber(tokens, buf, "[1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 20 {
		t.Errorf("expected 20 got %v", n)
	}
}

func TestQueryNestedPath(t *testing.T) {
	tokens, buf := loadHelper(t, `{"users":[{"name":"a"},{"name":"b"}]}`)
	s, err := QueryString(tokens, buf, "users[1].name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(s) != "b" {
		t.Errorf("expected %q got %q", "b", s)
	}
}

func TestQueryKeyNotFound(t *testing.T) {
	tokens, buf := loadHelper(t, `{"a":1}`)
	if _, err := Query(tokens, buf, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestQueryCustomDelimiter(t *testing.T) {
	tokens, buf := loadHelper(t, `{"users":[{"name":"a"}]}`)
	s, err := QueryString(tokens, buf, "users[0]/name", WithDelimiter('/'))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(s) != "a" {
		t.Errorf("expected %q got %q", "a", s)
	}
}

func TestQueryIndexOutOfRange(t *testing.T) {
	tokens, buf := loadHelper(t, `[1,2]`)
	if _, err := Query(tokens, buf, "[5]"); err == nil {
		t.Errorf("expected error for out-of-range index")
	}
}

func TestQueryWrongType(t *testing.T) {
	tokens, buf := loadHelper(t, `{"a":1}`)
	if _, err := Query(tokens, buf, "[0]"); err == nil {
		t.Errorf("expected error indexing into an object")
	}
	if _, err := QueryString(tokens, buf, "a"); err == nil {
		t.Errorf("expected error reading a number as a string")
	}
}

func TestCmpPrefixMatch(t *testing.T) {
	// A query segment matches as a byte-prefix of the stored key, not
	// only by full equality.
	tokens, buf := loadHelper(t, `{"foobar":1}`)
	if _, err := Query(tokens, buf, "foo"); err != nil {
		t.Errorf("expected prefix match to succeed, got %v", err)
	}
}

func TestQueryTypeHelper(t *testing.T) {
	tokens, buf := loadHelper(t, `{"a":[1,2],"b":"s","c":true,"d":null}`)
	for _, test := range []struct {
		path     string
		expected Type
	}{
		{"a", TypeArray},
		{"b", TypeString},
		{"c", TypeTrue},
		{"d", TypeNull},
	} {
		t.Run(test.path, func(t *testing.T) {
			typ, err := QueryType(tokens, buf, test.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if typ != test.expected {
				t.Errorf("expected %v got %v", test.expected, typ)
			}
		})
	}
}

func TestCopyString(t *testing.T) {
	tokens, buf := loadHelper(t, `{"a":"hello"}`)
	idx, err := Query(tokens, buf, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dst := make([]byte, 5)
	n := CopyString(dst, tokens[idx], buf)
	if string(dst[:n]) != "hello" {
		t.Errorf("expected %q got %q", "hello", dst[:n])
	}
}
