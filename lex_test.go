package keycalc

import (
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 1}}, 0},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{"007", []lexToken{{text: "007", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1.1.1", []lexToken{{pos: 1}}, 1},
		{".", []lexToken{{pos: 1}}, 1},
		{"1e1", []lexToken{{pos: 1}}, 1},
		// operators
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1 / 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "/", kind: tokenOp, pos: 3}, {text: "0", kind: tokenNum, pos: 5}}, 0},
		{"+-", []lexToken{{text: "+", kind: tokenOp, pos: 1}, {text: "-", kind: tokenOp, pos: 2}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"^", []lexToken{{pos: 1}}, 1},
		{"(", []lexToken{{pos: 1}}, 1},
		{"1$", []lexToken{{pos: 1}}, 1},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		errs := c.errs
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if errs > 0 {
					errs--
					// The lexer's position after an invalid token is
					// unspecified, so stop here.
					break
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		if errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
			continue
		}
		if c.errs > 0 {
			continue
		}
		got, err := scan.next()
		if err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: want EOF, got %v with error %v", c.src, got, err)
		}
		if _, err := scan.next(); err != io.EOF {
			t.Errorf("scanning %q: want io.EOF after EOF token, got %v", c.src, err)
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	cases := []struct {
		src  string
		kind string
		col  int
	}{
		{"$", "", 1},
		{"12$", "number", 3},
		{"1.2.", "number", 4},
		{".", "number", 1},
		{"1+x", "", 3},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var err error
		for err == nil {
			var tok lexToken
			tok, err = scan.next()
			if tok.kind == tokenEOF {
				break
			}
		}
		le, ok := err.(*LexError)
		if !ok {
			t.Errorf("scanning %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if le.Kind != c.kind {
			t.Errorf("scanning %q: want kind %q, got %q", c.src, c.kind, le.Kind)
		}
		if le.Pos() != c.col {
			t.Errorf("scanning %q: want col %d, got %d", c.src, c.col, le.Pos())
		}
	}
}

func TestPushMust(t *testing.T) {
	scan := lex(strings.NewReader("1"))
	tok, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	scan.push(tok)
	if got := scan.must(); got != tok {
		t.Errorf("must gave %v, pushed %v", got, tok)
	}
	defer func() {
		if recover() == nil {
			t.Error("must without push did not panic")
		}
	}()
	scan.must()
}
