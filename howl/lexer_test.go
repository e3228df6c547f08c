package howl

import "testing"

func TestLexSymbolsAndNumbers(t *testing.T) {
	toks := newLexer("5 3.25 + foo -2").Tokens()

	want := []struct {
		typ TokenType
		lit string
	}{
		{tokenInt, "5"},
		{tokenFloat, "3.25"},
		{tokenSymbol, "+"},
		{tokenSymbol, "foo"},
		{tokenInt, "-2"},
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.lit {
			t.Fatalf("token %d: want %s %q, got %s %q", i, w.typ, w.lit, toks[i].Type, toks[i].Literal)
		}
	}
}

func TestLexMinusAloneIsSymbol(t *testing.T) {
	toks := newLexer("5 3 -").Tokens()
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %v", toks)
	}
	if toks[2].Type != tokenSymbol || toks[2].Literal != "-" {
		t.Fatalf("expected symbol -, got %s %q", toks[2].Type, toks[2].Literal)
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks := newLexer(`"line one\nline two\t\"quoted\""`).Tokens()
	if len(toks) != 1 || toks[0].Type != tokenString {
		t.Fatalf("expected one string token, got %v", toks)
	}
	want := "line one\nline two\t\"quoted\""
	if toks[0].Literal != want {
		t.Fatalf("decoded string mismatch: %q", toks[0].Literal)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	toks := newLexer(`"no closing quote`).Tokens()
	if len(toks) != 1 || toks[0].Type != tokenIllegal {
		t.Fatalf("expected illegal token, got %v", toks)
	}
}

func TestLexLabels(t *testing.T) {
	toks := newLexer(":start @start").Tokens()
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %v", toks)
	}
	if toks[0].Type != tokenLabel || toks[0].Literal != "start" {
		t.Fatalf("label: got %s %q", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != tokenLabelRef || toks[1].Literal != "start" {
		t.Fatalf("label ref: got %s %q", toks[1].Type, toks[1].Literal)
	}
}

func TestLexCommentsSkipped(t *testing.T) {
	toks := newLexer("1 2 # the rest is ignored 3 4").Tokens()
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens before comment, got %v", toks)
	}
}

func TestLexUnderscoreSeparators(t *testing.T) {
	toks := newLexer("1_000_000").Tokens()
	if len(toks) != 1 || toks[0].Literal != "1000000" {
		t.Fatalf("expected 1000000, got %v", toks)
	}
}

func TestLexGlyphKeywords(t *testing.T) {
	toks := newLexer("若 或 ⺆ ⺘ 読").Tokens()
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %v", toks)
	}
	for i, tok := range toks {
		if tok.Type != tokenSymbol {
			t.Fatalf("token %d should be a symbol, got %s", i, tok.Type)
		}
	}
}
