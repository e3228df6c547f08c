package howl

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenInt      TokenType = "INT"
	tokenFloat    TokenType = "FLOAT"
	tokenString   TokenType = "STRING"
	tokenSymbol   TokenType = "SYMBOL"
	tokenLabel    TokenType = "LABEL"
	tokenLabelRef TokenType = "LABELREF"
)

// Token captures lexical information for the dispatch engine. Literal is
// always an owned Go string, so buffered tokens outlive the source line.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a line and column in the source line.
type Position struct {
	Line   int
	Column int
}
