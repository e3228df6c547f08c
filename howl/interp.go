package howl

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Interp executes Howl source by tokenizing one line at a time and
// dispatching each token against the stack, the scope stack, and the
// operation registry. There is no AST: conditionals and blocks are
// realized directly on the token stream, with untaken branches skipped by
// a nesting-aware discard mode.
//
// One Interp is single-threaded; all mutation assumes exclusive access for
// the duration of a dispatch call. Handlers themselves are shareable
// across interpreters.
type Interp struct {
	stack    *Stack
	returns  []int
	registry *Registry
	scopes   *ScopeStack
	blocks   *BlockRegistry
	open     *BlockStack
	tokens   tokenQueue
	ip       int
	skipped  int

	// Debug traces the stack and scope depth after each line.
	Debug bool

	out   io.Writer
	trace io.Writer
}

// New returns an interpreter with the core operations installed.
func New() *Interp {
	interp := NewBare()
	RegisterCoreOps(interp)
	return interp
}

// NewBare returns an interpreter with an empty registry.
func NewBare() *Interp {
	return &Interp{
		stack:    NewStack(),
		returns:  make([]int, 0, 16),
		registry: NewRegistry(),
		scopes:   NewScopeStack(),
		blocks:   NewBlockRegistry(),
		open:     NewBlockStack(),
		out:      os.Stdout,
		trace:    os.Stderr,
	}
}

func (i *Interp) Stack() *Stack          { return i.stack }
func (i *Interp) Scopes() *ScopeStack    { return i.scopes }
func (i *Interp) Registry() *Registry    { return i.registry }
func (i *Interp) Blocks() *BlockRegistry { return i.blocks }

// Register installs an operation handler; an existing name is replaced.
func (i *Interp) Register(name string, h Handler) {
	i.registry.Register(name, h)
}

// SetOutput redirects operation output (print, .s). Defaults to stdout.
func (i *Interp) SetOutput(w io.Writer) {
	i.out = w
}

// SetTraceWriter redirects debug traces. Defaults to stderr.
func (i *Interp) SetTraceWriter(w io.Writer) {
	i.trace = w
}

// DefineVar binds a variable in the innermost scope.
func (i *Interp) DefineVar(name string, v Value) {
	i.scopes.Define(name, v)
}

// GetVar reads a visible variable.
func (i *Interp) GetVar(name string) (Value, error) {
	return i.scopes.GetVar(name)
}

// SetVar mutates an existing binding.
func (i *Interp) SetVar(name string, v Value) error {
	return i.scopes.SetVar(name, v)
}

// HasVar reports whether a variable is visible.
func (i *Interp) HasVar(name string) bool {
	return i.scopes.IsDefined(name)
}

// BlockDepth reports how many blocks are currently open.
func (i *Interp) BlockDepth() int {
	return i.open.Depth()
}

// PushReturn records a return position. Reserved for call operations; no
// core operation uses it yet.
func (i *Interp) PushReturn(pos int) {
	i.returns = append(i.returns, pos)
}

// PopReturn pops the most recent return position.
func (i *Interp) PopReturn() (int, bool) {
	if len(i.returns) == 0 {
		return 0, false
	}
	pos := i.returns[len(i.returns)-1]
	i.returns = i.returns[:len(i.returns)-1]
	return pos, true
}

// openBlock registers and enters a block, pushing a scope frame when the
// block type calls for one.
func (i *Interp) openBlock(t BlockType, pos Position) BlockID {
	id := i.blocks.RegisterBlock(t, i.ip, i.open.Current(), pos)
	i.open.Push(id)
	if t.CreatesScope() {
		i.scopes.Push(id)
	}
	return id
}

// closeBlock leaves the innermost block, popping its scope frame if it
// created one. Closing with no open block is a no-op.
func (i *Interp) closeBlock() {
	id, ok := i.open.Pop()
	if !ok {
		return
	}
	if block, ok := i.blocks.Get(id); ok && block.Type.CreatesScope() {
		i.scopes.Pop()
	}
	i.blocks.Close(id, i.ip)
}

// ExecLine tokenizes and executes one line of source. The first error
// aborts the rest of the line; partial stack and scope mutation is kept.
func (i *Interp) ExecLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	// Buffer the whole line up front so two-token forms can look ahead
	// and push back.
	i.tokens.clear()
	for _, tok := range newLexer(trimmed).Tokens() {
		i.tokens.pushBack(tok)
	}

	for {
		tok, ok := i.tokens.popFront()
		if !ok {
			break
		}
		if err := i.dispatchToken(tok); err != nil {
			return err
		}
		i.ip++
	}

	if i.Debug {
		fmt.Fprintf(i.trace, "[debug] %s\n", i.stack)
		fmt.Fprintf(i.trace, "[debug] scope depth: %d\n", i.scopes.Depth())
	}

	return nil
}

// ExecFile executes a script line by line, stopping at the first error.
func (i *Interp) ExecFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	for n, line := range strings.Split(string(content), "\n") {
		if err := i.ExecLine(line); err != nil {
			return fmt.Errorf("line %d: %w", n+1, err)
		}
	}
	return nil
}

func (i *Interp) dispatchToken(tok Token) error {
	// In skip mode only block structure matters.
	if i.skipped > 0 {
		i.handleSkipMode(tok)
		return nil
	}

	switch tok.Type {
	case tokenInt:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return fmt.Errorf("parse integer %q: %w", tok.Literal, err)
		}
		i.stack.Push(NewInt(n))
	case tokenFloat:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return fmt.Errorf("parse float %q: %w", tok.Literal, err)
		}
		i.stack.Push(NewFloat(f))
	case tokenString:
		i.stack.Push(NewString(tok.Literal))
	case tokenSymbol:
		return i.dispatchSymbol(tok)
	case tokenLabel:
		// Reserved jump-target surface; acknowledged, not wired.
		if i.Debug {
			fmt.Fprintf(i.trace, "[debug] label defined: %s\n", tok.Literal)
		}
	case tokenLabelRef:
		i.stack.Push(NewSymbol("@" + tok.Literal))
	case tokenIllegal:
		return fmt.Errorf("parse %d:%d: %s", tok.Pos.Line, tok.Pos.Column, tok.Literal)
	case tokenEOF:
	}
	return nil
}

// handleSkipMode discards one token of an untaken branch, tracking nested
// block structure so an inner end or else never terminates the outer skip.
// Block and scope bookkeeping are untouched except at the block close that
// terminates the skipped region: that close pairs with the block opened
// when the region was entered.
func (i *Interp) handleSkipMode(tok Token) {
	if tok.Type != tokenSymbol {
		return
	}
	switch tok.Literal {
	case "begin", "⺆", "if", "若", "loop", "⟳":
		i.skipped++
	case "end", "⺘":
		if i.skipped == 1 {
			i.skipped = 0
			i.closeBlock()
			return
		}
		i.skipped--
	case "else", "或":
		if i.skipped == 1 {
			i.skipped = 0
		}
	}
}

func (i *Interp) dispatchSymbol(tok Token) error {
	name := tok.Literal

	switch name {
	case "load", "get", "読":
		varName, err := i.takeVarName(name)
		if err != nil {
			return err
		}
		value, err := i.GetVar(varName)
		if err != nil {
			return err
		}
		i.stack.Push(value)
		return nil

	case "define", "let", "字":
		varName, err := i.takeVarName(name)
		if err != nil {
			return err
		}
		value, err := i.stack.Pop()
		if err != nil {
			return err
		}
		i.DefineVar(varName, value)
		return nil

	case "set", "store", "支":
		varName, err := i.takeVarName(name)
		if err != nil {
			return err
		}
		value, err := i.stack.Pop()
		if err != nil {
			return err
		}
		return i.SetVar(varName, value)

	case "if", "若":
		condition, err := i.stack.Pop()
		if err != nil {
			return err
		}
		// The block opens on both branch outcomes so the terminating end
		// always has a block to close.
		i.openBlock(BlockIf, tok.Pos)
		if !condition.IsTruthy() {
			i.skipped = 1
		}
		return nil

	case "else", "或":
		// Reached only after a then-body ran to completion: skip the
		// else-body up to the matching end.
		i.skipped = 1
		return nil

	case "begin", "⺆":
		i.openBlock(BlockGeneric, tok.Pos)
		return nil

	case "end", "⺘":
		i.closeBlock()
		return nil
	}

	// Registered operation. The handler value is held outside the
	// registry lock, so it may itself register operations.
	if handler, ok := i.registry.Lookup(name); ok {
		return handler(i)
	}

	// Auto-load: a visible variable pushes its value without an explicit
	// load keyword.
	if i.HasVar(name) {
		value, err := i.GetVar(name)
		if err != nil {
			return err
		}
		i.stack.Push(value)
		return nil
	}

	// Unknown symbols push themselves, which gives quoting for free.
	i.stack.Push(NewSymbol(name))
	return nil
}

// takeVarName consumes the symbol following a load/define/set keyword. A
// non-symbol lookahead is pushed back unconsumed before the form fails.
func (i *Interp) takeVarName(form string) (string, error) {
	next, ok := i.tokens.popFront()
	if !ok {
		return "", fmt.Errorf("%w: %s requires a variable name", ErrUsage, form)
	}
	if next.Type != tokenSymbol {
		i.tokens.pushFront(next)
		return "", fmt.Errorf("%w: %s requires a variable name", ErrUsage, form)
	}
	return next.Literal, nil
}

// tokenQueue is the line-local lookahead buffer: FIFO for normal
// consumption, with push-back onto the front for two-token forms that turn
// out not to match.
type tokenQueue struct {
	items []Token
}

func (q *tokenQueue) pushBack(tok Token) {
	q.items = append(q.items, tok)
}

func (q *tokenQueue) pushFront(tok Token) {
	q.items = append([]Token{tok}, q.items...)
}

func (q *tokenQueue) popFront() (Token, bool) {
	if len(q.items) == 0 {
		return Token{}, false
	}
	tok := q.items[0]
	q.items = q.items[1:]
	return tok, true
}

func (q *tokenQueue) clear() {
	q.items = q.items[:0]
}
