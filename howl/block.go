package howl

// BlockID identifies a control-flow block for the interpreter's lifetime.
// Zero is reserved for "no block" (the global scope's owner).
type BlockID int

// BlockType classifies a control-flow frame and carries the per-type
// scoping policy.
type BlockType int

const (
	BlockGeneric BlockType = iota
	BlockIf
	BlockLoop
	BlockFunction
)

func (t BlockType) String() string {
	switch t {
	case BlockGeneric:
		return "generic"
	case BlockIf:
		return "if"
	case BlockLoop:
		return "loop"
	case BlockFunction:
		return "function"
	}
	return "unknown"
}

// CreatesScope reports whether opening a block of this type pushes a
// variable frame. This is a per-type policy, not per-instance.
func (t BlockType) CreatesScope() bool {
	switch t {
	case BlockGeneric, BlockIf, BlockFunction:
		return true
	}
	return false
}

// Block records one control-flow frame: where it opened, where it closed,
// and which block encloses it.
type Block struct {
	ID       BlockID
	Type     BlockType
	OpenPos  int
	ClosePos int
	Parent   BlockID
	Pos      Position
	Closed   bool
}

// BlockRegistry is the durable store of every block ever opened. Records
// accumulate for the interpreter's lifetime; closed blocks stay
// addressable by ID.
type BlockRegistry struct {
	blocks []Block
}

func NewBlockRegistry() *BlockRegistry {
	return &BlockRegistry{}
}

// RegisterBlock records a newly opened block and returns its identity.
func (r *BlockRegistry) RegisterBlock(t BlockType, openPos int, parent BlockID, pos Position) BlockID {
	id := BlockID(len(r.blocks) + 1)
	r.blocks = append(r.blocks, Block{
		ID:      id,
		Type:    t,
		OpenPos: openPos,
		Parent:  parent,
		Pos:     pos,
	})
	return id
}

func (r *BlockRegistry) Get(id BlockID) (Block, bool) {
	if id < 1 || int(id) > len(r.blocks) {
		return Block{}, false
	}
	return r.blocks[id-1], true
}

// Close marks the block closed at the given position.
func (r *BlockRegistry) Close(id BlockID, closePos int) {
	if id < 1 || int(id) > len(r.blocks) {
		return
	}
	r.blocks[id-1].ClosePos = closePos
	r.blocks[id-1].Closed = true
}

func (r *BlockRegistry) Len() int {
	return len(r.blocks)
}

// BlockStack tracks the currently open blocks, innermost on top.
type BlockStack struct {
	ids []BlockID
}

func NewBlockStack() *BlockStack {
	return &BlockStack{}
}

func (s *BlockStack) Push(id BlockID) {
	s.ids = append(s.ids, id)
}

// Pop removes and returns the innermost open block; ok is false when no
// block is open.
func (s *BlockStack) Pop() (BlockID, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	id := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]
	return id, true
}

// Current returns the innermost open block, or zero when none is open.
func (s *BlockStack) Current() BlockID {
	if len(s.ids) == 0 {
		return 0
	}
	return s.ids[len(s.ids)-1]
}

func (s *BlockStack) Depth() int {
	return len(s.ids)
}
