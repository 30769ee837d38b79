package cpu

const (
	MEM_SIZE  = 65536  // Memory size in bytes (64 KiB).
	CODE_SIZE = 3      // Encoded instruction size: opcode byte + 16-bit operand.
	MAX_STEPS = 100000 // Default run step budget.
)

// Op is an opcode byte value.
type Op uint8

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LDA     = Op(0x01) // LDA
	OP_LDB     = Op(0x02) // LDB
	OP_LDA_MEM = Op(0x03) // LDA_MEM
	OP_STA     = Op(0x04) // STA
	OP_ADD     = Op(0x05) // ADD
	OP_SUB     = Op(0x06) // SUB
	OP_JMP     = Op(0x07) // JMP
	OP_JZ      = Op(0x08) // JZ
	OP_OUT     = Op(0x09) // OUT
	OP_HLT     = Op(0xFF) // HLT
)

// _op_of is the mnemonic-to-opcode direction of the instruction set table.
// The opcode-to-mnemonic direction is Op.String().
var _op_of = map[string]Op{
	"LDA":     OP_LDA,
	"LDB":     OP_LDB,
	"LDA_MEM": OP_LDA_MEM,
	"STA":     OP_STA,
	"ADD":     OP_ADD,
	"SUB":     OP_SUB,
	"JMP":     OP_JMP,
	"JZ":      OP_JZ,
	"OUT":     OP_OUT,
	"HLT":     OP_HLT,
}

// OpOf returns the opcode for a mnemonic name.
func OpOf(mnemonic string) (op Op, ok bool) {
	op, ok = _op_of[mnemonic]
	return
}

// Valid returns true if the opcode is in the instruction set table.
func (op Op) Valid() bool {
	switch op {
	case OP_LDA, OP_LDB, OP_LDA_MEM, OP_STA, OP_ADD, OP_SUB, OP_JMP, OP_JZ, OP_OUT, OP_HLT:
		return true
	}

	return false
}

// HasOperand returns true if the opcode consumes its 16-bit operand when
// executed. Every instruction reserves the two operand bytes in its
// encoding regardless.
func (op Op) HasOperand() bool {
	switch op {
	case OP_LDA, OP_LDB, OP_LDA_MEM, OP_STA, OP_JMP, OP_JZ:
		return true
	}

	return false
}
