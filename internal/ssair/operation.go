package ssair

// Opcode identifies the operation a node computes. Only the opcodes this
// core dispatches are enumerated here; control flow, memory, general
// vector arithmetic and the rest of the guest ISA's lowering are
// dispatched by the surrounding execution loop and never reach this
// package.
type Opcode uint16

const (
	opInvalid Opcode = iota

	OpTruncElementPair
	OpConstant
	OpEntrypointOffset
	OpInlineConstant
	OpInlineEntrypointOffset
	OpCycleCounter

	OpAdd
	OpSub
	OpNeg
	OpMul
	OpUMul
	OpDiv
	OpUDiv
	OpRem
	OpURem
	OpMulH
	OpUMulH

	OpOr
	OpAnd
	OpAndn
	OpXor
	OpNot

	OpLshl
	OpLshr
	OpAshr
	OpRor

	OpExtr
	OpLDiv
	OpLUDiv
	OpLRem
	OpLURem

	OpBfi
	OpBfe
	OpSbfe

	OpPopcount
	OpFindLSB
	OpFindMSB
	OpFindTrailingZeros
	OpCountLeadingZeroes
	OpRev

	OpSelect
	OpVExtractToGPR

	OpFloatToGPR_ZS
	OpFloatToGPR_S

	OpFCmp

	opcodeCount
)

// OpcodeCount is one past the largest valid Opcode, used to size the
// dispatch table.
const OpcodeCount = int(opcodeCount)

// Operation is the shared IR record this core reads: a fixed header
// (Opcode, Size, ElemSize, Args) common to every operation, followed by
// whichever opcode-specific fields that opcode actually populates. This
// mirrors the source IR's convention of one flat record per operation
// rather than a distinct Go type per opcode — the header is read
// uniformly by the dispatcher, and handlers read only the fields their
// own opcode defined.
type Operation struct {
	Opcode   Opcode
	Size     OpSize
	ElemSize ElemSize
	Args     [4]NodeID

	// Constant, EntrypointOffset.
	ConstLo uint64
	ConstHi uint64 // populated only when Size == Size16
	Offset  int64

	// Extr, Bfi, Bfe, Sbfe.
	Lsb   uint8
	Width uint8

	// Select, FCmp.
	Cond        Condition
	CompareSize OpSize
	FlagsMask   FCmpFlags

	// VExtractToGPR.
	ElemIndex   uint8
	SrcElemSize ElemSize
}

var opcodeNames = [...]string{
	opInvalid:               "Invalid",
	OpTruncElementPair:      "TruncElementPair",
	OpConstant:              "Constant",
	OpEntrypointOffset:      "EntrypointOffset",
	OpInlineConstant:        "InlineConstant",
	OpInlineEntrypointOffset: "InlineEntrypointOffset",
	OpCycleCounter:          "CycleCounter",
	OpAdd:                   "Add",
	OpSub:                   "Sub",
	OpNeg:                   "Neg",
	OpMul:                   "Mul",
	OpUMul:                  "UMul",
	OpDiv:                   "Div",
	OpUDiv:                  "UDiv",
	OpRem:                   "Rem",
	OpURem:                  "URem",
	OpMulH:                  "MulH",
	OpUMulH:                 "UMulH",
	OpOr:                    "Or",
	OpAnd:                   "And",
	OpAndn:                  "Andn",
	OpXor:                   "Xor",
	OpNot:                   "Not",
	OpLshl:                  "Lshl",
	OpLshr:                  "Lshr",
	OpAshr:                  "Ashr",
	OpRor:                   "Ror",
	OpExtr:                  "Extr",
	OpLDiv:                  "LDiv",
	OpLUDiv:                 "LUDiv",
	OpLRem:                  "LRem",
	OpLURem:                 "LURem",
	OpBfi:                   "Bfi",
	OpBfe:                   "Bfe",
	OpSbfe:                  "Sbfe",
	OpPopcount:              "Popcount",
	OpFindLSB:               "FindLSB",
	OpFindMSB:               "FindMSB",
	OpFindTrailingZeros:     "FindTrailingZeros",
	OpCountLeadingZeroes:    "CountLeadingZeroes",
	OpRev:                   "Rev",
	OpSelect:                "Select",
	OpVExtractToGPR:         "VExtractToGPR",
	OpFloatToGPR_ZS:         "Float_ToGPR_ZS",
	OpFloatToGPR_S:          "Float_ToGPR_S",
	OpFCmp:                  "FCmp",
}

// String returns the opcode's canonical name, as used in fatal
// diagnostics.
func (o Opcode) String() string {
	if int(o) < len(opcodeNames) && opcodeNames[o] != "" {
		return opcodeNames[o]
	}
	return "Unknown"
}
