package alu

import (
	"math"

	"github.com/riftcore/alucore/internal/ssair"
)

func registerFloatConv() {
	register(ssair.OpFloatToGPR_ZS, execFloatToGPRTruncate)
	register(ssair.OpFloatToGPR_S, execFloatToGPRRound)
}

func readSrcFloat(op *ssair.Operation, ctx *ssair.ExecContext) float64 {
	switch op.CompareSize {
	case ssair.Size4:
		return float64(ctx.Scratch.ReadF32(op.Args[0]))
	case ssair.Size8:
		return ctx.Scratch.ReadF64(op.Args[0])
	default:
		fatalSize(op.Opcode, op.CompareSize)
		return 0
	}
}

// execFloatToGPRTruncate converts a float source to a signed integer of
// op.Size by truncating toward zero, adopting the host's float-to-int
// conversion semantics for out-of-range and NaN inputs rather than
// raising a guest-visible trap — this core has no invalid-conversion
// fault of its own (§4.B Non-goals).
func execFloatToGPRTruncate(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	f := math.Trunc(readSrcFloat(op, ctx))
	writeFloatConvResult(op, ctx, dst, f)
}

// execFloatToGPRRound converts a float source to a signed integer of
// op.Size, rounding to nearest with ties to even.
func execFloatToGPRRound(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	f := math.RoundToEven(readSrcFloat(op, ctx))
	writeFloatConvResult(op, ctx, dst, f)
}

func writeFloatConvResult(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID, f float64) {
	switch op.Size {
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(int32(f))))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(int64(f)))
	default:
		fatalSize(op.Opcode, op.Size)
	}
}
