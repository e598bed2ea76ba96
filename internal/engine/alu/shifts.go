package alu

import (
	"math/bits"

	"github.com/riftcore/alucore/internal/ssair"
)

func registerShifts() {
	register(ssair.OpLshl, execLshl)
	register(ssair.OpLshr, execLshr)
	register(ssair.OpAshr, execAshr)
	register(ssair.OpRor, execRor)
}

// shiftAmount masks the raw shift-amount operand to size*8-1, the
// hardware barrel shifter's wraparound behavior that every shift/rotate
// kernel below relies on.
func shiftAmount(raw uint64, size ssair.OpSize) uint {
	return uint(raw) & uint(size.Bits()-1)
}

func execLshl(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, rawShift := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, uint64(uint32(a)<<s))
	case ssair.Size8:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, a<<s)
	default:
		fatalSize(ssair.OpLshl, op.Size)
	}
}

func execLshr(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, rawShift := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, uint64(uint32(a)>>s))
	case ssair.Size8:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, a>>s)
	default:
		fatalSize(ssair.OpLshr, op.Size)
	}
}

func execAshr(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, rawShift := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, uint64(uint32(int32(a)>>s)))
	case ssair.Size8:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, uint64(int64(a)>>s))
	default:
		fatalSize(ssair.OpAshr, op.Size)
	}
}

func execRor(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, rawShift := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, uint64(bits.RotateLeft32(uint32(a), -int(s))))
	case ssair.Size8:
		s := shiftAmount(rawShift, op.Size)
		ctx.Scratch.WriteU64(dst, bits.RotateLeft64(a, -int(s)))
	default:
		fatalSize(ssair.OpRor, op.Size)
	}
}
