package alu

import "github.com/riftcore/alucore/internal/ssair"

func registerBitwise() {
	register(ssair.OpOr, execOr)
	register(ssair.OpAnd, execAnd)
	register(ssair.OpAndn, execAndn)
	register(ssair.OpXor, execXor)
	register(ssair.OpNot, execNot)
}

func execOr(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	switch op.Size {
	case ssair.Size1, ssair.Size2, ssair.Size4, ssair.Size8:
		a, b := operands2(ctx, op)
		ctx.Scratch.WriteU64(dst, a|b)
	case ssair.Size16:
		alo, ahi := ctx.Scratch.ReadU128(op.Args[0])
		blo, bhi := ctx.Scratch.ReadU128(op.Args[1])
		ctx.Scratch.WriteBytes(dst, le16(alo|blo, ahi|bhi))
	default:
		fatalSize(ssair.OpOr, op.Size)
	}
}

func execAnd(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	switch op.Size {
	case ssair.Size1, ssair.Size2, ssair.Size4, ssair.Size8:
		a, b := operands2(ctx, op)
		ctx.Scratch.WriteU64(dst, a&b)
	default:
		fatalSize(ssair.OpAnd, op.Size)
	}
}

func execAndn(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	switch op.Size {
	case ssair.Size1, ssair.Size2, ssair.Size4, ssair.Size8:
		a, b := operands2(ctx, op)
		ctx.Scratch.WriteU64(dst, a&^b)
	default:
		fatalSize(ssair.OpAndn, op.Size)
	}
}

func execXor(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	switch op.Size {
	case ssair.Size1, ssair.Size2, ssair.Size4, ssair.Size8:
		a, b := operands2(ctx, op)
		ctx.Scratch.WriteU64(dst, a^b)
	default:
		fatalSize(ssair.OpXor, op.Size)
	}
}

// notMask mirrors the source's per-size mask lookup table for Not,
// including its gap: sizes 3, 5, 6 and 7 never occur in a well-formed
// program (operation sizes are 1, 2, 4, 8 or 16), but the source's table
// has entries for them anyway, all zero, so Not silently produces zero
// at those sizes instead of faulting. Whether they are ever actually hit
// is an open question inherited as-is (§9) — this is not this port's bug
// to fix.
func notMask(size ssair.OpSize) (mask uint64, ok bool) {
	switch size {
	case ssair.Size1:
		return 0xFF, true
	case ssair.Size2:
		return 0xFFFF, true
	case ssair.Size4:
		return 0xFFFFFFFF, true
	case ssair.Size8:
		return ^uint64(0), true
	case 3, 5, 6, 7:
		return 0, true
	default:
		return 0, false
	}
}

func execNot(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	mask, ok := notMask(op.Size)
	if !ok {
		fatalSize(ssair.OpNot, op.Size)
	}
	a := readWidth(ctx, op.Args[0], op.Size)
	ctx.Scratch.WriteU64(dst, ^a&mask)
}
