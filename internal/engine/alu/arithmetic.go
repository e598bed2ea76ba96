package alu

import (
	"github.com/riftcore/alucore/internal/alufault"
	"github.com/riftcore/alucore/internal/ssair"
)

func fatalSize(op ssair.Opcode, size ssair.OpSize) {
	panic(alufault.UnsupportedSize(op.String(), uint8(size)))
}

func registerArithmetic() {
	register(ssair.OpAdd, execAdd)
	register(ssair.OpSub, execSub)
	register(ssair.OpNeg, execNeg)
	register(ssair.OpMul, execMul)
	register(ssair.OpUMul, execUMul)
	register(ssair.OpMulH, execMulH)
	register(ssair.OpUMulH, execUMulH)
	register(ssair.OpDiv, execDiv)
	register(ssair.OpUDiv, execUDiv)
	register(ssair.OpRem, execRem)
	register(ssair.OpURem, execURem)
}

// operands2 reads two same-width operands as u64 regardless of declared
// signedness — the scratch buffer stores raw bit patterns, and every
// kernel below reinterprets those bits as signed/unsigned/wide as its own
// semantics require.
func operands2(ctx *ssair.ExecContext, op *ssair.Operation) (a, b uint64) {
	return readWidth(ctx, op.Args[0], op.Size), readWidth(ctx, op.Args[1], op.Size)
}

func readWidth(ctx *ssair.ExecContext, id ssair.NodeID, size ssair.OpSize) uint64 {
	switch size {
	case ssair.Size1:
		return uint64(ctx.Scratch.ReadU8(id))
	case ssair.Size2:
		return uint64(ctx.Scratch.ReadU16(id))
	case ssair.Size4:
		return uint64(ctx.Scratch.ReadU32(id))
	default:
		return ctx.Scratch.ReadU64(id)
	}
}

func execAdd(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(a)+uint32(b)))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, a+b)
	default:
		fatalSize(ssair.OpAdd, op.Size)
	}
}

func execSub(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(a)-uint32(b)))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, a-b)
	default:
		fatalSize(ssair.OpSub, op.Size)
	}
}

func execNeg(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a := readWidth(ctx, op.Args[0], op.Size)
	switch op.Size {
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(-int32(a))))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(-int64(a)))
	default:
		fatalSize(ssair.OpNeg, op.Size)
	}
}

func execMul(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		v := int64(int32(a)) * int64(int32(b))
		ctx.Scratch.WriteU64(dst, uint64(v))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(int64(a)*int64(b)))
	case ssair.Size16:
		p := smul128(int64(a), int64(b))
		ctx.Scratch.WriteBytes(dst, le16(p.lo, p.hi))
	default:
		fatalSize(ssair.OpMul, op.Size)
	}
}

func execUMul(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(a))*uint64(uint32(b)))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, a*b)
	case ssair.Size16:
		p := mul128(a, b)
		ctx.Scratch.WriteBytes(dst, le16(p.lo, p.hi))
	default:
		fatalSize(ssair.OpUMul, op.Size)
	}
}

func execMulH(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		v := int64(int32(a)) * int64(int32(b))
		ctx.Scratch.WriteU64(dst, uint64(uint32(v>>32)))
	case ssair.Size8:
		p := smul128(int64(a), int64(b))
		ctx.Scratch.WriteU64(dst, p.hi)
	default:
		fatalSize(ssair.OpMulH, op.Size)
	}
}

func execUMulH(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, (uint64(uint32(a))*uint64(uint32(b)))>>32)
	case ssair.Size8, ssair.Size16:
		// At size 16 the source computes the high 64 bits of a *64-bit*
		// product, not the high 128 bits of a genuine 128-bit product —
		// a labeled-incorrect behavior this core preserves rather than
		// silently fixes (§9 Open Questions). Reusing the size-8 path
		// here is exactly that: it is not a bug in this port, it is the
		// bug, pinned.
		p := mul128(a, b)
		ctx.Scratch.WriteU64(dst, p.hi)
	default:
		fatalSize(ssair.OpUMulH, op.Size)
	}
}

func execDiv(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size1:
		ctx.Scratch.WriteU64(dst, uint64(uint8(int8(a)/int8(b))))
	case ssair.Size2:
		ctx.Scratch.WriteU64(dst, uint64(uint16(int16(a)/int16(b))))
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(int32(a)/int32(b))))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(int64(a)/int64(b)))
	case ssair.Size16:
		lo, hi := ctx.Scratch.ReadU128(op.Args[0])
		dlo, dhi := ctx.Scratch.ReadU128(op.Args[1])
		q, _ := u128{hi, lo}.signedDivmod(u128{dhi, dlo})
		ctx.Scratch.WriteBytes(dst, le16(q.lo, q.hi))
	default:
		fatalSize(ssair.OpDiv, op.Size)
	}
}

func execRem(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size1:
		ctx.Scratch.WriteU64(dst, uint64(uint8(int8(a)%int8(b))))
	case ssair.Size2:
		ctx.Scratch.WriteU64(dst, uint64(uint16(int16(a)%int16(b))))
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(int32(a)%int32(b))))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(int64(a)%int64(b)))
	case ssair.Size16:
		lo, hi := ctx.Scratch.ReadU128(op.Args[0])
		dlo, dhi := ctx.Scratch.ReadU128(op.Args[1])
		_, r := u128{hi, lo}.signedDivmod(u128{dhi, dlo})
		ctx.Scratch.WriteBytes(dst, le16(r.lo, r.hi))
	default:
		fatalSize(ssair.OpRem, op.Size)
	}
}

func execUDiv(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size1:
		ctx.Scratch.WriteU64(dst, uint64(uint8(a)/uint8(b)))
	case ssair.Size2:
		ctx.Scratch.WriteU64(dst, uint64(uint16(a)/uint16(b)))
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(a)/uint32(b)))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, a/b)
	case ssair.Size16:
		lo, hi := ctx.Scratch.ReadU128(op.Args[0])
		dlo, dhi := ctx.Scratch.ReadU128(op.Args[1])
		q, _ := u128{hi, lo}.divmod(u128{dhi, dlo})
		ctx.Scratch.WriteBytes(dst, le16(q.lo, q.hi))
	default:
		fatalSize(ssair.OpUDiv, op.Size)
	}
}

func execURem(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := operands2(ctx, op)
	switch op.Size {
	case ssair.Size1:
		ctx.Scratch.WriteU64(dst, uint64(uint8(a)%uint8(b)))
	case ssair.Size2:
		ctx.Scratch.WriteU64(dst, uint64(uint16(a)%uint16(b)))
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(uint32(a)%uint32(b)))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, a%b)
	case ssair.Size16:
		lo, hi := ctx.Scratch.ReadU128(op.Args[0])
		dlo, dhi := ctx.Scratch.ReadU128(op.Args[1])
		_, r := u128{hi, lo}.divmod(u128{dhi, dlo})
		ctx.Scratch.WriteBytes(dst, le16(r.lo, r.hi))
	default:
		fatalSize(ssair.OpURem, op.Size)
	}
}
