package alu

import (
	"math/bits"

	"github.com/riftcore/alucore/internal/ssair"
)

func registerBitScan() {
	register(ssair.OpPopcount, execPopcount)
	register(ssair.OpFindLSB, execFindLSB)
	register(ssair.OpFindMSB, execFindMSB)
	register(ssair.OpFindTrailingZeros, execFindTrailingZeros)
	register(ssair.OpCountLeadingZeroes, execCountLeadingZeroes)
	register(ssair.OpRev, execRev)
}

func execPopcount(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a := readWidth(ctx, op.Args[0], op.Size)
	switch op.Size {
	case ssair.Size1, ssair.Size2, ssair.Size4, ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(bits.OnesCount64(a)))
	default:
		fatalSize(ssair.OpPopcount, op.Size)
	}
}

// execFindLSB returns the bit index of the least-significant set bit, or
// -1 (as size-extended -1) when the operand is zero — FindLSB(0) is
// pinned to this value rather than faulting (§9 Open Questions).
func execFindLSB(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a := readWidth(ctx, op.Args[0], op.Size)
	switch op.Size {
	case ssair.Size1:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, 0xFF)
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros8(uint8(a))))
	case ssair.Size2:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, 0xFFFF)
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros16(uint16(a))))
	case ssair.Size4:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, 0xFFFFFFFF)
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros32(uint32(a))))
	case ssair.Size8:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, ^uint64(0))
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros64(a)))
	default:
		fatalSize(ssair.OpFindLSB, op.Size)
	}
}

func execFindMSB(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a := readWidth(ctx, op.Args[0], op.Size)
	switch op.Size {
	case ssair.Size1:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, 0xFF)
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(7-bits.LeadingZeros8(uint8(a))))
	case ssair.Size2:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, 0xFFFF)
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(15-bits.LeadingZeros16(uint16(a))))
	case ssair.Size4:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, 0xFFFFFFFF)
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(31-bits.LeadingZeros32(uint32(a))))
	case ssair.Size8:
		if a == 0 {
			ctx.Scratch.WriteU64(dst, ^uint64(0))
			return
		}
		ctx.Scratch.WriteU64(dst, uint64(63-bits.LeadingZeros64(a)))
	default:
		fatalSize(ssair.OpFindMSB, op.Size)
	}
}

func execFindTrailingZeros(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a := readWidth(ctx, op.Args[0], op.Size)
	switch op.Size {
	case ssair.Size1:
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros8(uint8(a))))
	case ssair.Size2:
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros16(uint16(a))))
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros32(uint32(a))))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(bits.TrailingZeros64(a)))
	default:
		fatalSize(ssair.OpFindTrailingZeros, op.Size)
	}
}

func execCountLeadingZeroes(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a := readWidth(ctx, op.Args[0], op.Size)
	switch op.Size {
	case ssair.Size1:
		ctx.Scratch.WriteU64(dst, uint64(bits.LeadingZeros8(uint8(a))))
	case ssair.Size2:
		ctx.Scratch.WriteU64(dst, uint64(bits.LeadingZeros16(uint16(a))))
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(bits.LeadingZeros32(uint32(a))))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, uint64(bits.LeadingZeros64(a)))
	default:
		fatalSize(ssair.OpCountLeadingZeroes, op.Size)
	}
}

// execRev reverses bit order at sizes 2, 4, 8 — unlike its siblings above,
// Rev is not defined at Size1 (spec.md §4.B).
func execRev(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a := readWidth(ctx, op.Args[0], op.Size)
	switch op.Size {
	case ssair.Size2:
		ctx.Scratch.WriteU64(dst, uint64(bits.Reverse16(uint16(a))))
	case ssair.Size4:
		ctx.Scratch.WriteU64(dst, uint64(bits.Reverse32(uint32(a))))
	case ssair.Size8:
		ctx.Scratch.WriteU64(dst, bits.Reverse64(a))
	default:
		fatalSize(ssair.OpRev, op.Size)
	}
}
