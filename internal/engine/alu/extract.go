package alu

import "github.com/riftcore/alucore/internal/ssair"

func registerExtract() {
	register(ssair.OpTruncElementPair, execTruncElementPair)
	register(ssair.OpExtr, execExtr)
	register(ssair.OpBfi, execBfi)
	register(ssair.OpBfe, execBfe)
	register(ssair.OpSbfe, execSbfe)
}

// widthMask returns (1<<width)-1, or all-ones when width is 64 (where
// 1<<64 would overflow uint64).
func widthMask(width uint8) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

func execTruncElementPair(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	if op.Size != ssair.Size4 {
		fatalSize(ssair.OpTruncElementPair, op.Size)
	}
	lane0, lane1 := ctx.Scratch.ReadU128(op.Args[0])
	ctx.Scratch.WriteU64(dst, (lane0&0xFFFFFFFF)|(lane1<<32))
}

// execExtr implements the ARM-style EXTR bitfield extract: src1 and src2
// are concatenated into a 2*size*8-bit value with src1 in the high half,
// and the result is that value's lsb-indexed, size*8-bit-wide window.
func execExtr(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	switch op.Size {
	case ssair.Size4:
		src1 := ctx.Scratch.ReadU32(op.Args[0])
		src2 := ctx.Scratch.ReadU32(op.Args[1])
		combined := uint64(src1)<<32 | uint64(src2)
		ctx.Scratch.WriteU64(dst, uint64(uint32(combined>>op.Lsb)))
	case ssair.Size8:
		src1 := ctx.Scratch.ReadU64(op.Args[0])
		src2 := ctx.Scratch.ReadU64(op.Args[1])
		combined := u128{hi: src1, lo: src2}
		ctx.Scratch.WriteU64(dst, combined.shr(uint(op.Lsb)).lo)
	default:
		fatalSize(ssair.OpExtr, op.Size)
	}
}

func execBfi(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	if op.Size > ssair.Size8 {
		fatalSize(ssair.OpBfi, op.Size)
	}
	src1 := readWidth(ctx, op.Args[0], op.Size)
	src2 := readWidth(ctx, op.Args[1], op.Size)
	wm := widthMask(op.Width)
	field := wm << op.Lsb
	result := (src1 &^ field) | ((src2 & wm) << op.Lsb)
	ctx.Scratch.WriteU64(dst, result)
}

func execBfe(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	if op.Size > ssair.Size8 {
		fatalSize(ssair.OpBfe, op.Size)
	}
	src := readWidth(ctx, op.Args[0], op.Size)
	wm := widthMask(op.Width)
	ctx.Scratch.WriteU64(dst, (src>>op.Lsb)&wm)
}

// execSbfe sign-extends the Width-bit field at Lsb by shifting it up to
// occupy the top of a 64-bit word and then arithmetic-shifting it back
// down, the standard two's-complement sign-extension trick.
func execSbfe(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	if op.Size > ssair.Size8 {
		fatalSize(ssair.OpSbfe, op.Size)
	}
	src := readWidth(ctx, op.Args[0], op.Size)
	shiftUp := 64 - uint(op.Width) - uint(op.Lsb)
	shiftDown := 64 - uint(op.Width)
	result := int64(src<<shiftUp) >> shiftDown
	ctx.Scratch.WriteU64(dst, uint64(result))
}
