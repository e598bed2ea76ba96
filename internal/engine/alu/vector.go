package alu

import (
	"encoding/binary"

	"github.com/riftcore/alucore/internal/ssair"
)

func registerVector() {
	register(ssair.OpVExtractToGPR, execVExtractToGPR)
}

// execVExtractToGPR pulls lane ElemIndex, SrcElemSize bytes wide, out of
// an 8- or 16-byte vector source (Args[0]) and writes it via GDP: an
// exact-width byte copy, not a zero-extended GD write, so dst only ever
// carries SrcElemSize live bytes.
func execVExtractToGPR(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	vecSize := ctx.Program.OpSize(op.Args[0])

	var lo, hi uint64
	switch vecSize {
	case ssair.Size8:
		lo = ctx.Scratch.ReadU64(op.Args[0])
	case ssair.Size16:
		lo, hi = ctx.Scratch.ReadU128(op.Args[0])
	default:
		fatalSize(op.Opcode, vecSize)
	}

	byteOff := uint(op.ElemIndex) * uint(op.SrcElemSize)
	var lane uint64
	switch op.SrcElemSize {
	case 1:
		lane = uint64(laneByte(lo, hi, byteOff))
	case 2:
		lane = uint64(laneByte(lo, hi, byteOff)) | uint64(laneByte(lo, hi, byteOff+1))<<8
	case 4:
		for i := uint(0); i < 4; i++ {
			lane |= uint64(laneByte(lo, hi, byteOff+i)) << (8 * i)
		}
	case 8:
		for i := uint(0); i < 8; i++ {
			lane |= uint64(laneByte(lo, hi, byteOff+i)) << (8 * i)
		}
	default:
		fatalSize(op.Opcode, ssair.OpSize(op.SrcElemSize))
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], lane)
	ctx.Scratch.WriteBytes(dst, buf[:op.SrcElemSize])
}

func laneByte(lo, hi uint64, byteIdx uint) byte {
	if byteIdx < 8 {
		return byte(lo >> (8 * byteIdx))
	}
	return byte(hi >> (8 * (byteIdx - 8)))
}
