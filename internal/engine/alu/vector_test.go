package alu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riftcore/alucore/internal/ssair"
)

func TestVExtractToGPRByteLane(t *testing.T) {
	scratch, program, ctx := newTestContext()
	scratch.setU128(0, 0x0000000000000000, 0x0000000000000000)
	// lane 9 (byte index 9, within the high 8 bytes) = 0xAB
	lo, hi := uint64(0), uint64(0xAB)<<8
	scratch.setU128(0, lo, hi)
	program.sizes[0] = ssair.Size16
	op := &ssair.Operation{
		Opcode: ssair.OpVExtractToGPR, Size: ssair.Size4, Args: [4]ssair.NodeID{0},
		ElemIndex: 9, SrcElemSize: 1,
	}
	Execute(op, ctx, 1)
	require.EqualValues(t, 0xAB, scratch.ReadU32(1))
}

func TestVExtractToGPRDwordLane(t *testing.T) {
	scratch, program, ctx := newTestContext()
	scratch.setU64(0, 0x00000000DEADBEEF)
	program.sizes[0] = ssair.Size8
	op := &ssair.Operation{
		Opcode: ssair.OpVExtractToGPR, Size: ssair.Size4, Args: [4]ssair.NodeID{0},
		ElemIndex: 0, SrcElemSize: 4,
	}
	Execute(op, ctx, 1)
	require.EqualValues(t, 0xDEADBEEF, scratch.ReadU32(1))
}
