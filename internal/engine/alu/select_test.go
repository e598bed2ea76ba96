package alu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riftcore/alucore/internal/ssair"
)

func TestSelectSignedLessThan(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU64(0, uint64(uint32(int32(-1)))) // a
	scratch.setU64(1, 0)                         // b
	scratch.setU64(2, 111)                       // taken
	scratch.setU64(3, 222)                       // not taken
	op := &ssair.Operation{
		Opcode: ssair.OpSelect, Size: ssair.Size4, Args: [4]ssair.NodeID{0, 1, 2, 3},
		Cond: ssair.CondSLT, CompareSize: ssair.Size4,
	}
	Execute(op, ctx, 4)
	require.EqualValues(t, 111, scratch.ReadU32(4))
}

func TestSelectUnsignedGreaterThan(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU64(0, uint64(uint32(int32(-1)))) // a, huge when unsigned
	scratch.setU64(1, 0)                         // b
	scratch.setU64(2, 111)
	scratch.setU64(3, 222)
	op := &ssair.Operation{
		Opcode: ssair.OpSelect, Size: ssair.Size4, Args: [4]ssair.NodeID{0, 1, 2, 3},
		Cond: ssair.CondUGT, CompareSize: ssair.Size4,
	}
	Execute(op, ctx, 4)
	require.EqualValues(t, 111, scratch.ReadU32(4))
}

func TestSelectFloatEqualIsNotLessThan(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setF64(0, 1.0)
	scratch.setF64(1, 1.0)
	scratch.setU64(2, 111)
	scratch.setU64(3, 222)
	op := &ssair.Operation{
		Opcode: ssair.OpSelect, Size: ssair.Size8, Args: [4]ssair.NodeID{0, 1, 2, 3},
		Cond: ssair.CondFLT, CompareSize: ssair.Size8,
	}
	Execute(op, ctx, 4)
	require.EqualValues(t, 222, scratch.ReadU64(4))
}

func TestSelectFloatNaNIsNeverLessThan(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setF64(0, math.NaN())
	scratch.setF64(1, 1.0)
	scratch.setU64(2, 111)
	scratch.setU64(3, 222)
	op := &ssair.Operation{
		Opcode: ssair.OpSelect, Size: ssair.Size8, Args: [4]ssair.NodeID{0, 1, 2, 3},
		Cond: ssair.CondFLT, CompareSize: ssair.Size8,
	}
	Execute(op, ctx, 4)
	require.EqualValues(t, 222, scratch.ReadU64(4))
}
