package alu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riftcore/alucore/internal/ssair"
)

func TestFCmpLessThan(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setF64(0, 1.0)
	scratch.setF64(1, 2.0)
	op := &ssair.Operation{
		Opcode: ssair.OpFCmp, Args: [4]ssair.NodeID{0, 1},
		CompareSize: ssair.Size8, FlagsMask: ssair.FlagLT | ssair.FlagEQ | ssair.FlagUnordered,
	}
	Execute(op, ctx, 2)
	require.EqualValues(t, ssair.FlagLT, scratch.ReadU64(2))
}

// TestFCmpNaNSetsAllRequestedFlags pins the NaN comparison example
// (spec.md §8 scenario 6): a NaN operand sets FlagUnordered, and also
// FlagLT and FlagEQ if the mask requested them — each requested flag is
// set when its natural predicate holds *or* the comparison is
// unordered.
func TestFCmpNaNSetsAllRequestedFlags(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setF64(0, math.NaN())
	scratch.setF64(1, 2.0)
	op := &ssair.Operation{
		Opcode: ssair.OpFCmp, Args: [4]ssair.NodeID{0, 1},
		CompareSize: ssair.Size8, FlagsMask: ssair.FlagLT | ssair.FlagEQ | ssair.FlagUnordered,
	}
	Execute(op, ctx, 2)
	require.EqualValues(t, ssair.FlagLT|ssair.FlagEQ|ssair.FlagUnordered, scratch.ReadU64(2))
}

// TestFCmpNaNMaskSuppressesUnrequestedFlags confirms only the masked
// subset of LT/EQ/Unordered is returned on a NaN comparison too.
func TestFCmpNaNMaskSuppressesUnrequestedFlags(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setF64(0, math.NaN())
	scratch.setF64(1, 2.0)
	op := &ssair.Operation{
		Opcode: ssair.OpFCmp, Args: [4]ssair.NodeID{0, 1},
		CompareSize: ssair.Size8, FlagsMask: ssair.FlagUnordered,
	}
	Execute(op, ctx, 2)
	require.EqualValues(t, ssair.FlagUnordered, scratch.ReadU64(2))
}

func TestFCmpMaskSuppressesUnrequestedFlags(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setF64(0, 1.0)
	scratch.setF64(1, 1.0)
	op := &ssair.Operation{
		Opcode: ssair.OpFCmp, Args: [4]ssair.NodeID{0, 1},
		CompareSize: ssair.Size8, FlagsMask: ssair.FlagLT, // EQ is true but not requested
	}
	Execute(op, ctx, 2)
	require.EqualValues(t, 0, scratch.ReadU64(2))
}
