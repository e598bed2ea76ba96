package alu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riftcore/alucore/internal/ssair"
)

func TestOrSize16(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU128(0, 0x00000000000000F0, 0x0)
	scratch.setU128(1, 0x000000000000000F, 0x1)
	op := &ssair.Operation{Opcode: ssair.OpOr, Size: ssair.Size16, Args: [4]ssair.NodeID{0, 1}}
	Execute(op, ctx, 2)
	lo, hi := scratch.ReadU128(2)
	require.EqualValues(t, 0xFF, lo)
	require.EqualValues(t, 1, hi)
}

func TestAndn(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU64(0, 0xFF)
	scratch.setU64(1, 0x0F)
	op := &ssair.Operation{Opcode: ssair.OpAndn, Size: ssair.Size4, Args: [4]ssair.NodeID{0, 1}}
	Execute(op, ctx, 2)
	require.EqualValues(t, 0xF0, scratch.ReadU32(2))
}

func TestNotStandardSizes(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU64(0, 0)
	op := &ssair.Operation{Opcode: ssair.OpNot, Size: ssair.Size1, Args: [4]ssair.NodeID{0}}
	Execute(op, ctx, 1)
	require.EqualValues(t, 0xFF, scratch.ReadU8(1))
}

// TestNotGapSizesReturnZero pins the open question: sizes 3, 5, 6 and 7
// never fault, they silently produce zero.
func TestNotGapSizesReturnZero(t *testing.T) {
	for _, size := range []ssair.OpSize{3, 5, 6, 7} {
		scratch, _, ctx := newTestContext()
		scratch.setU64(0, 0xFFFFFFFFFFFFFFFF)
		op := &ssair.Operation{Opcode: ssair.OpNot, Size: size, Args: [4]ssair.NodeID{0}}
		Execute(op, ctx, 1)
		require.EqualValues(t, 0, scratch.ReadU64(1), "size %d", size)
	}
}

func TestXorFaultsAtSize16(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU128(0, 1, 0)
	scratch.setU128(1, 2, 0)
	op := &ssair.Operation{Opcode: ssair.OpXor, Size: ssair.Size16, Args: [4]ssair.NodeID{0, 1}}
	require.Error(t, Run(op, ctx, 2))
}
