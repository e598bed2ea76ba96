package alu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riftcore/alucore/internal/ssair"
)

func TestLUDivSize4(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU64(0, 0)          // low
	scratch.setU64(1, 1)          // high
	scratch.setU64(2, 0x80000000) // divisor
	op := &ssair.Operation{
		Opcode: ssair.OpLUDiv, Size: ssair.Size4, Args: [4]ssair.NodeID{0, 1, 2},
	}
	Execute(op, ctx, 3)
	// dividend = (1<<32 | 0) = 0x100000000, / 0x80000000 = 2
	require.EqualValues(t, 2, scratch.ReadU32(3))
}

func TestLDivSize2Signed(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU64(0, uint64(uint16(0xFFFF))) // low = -1 as int16 lane contributes
	scratch.setU64(1, uint64(uint16(0xFFFF))) // high
	scratch.setU64(2, uint64(uint16(2)))      // divisor
	op := &ssair.Operation{
		Opcode: ssair.OpLDiv, Size: ssair.Size2, Args: [4]ssair.NodeID{0, 1, 2},
	}
	Execute(op, ctx, 3)
	// dividend = 0xFFFFFFFF as int32 = -1, /2 = 0 (truncated toward zero)
	require.EqualValues(t, 0, int16(scratch.ReadU16(3)))
}

func TestLURemSize8(t *testing.T) {
	scratch, _, ctx := newTestContext()
	scratch.setU64(0, 10) // low
	scratch.setU64(1, 0)  // high
	scratch.setU64(2, 3)  // divisor
	op := &ssair.Operation{
		Opcode: ssair.OpLURem, Size: ssair.Size8, Args: [4]ssair.NodeID{0, 1, 2},
	}
	Execute(op, ctx, 3)
	require.EqualValues(t, 1, scratch.ReadU64(3))
}
