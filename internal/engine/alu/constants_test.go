package alu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riftcore/alucore/internal/ssair"
)

func TestConstantSize16(t *testing.T) {
	scratch, _, ctx := newTestContext()
	op := &ssair.Operation{Opcode: ssair.OpConstant, Size: ssair.Size16, ConstLo: 1, ConstHi: 2}
	Execute(op, ctx, 0)
	lo, hi := scratch.ReadU128(0)
	require.EqualValues(t, 1, lo)
	require.EqualValues(t, 2, hi)
}

func TestEntrypointOffsetAddsToEntryAddr(t *testing.T) {
	scratch, _, ctx := newTestContext()
	ctx.EntryAddr = 0x1000
	op := &ssair.Operation{Opcode: ssair.OpEntrypointOffset, Offset: 0x10}
	Execute(op, ctx, 0)
	require.EqualValues(t, 0x1010, scratch.ReadU64(0))
}

func TestInlineConstantIsNoop(t *testing.T) {
	_, _, ctx := newTestContext()
	op := &ssair.Operation{Opcode: ssair.OpInlineConstant, ConstLo: 42}
	require.NotPanics(t, func() { Execute(op, ctx, 0) })
}
