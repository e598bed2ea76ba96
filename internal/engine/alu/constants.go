package alu

import (
	"time"

	"github.com/riftcore/alucore/internal/buildoptions"
	"github.com/riftcore/alucore/internal/ssair"
)

func registerConstants() {
	register(ssair.OpConstant, execConstant)
	register(ssair.OpEntrypointOffset, execEntrypointOffset)
	register(ssair.OpInlineConstant, execNoop)
	register(ssair.OpInlineEntrypointOffset, execNoop)
	register(ssair.OpCycleCounter, execCycleCounter)
}

// execNoop backs InlineConstant and InlineEntrypointOffset: the consuming
// operation fuses the literal directly, so these nodes' slots are never
// read and computing into them would be wasted work.
func execNoop(*ssair.Operation, *ssair.ExecContext, ssair.NodeID) {}

func execConstant(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	if op.Size == ssair.Size16 {
		ctx.Scratch.WriteBytes(dst, le16(op.ConstLo, op.ConstHi))
		return
	}
	ctx.Scratch.WriteU64(dst, op.ConstLo)
}

// execEntrypointOffset materializes a jump target: the host-address
// offset from the guest PC of the current block's entry, used by the
// consuming operation to build an absolute target without re-deriving the
// entry address itself.
func execEntrypointOffset(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	ctx.Scratch.WriteU64(dst, ctx.EntryAddr+uint64(op.Offset))
}

// execCycleCounter reads a monotonic-in-spirit but actually wall-clock
// timestamp — a design hazard the source carries and this core preserves
// rather than silently fixes (§9 Open Questions: a true monotonic clock
// would be more correct for a cycle counter). DebugCycles substitutes a
// fixed 0 so tests executing a CycleCounter node are reproducible.
func execCycleCounter(_ *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	if buildoptions.DebugCycles {
		ctx.Scratch.WriteU64(dst, 0)
		return
	}
	ctx.Scratch.WriteU64(dst, uint64(time.Now().UnixNano()))
}
