package alu

import "github.com/riftcore/alucore/internal/ssair"

func registerFCmp() {
	register(ssair.OpFCmp, execFCmp)
}

// execFCmp computes a three-valued float comparison and returns the
// subset of FlagLT / FlagEQ / FlagUnordered that FlagsMask asked for. A
// NaN operand sets FlagUnordered, and also sets FlagLT and FlagEQ if
// requested — a flag is set when its natural predicate holds *or* the
// comparison is unordered, not only when the predicate holds.
func execFCmp(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	a, b := compareFloats(ctx, op)

	var result ssair.FCmpFlags
	switch {
	case a != a || b != b: // NaN
		result = ssair.FlagUnordered | ssair.FlagLT | ssair.FlagEQ
	case a < b:
		result = ssair.FlagLT
	case a == b:
		result = ssair.FlagEQ
	}

	ctx.Scratch.WriteU64(dst, uint64(result&op.FlagsMask))
}
