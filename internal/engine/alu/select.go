package alu

import "github.com/riftcore/alucore/internal/ssair"

func registerSelect() {
	register(ssair.OpSelect, execSelect)
}

// execSelect is a 5-operand conditional move: Args[0] and Args[1] are
// compared per Cond at CompareSize, and the result is Args[2] (taken) or
// Args[3] (not taken), both read and written at op.Size.
func execSelect(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	taken := evalSelectCond(op, ctx)
	if taken {
		ctx.Scratch.WriteU64(dst, readWidth(ctx, op.Args[2], op.Size))
	} else {
		ctx.Scratch.WriteU64(dst, readWidth(ctx, op.Args[3], op.Size))
	}
}

func evalSelectCond(op *ssair.Operation, ctx *ssair.ExecContext) bool {
	switch op.Cond.Kind() {
	case ssair.CondKindSigned:
		a, b := compareOperands(ctx, op)
		if op.CompareSize == ssair.Size4 {
			return evalSigned(op.Cond, int64(int32(a)), int64(int32(b)))
		}
		return evalSigned(op.Cond, int64(a), int64(b))
	case ssair.CondKindUnsigned:
		a, b := compareOperands(ctx, op)
		return evalUnsigned(op.Cond, a, b)
	default:
		a, b := compareFloats(ctx, op)
		return evalFloat(op.Cond, a, b)
	}
}

func compareOperands(ctx *ssair.ExecContext, op *ssair.Operation) (a, b uint64) {
	switch op.CompareSize {
	case ssair.Size4:
		return uint64(ctx.Scratch.ReadU32(op.Args[0])), uint64(ctx.Scratch.ReadU32(op.Args[1]))
	case ssair.Size8:
		return ctx.Scratch.ReadU64(op.Args[0]), ctx.Scratch.ReadU64(op.Args[1])
	default:
		fatalSize(op.Opcode, op.CompareSize)
		return 0, 0
	}
}

func compareFloats(ctx *ssair.ExecContext, op *ssair.Operation) (a, b float64) {
	switch op.CompareSize {
	case ssair.Size4:
		return float64(ctx.Scratch.ReadF32(op.Args[0])), float64(ctx.Scratch.ReadF32(op.Args[1]))
	case ssair.Size8:
		return ctx.Scratch.ReadF64(op.Args[0]), ctx.Scratch.ReadF64(op.Args[1])
	default:
		fatalSize(op.Opcode, op.CompareSize)
		return 0, 0
	}
}

func evalSigned(cond ssair.Condition, a, b int64) bool {
	switch cond {
	case ssair.CondSLT:
		return a < b
	case ssair.CondSLE:
		return a <= b
	case ssair.CondSGT:
		return a > b
	case ssair.CondSGE:
		return a >= b
	default:
		return false
	}
}

func evalUnsigned(cond ssair.Condition, a, b uint64) bool {
	switch cond {
	case ssair.CondULT:
		return a < b
	case ssair.CondULE:
		return a <= b
	case ssair.CondUGT:
		return a > b
	case ssair.CondUGE:
		return a >= b
	default:
		return false
	}
}

func evalFloat(cond ssair.Condition, a, b float64) bool {
	switch cond {
	case ssair.CondFLT:
		return a < b
	case ssair.CondFLE:
		return a <= b
	case ssair.CondFGT:
		return a > b
	case ssair.CondFGE:
		return a >= b
	default:
		return false
	}
}
