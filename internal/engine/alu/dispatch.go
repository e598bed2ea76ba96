// Package alu is the ALU interpreter dispatch core: given an operation
// header, an execution context, and a destination node id, it computes
// the operation's result into the destination slot, selecting the
// implementation by opcode and operation size. It is grounded on
// tetratelabs/wazero's internal/engine/interpreter — a switch-on-kind
// bytecode interpreter over a flat operation record — generalized here to
// a dense array dispatch table per the spec's "branch-predictable"
// requirement, and narrowed to exactly the opcode set this core owns.
package alu

import (
	"sync"

	"github.com/riftcore/alucore/internal/alufault"
	"github.com/riftcore/alucore/internal/ssair"
)

// handlerFunc computes op's result into ctx's scratch buffer at dst. It
// has no return value: errors are reported by panicking (see
// internal/alufault), exactly as a handler that cannot proceed has no
// useful value to hand back to its caller.
type handlerFunc func(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID)

var (
	table        [ssair.OpcodeCount]handlerFunc
	registerOnce sync.Once
)

// RegisterHandlers populates the dispatch table. Safe to call more than
// once, including concurrently: only the first call has any effect. Once
// it returns, the table is immutable and safe to share read-only across
// threads, matching the source's "populate once at process start" engine
// initialization.
func RegisterHandlers() {
	registerOnce.Do(registerAll)
}

func register(op ssair.Opcode, fn handlerFunc) {
	table[op] = fn
}

func registerAll() {
	registerConstants()
	registerArithmetic()
	registerLongDivide()
	registerBitwise()
	registerShifts()
	registerExtract()
	registerBitScan()
	registerSelect()
	registerVector()
	registerFloatConv()
	registerFCmp()
}

// Execute dispatches op to its registered handler. RegisterHandlers must
// have run first. Dispatch to an opcode with no registered handler is
// malformed IR (§7): this core does not attempt to proceed, it panics
// with *alufault.Error.
func Execute(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
	var fn handlerFunc
	if int(op.Opcode) < len(table) {
		fn = table[op.Opcode]
	}
	if fn == nil {
		panic(alufault.UnhandledOpcode(op.Opcode.String()))
	}
	fn(op, ctx, dst)
}

// Run executes op and converts a fatal dispatch panic into a returned
// error rather than letting it propagate to the caller's goroutine. The
// core's own handlers never recover — only this boundary does, the same
// split the source draws between an ALU op (panics) and the top-level
// call entry point (recovers and reports). Use Execute directly when the
// caller wants the process to abort on malformed IR, as §7 specifies;
// use Run when the caller is, e.g., a test harness or batch driver that
// wants to observe the failure instead.
func Run(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(*alufault.Error); ok {
				err = fe
				return
			}
			panic(r)
		}
	}()
	Execute(op, ctx, dst)
	return nil
}
