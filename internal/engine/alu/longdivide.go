package alu

import "github.com/riftcore/alucore/internal/ssair"

func registerLongDivide() {
	register(ssair.OpLDiv, longDivideHandler(true, false))
	register(ssair.OpLUDiv, longDivideHandler(false, false))
	register(ssair.OpLRem, longDivideHandler(true, true))
	register(ssair.OpLURem, longDivideHandler(false, true))
}

// longDivideHandler builds the handler for LDiv/LUDiv/LRem/LURem: a
// three-operand (low, high, divisor) double-width divide where only the
// low `size` bits of the quotient or remainder are stored. No
// divide-by-zero trap is raised here (§4.B) — the enclosing execution
// loop is expected to have guarded it via an explicit IR op upstream.
func longDivideHandler(signed, wantRem bool) handlerFunc {
	return func(op *ssair.Operation, ctx *ssair.ExecContext, dst ssair.NodeID) {
		low := readWidth(ctx, op.Args[0], op.Size)
		high := readWidth(ctx, op.Args[1], op.Size)
		divisor := readWidth(ctx, op.Args[2], op.Size)

		switch op.Size {
		case ssair.Size2:
			dividend := uint32(high)<<16 | uint32(low)
			var result uint32
			if signed {
				sd := int32(dividend)
				sv := int32(int16(uint16(divisor)))
				if wantRem {
					result = uint32(sd % sv)
				} else {
					result = uint32(sd / sv)
				}
			} else {
				sv := uint32(uint16(divisor))
				if wantRem {
					result = dividend % sv
				} else {
					result = dividend / sv
				}
			}
			ctx.Scratch.WriteU64(dst, uint64(result))
		case ssair.Size4:
			dividend := uint64(high)<<32 | uint64(low)
			var result uint64
			if signed {
				sd := int64(dividend)
				sv := int64(int32(uint32(divisor)))
				if wantRem {
					result = uint64(sd % sv)
				} else {
					result = uint64(sd / sv)
				}
			} else {
				sv := uint64(uint32(divisor))
				if wantRem {
					result = dividend % sv
				} else {
					result = dividend / sv
				}
			}
			ctx.Scratch.WriteU64(dst, result)
		case ssair.Size8:
			dividend := u128{hi: high, lo: low}
			var q, r u128
			if signed {
				q, r = dividend.signedDivmod(u128FromI64(int64(divisor)))
			} else {
				q, r = dividend.divmod(u128FromU64(divisor))
			}
			if wantRem {
				ctx.Scratch.WriteU64(dst, r.lo)
			} else {
				ctx.Scratch.WriteU64(dst, q.lo)
			}
		default:
			fatalSize(op.Opcode, op.Size)
		}
	}
}
