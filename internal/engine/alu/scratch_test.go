package alu

import (
	"encoding/binary"
	"math"

	"github.com/riftcore/alucore/internal/ssair"
)

// memScratch is a minimal in-memory ScratchBuffer for exercising handlers
// directly, standing in for the block-local storage the owning
// interpreter loop would otherwise provide.
type memScratch struct {
	slots map[ssair.NodeID][16]byte
}

func newMemScratch() *memScratch {
	return &memScratch{slots: make(map[ssair.NodeID][16]byte)}
}

func (m *memScratch) setU64(id ssair.NodeID, v uint64) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], v)
	m.slots[id] = b
}

func (m *memScratch) setU128(id ssair.NodeID, lo, hi uint64) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	m.slots[id] = b
}

func (m *memScratch) setF32(id ssair.NodeID, f float32) {
	m.setU64(id, uint64(math.Float32bits(f)))
}

func (m *memScratch) setF64(id ssair.NodeID, f float64) {
	m.setU64(id, math.Float64bits(f))
}

func (m *memScratch) ReadU8(id ssair.NodeID) uint8   { return m.slots[id][0] }
func (m *memScratch) ReadU16(id ssair.NodeID) uint16 { b := m.slots[id]; return binary.LittleEndian.Uint16(b[:2]) }
func (m *memScratch) ReadU32(id ssair.NodeID) uint32 { b := m.slots[id]; return binary.LittleEndian.Uint32(b[:4]) }
func (m *memScratch) ReadU64(id ssair.NodeID) uint64 { b := m.slots[id]; return binary.LittleEndian.Uint64(b[:8]) }

func (m *memScratch) ReadU128(id ssair.NodeID) (lo, hi uint64) {
	b := m.slots[id]
	return binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])
}

func (m *memScratch) ReadF32(id ssair.NodeID) float32 {
	return math.Float32frombits(m.ReadU32(id))
}

func (m *memScratch) ReadF64(id ssair.NodeID) float64 {
	return math.Float64frombits(m.ReadU64(id))
}

func (m *memScratch) WriteU64(id ssair.NodeID, v uint64) { m.setU64(id, v) }

func (m *memScratch) WriteBytes(id ssair.NodeID, b []byte) {
	var slot [16]byte
	copy(slot[:], b)
	m.slots[id] = slot
}

// memProgram answers OpSize lookups for VExtractToGPR's vector source.
type memProgram struct {
	sizes map[ssair.NodeID]ssair.OpSize
}

func newMemProgram() *memProgram {
	return &memProgram{sizes: make(map[ssair.NodeID]ssair.OpSize)}
}

func (p *memProgram) OpSize(id ssair.NodeID) ssair.OpSize { return p.sizes[id] }

func newTestContext() (*memScratch, *memProgram, *ssair.ExecContext) {
	scratch := newMemScratch()
	program := newMemProgram()
	return scratch, program, &ssair.ExecContext{Scratch: scratch, Program: program}
}
