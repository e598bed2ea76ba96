package main

import (
	"encoding/binary"
	"math"

	"github.com/riftcore/alucore/internal/ssair"
)

// dumpScratch is a trivial in-memory ScratchBuffer and Program, standing
// in for the block-local storage and IR metadata a real embedding
// supplies. Every node is assumed size-8 for Program.OpSize, which is
// all the canned scenarios in main.go need.
type dumpScratch struct {
	slots map[ssair.NodeID][16]byte
}

func newDumpScratch() *dumpScratch {
	return &dumpScratch{slots: make(map[ssair.NodeID][16]byte)}
}

func (s *dumpScratch) OpSize(ssair.NodeID) ssair.OpSize { return ssair.Size8 }

func (s *dumpScratch) ReadU8(id ssair.NodeID) uint8   { return s.slots[id][0] }
func (s *dumpScratch) ReadU16(id ssair.NodeID) uint16 { b := s.slots[id]; return binary.LittleEndian.Uint16(b[:2]) }
func (s *dumpScratch) ReadU32(id ssair.NodeID) uint32 { b := s.slots[id]; return binary.LittleEndian.Uint32(b[:4]) }
func (s *dumpScratch) ReadU64(id ssair.NodeID) uint64 { b := s.slots[id]; return binary.LittleEndian.Uint64(b[:8]) }

func (s *dumpScratch) ReadU128(id ssair.NodeID) (lo, hi uint64) {
	b := s.slots[id]
	return binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])
}

func (s *dumpScratch) ReadF32(id ssair.NodeID) float32 { return math.Float32frombits(s.ReadU32(id)) }
func (s *dumpScratch) ReadF64(id ssair.NodeID) float64 { return math.Float64frombits(s.ReadU64(id)) }

func (s *dumpScratch) WriteU64(id ssair.NodeID, v uint64) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], v)
	s.slots[id] = b
}

func (s *dumpScratch) WriteBytes(id ssair.NodeID, b []byte) {
	var slot [16]byte
	copy(slot[:], b)
	s.slots[id] = slot
}
