//go:build !alucore_debug_cycles

package buildoptions

// DebugCycles is true only in builds tagged alucore_debug_cycles, in which
// CycleCounter returns 0 instead of a wall-clock reading so that tests
// exercising it are reproducible.
const DebugCycles = false
