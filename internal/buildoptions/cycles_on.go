//go:build alucore_debug_cycles

package buildoptions

// DebugCycles true if the binary was built with the alucore_debug_cycles
// tag, the source's DEBUG_CYCLES switch.
const DebugCycles = true
