//go:build !alucore_debug

package buildoptions

// IsDebugBuild is true only in builds tagged alucore_debug. Invariant
// checks and slot poisoning guarded by this constant are dead code in a
// release build and compiled away entirely.
const IsDebugBuild = false
