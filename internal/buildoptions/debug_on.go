//go:build alucore_debug

package buildoptions

// IsDebugBuild true if the binary was built with the alucore_debug tag.
// Used to insert "debug-time" assertions and slot poisoning as
// `if buildoptions.IsDebugBuild { ... }` blocks.
const IsDebugBuild = true
