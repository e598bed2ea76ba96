// Command aludump is a small harness for exercising the ALU dispatch core
// against a handful of canned operations, useful for sanity-checking a
// handler change without wiring up the full guest execution loop.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/riftcore/alucore/internal/engine/alu"
	"github.com/riftcore/alucore/internal/ssair"
)

func main() {
	os.Exit(doMain(os.Stdout, os.Stderr))
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut, stdErr io.Writer) int {
	flag.CommandLine.SetOutput(stdErr)

	var scenario string
	flag.StringVar(&scenario, "scenario", "", "name of the canned scenario to run (list with -list)")
	var list bool
	flag.BoolVar(&list, "list", false, "print the available scenario names")
	flag.Parse()

	if list || scenario == "" {
		printScenarios(stdOut)
		return 0
	}

	run, ok := scenarios[scenario]
	if !ok {
		fmt.Fprintf(stdErr, "aludump: unknown scenario %q\n", scenario)
		printScenarios(stdErr)
		return 1
	}

	alu.RegisterHandlers()
	result, err := run()
	if err != nil {
		fmt.Fprintf(stdErr, "aludump: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdOut, "%s -> %#x\n", scenario, result)
	return 0
}

func printScenarios(w io.Writer) {
	fmt.Fprintln(w, "aludump -scenario <name>")
	fmt.Fprintln(w, "available scenarios:")
	for name := range scenarios {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// scenario runs one hand-built Operation end to end through alu.Run and
// returns the raw bits written to its destination node.
type scenario func() (uint64, error)

var scenarios = map[string]scenario{
	"add-overflow": func() (uint64, error) {
		return runOne(&ssair.Operation{
			Opcode: ssair.OpAdd, Size: ssair.Size4, Args: [4]ssair.NodeID{0, 1},
		}, map[ssair.NodeID]uint64{0: 0xFFFFFFFF, 1: 1})
	},
	"mul-sign-overflow": func() (uint64, error) {
		return runOne(&ssair.Operation{
			Opcode: ssair.OpMul, Size: ssair.Size4, Args: [4]ssair.NodeID{0, 1},
		}, map[ssair.NodeID]uint64{0: 0x10000, 1: 0x8000})
	},
	"popcount": func() (uint64, error) {
		return runOne(&ssair.Operation{
			Opcode: ssair.OpPopcount, Size: ssair.Size4, Args: [4]ssair.NodeID{0},
		}, map[ssair.NodeID]uint64{0: 0xF0F0})
	},
	"findlsb-of-zero": func() (uint64, error) {
		return runOne(&ssair.Operation{
			Opcode: ssair.OpFindLSB, Size: ssair.Size4, Args: [4]ssair.NodeID{0},
		}, map[ssair.NodeID]uint64{0: 0})
	},
}

func runOne(op *ssair.Operation, inputs map[ssair.NodeID]uint64) (uint64, error) {
	scratch := newDumpScratch()
	for id, v := range inputs {
		scratch.WriteU64(id, v)
	}
	const dst ssair.NodeID = 100
	ctx := &ssair.ExecContext{Scratch: scratch, Program: scratch}
	if err := alu.Run(op, ctx, dst); err != nil {
		return 0, err
	}
	return scratch.ReadU64(dst), nil
}
