// This file is part of spc700.
//
// spc700 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// spc700 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with spc700.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/spc700/disassembly"
	"github.com/jetsetilly/spc700/monitor"
	"github.com/jetsetilly/spc700/monitor/easyterm"
	"github.com/jetsetilly/spc700/script"
	"github.com/jetsetilly/spc700/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(output io.Writer) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:     version.ApplicationName,
		Short:   "Cycle accurate SPC700 (SMP) emulator",
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.ambient()
		},
		SilenceUsage: true,
	}
	rootCmd.SetOut(output)
	rootCmd.PersistentFlags().AddFlagSet(opts.flags())

	// run command
	var runCycles int

	runCmd := &cobra.Command{
		Use:   "run program",
		Short: "Run program for a number of cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMachine(opts, args[0])
			if err != nil {
				return err
			}
			excess, err := m.mc.Run(runCycles)
			if err != nil {
				return err
			}
			fmt.Fprintf(output, "%s\n", m.mc)
			fmt.Fprintf(output, "cycles=%d excess=%d halted=%v\n", m.mc.Cycles(), excess, m.mc.Halted())
			return nil
		},
	}
	runCmd.Flags().IntVar(&runCycles, "cycles", 1024000, "number of cycles to run for")

	// trace command
	var traceCycles int

	traceCmd := &cobra.Command{
		Use:   "trace program",
		Short: "Run program printing every instruction as it is executed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMachine(opts, args[0])
			if err != nil {
				return err
			}
			return trace(output, m, traceCycles)
		},
	}
	traceCmd.Flags().IntVar(&traceCycles, "cycles", 1000, "number of cycles to trace")

	// disasm command
	var bytecode bool

	disasmCmd := &cobra.Command{
		Use:   "disasm program",
		Short: "Disassemble program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMachine(opts, args[0])
			if err != nil {
				return err
			}
			dsm, err := disassembly.FromMemory(m.mem, m.from, m.to, m.mc.PC.Address())
			if err != nil {
				return err
			}
			return dsm.Write(output, disassembly.WriteAttr{ByteCode: bytecode, Cycles: true})
		},
	}
	disasmCmd.Flags().BoolVar(&bytecode, "bytecode", true, "include bytecode in disassembly")

	// monitor command
	var keys bool

	monitorCmd := &cobra.Command{
		Use:   "monitor [program]",
		Short: "Interactive monitor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var program string
			if len(args) > 0 {
				program = args[0]
			}
			m, err := newMachine(opts, program)
			if err != nil {
				return err
			}

			mon := monitor.NewMonitor(m.mc, m.mem, output)
			interactive := term.IsTerminal(int(os.Stdin.Fd()))

			if keys {
				if !interactive {
					return fmt.Errorf("monitor: --keys requires a terminal")
				}
				pt, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
				if err != nil {
					return err
				}
				defer pt.CleanUp()
				mon.AttachKeys(pt)
			}

			return mon.Run(os.Stdin, interactive)
		},
	}
	monitorCmd.Flags().BoolVar(&keys, "keys", false, "enable single key stepping with the KEYS command")

	// script command
	scriptCmd := &cobra.Command{
		Use:   "script file.lua [program]",
		Short: "Drive the SMP with a Lua script",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var program string
			if len(args) > 1 {
				program = args[1]
			}
			m, err := newMachine(opts, program)
			if err != nil {
				return err
			}

			scr := script.NewScript(m.mc, m.mem, output)
			defer scr.Close()

			return scr.DoFile(args[0])
		},
	}

	rootCmd.AddCommand(runCmd, traceCmd, disasmCmd, monitorCmd, scriptCmd)

	return rootCmd
}

// trace executes instructions until the number of cycles have elapsed or the
// SMP halts, printing each instruction as it is executed.
func trace(output io.Writer, m *machine, cycles int) error {
	var elapsed int
	for elapsed < cycles && !m.mc.Halted() {
		n, err := m.mc.Step()
		if err != nil {
			return err
		}
		elapsed += n
		fmt.Fprintf(output, "%-32s %s\n", m.mc.LastResult.String(), m.mc)
	}
	return nil
}
