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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/spc700/hardware/memory/aram"
	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/logger"
)

// KeyReader is the interface required by the KEYS command. The easyterm
// package's Terminal type satisfies the interface.
type KeyReader interface {
	CBreakMode() error
	CanonicalMode() error
	ReadKey() (byte, error)
}

// Monitor drives an SMP with line commands.
type Monitor struct {
	mc  *smp.SMP
	mem *aram.ARAM

	output io.Writer
	keys   KeyReader

	// print the disassembly of every instruction as it is executed
	trace bool

	// QUIT command has been issued
	quit bool
}

// the prompt is only written when the input is interactive
const prompt = "> "

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *smp.SMP, mem *aram.ARAM, output io.Writer) *Monitor {
	return &Monitor{
		mc:     mc,
		mem:    mem,
		output: output,
	}
}

// AttachKeys enables the KEYS command.
func (mon *Monitor) AttachKeys(keys KeyReader) {
	mon.keys = keys
}

// SetTrace sets whether the disassembly of each instruction is printed as it
// is executed.
func (mon *Monitor) SetTrace(trace bool) {
	mon.trace = trace
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
}

// Run reads and executes commands until the input is exhausted or the QUIT
// command is issued. Errors from individual commands are written to the
// output and do not end the loop. If showPrompt is true a prompt is written
// before each line is read.
func (mon *Monitor) Run(input io.Reader, showPrompt bool) error {
	scanner := bufio.NewScanner(input)

	for !mon.quit {
		if showPrompt {
			mon.printf(prompt)
		}

		if !scanner.Scan() {
			break
		}

		err := mon.Command(scanner.Text())
		if err != nil {
			mon.printf("* %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	return nil
}

// Command executes a single command.
func (mon *Monitor) Command(input string) error {
	tk := tokenise(input)

	cmd, ok := tk.get()
	if !ok {
		return nil
	}

	var err error

	switch strings.ToUpper(cmd) {
	case cmdStep:
		err = mon.cmdStep(tk)
	case cmdRun:
		err = mon.cmdRun(tk)
	case cmdRegs:
		mon.regs()
	case cmdReset:
		err = mon.mc.Reset()
		if err == nil {
			mon.regs()
		}
	case cmdSave:
		err = mon.cmdSave(tk)
	case cmdLoad:
		err = mon.cmdLoad(tk)
	case cmdDisasm:
		err = mon.cmdDisasm(tk)
	case cmdPeek:
		err = mon.cmdPeek(tk)
	case cmdPoke:
		err = mon.cmdPoke(tk)
	case cmdTrace:
		err = mon.cmdTrace(tk)
	case cmdGraph:
		err = mon.cmdGraph(tk)
	case cmdKeys:
		err = mon.cmdKeys()
	case cmdHelp:
		mon.help()
	case cmdQuit:
		mon.quit = true
	default:
		return fmt.Errorf("unrecognised command: %s", cmd)
	}

	if err != nil {
		logger.Log(logger.Allow, "monitor", err)
		return err
	}

	if !tk.isEnd() {
		return fmt.Errorf("too many arguments: %s", tk)
	}

	return nil
}

// step the SMP once, printing the executed instruction if trace is enabled.
func (mon *Monitor) step() error {
	_, err := mon.mc.Step()
	if err != nil {
		return err
	}
	if mon.trace {
		mon.printf("%s\n", mon.mc.LastResult.String())
	}
	return nil
}

func (mon *Monitor) regs() {
	mon.printf("%s\n", mon.mc)
	mon.printf("YA=%04x cycles=%d", mon.mc.YA(), mon.mc.Cycles())
	if mon.mc.Halted() {
		mon.printf(" halted")
	}
	mon.printf("\n")
}
