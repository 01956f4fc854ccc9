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
	"fmt"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/spc700/disassembly"
)

// list of commands understood by the monitor.
const (
	cmdStep   = "STEP"
	cmdRun    = "RUN"
	cmdRegs   = "REGS"
	cmdReset  = "RESET"
	cmdSave   = "SAVE"
	cmdLoad   = "LOAD"
	cmdDisasm = "DISASM"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdTrace  = "TRACE"
	cmdGraph  = "GRAPH"
	cmdKeys   = "KEYS"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

var helpText = []struct {
	cmd  string
	help string
}{
	{cmdStep, "[n]            execute one or n instructions"},
	{cmdRun, "cycles          execute instructions until cycles have elapsed"},
	{cmdRegs, "               print registers"},
	{cmdReset, "              reset the SMP"},
	{cmdSave, "file            save SMP state to file"},
	{cmdLoad, "file            restore SMP state from file"},
	{cmdDisasm, "[from [to]]  disassemble memory"},
	{cmdPeek, "addr [to]       print memory"},
	{cmdPoke, "addr value ...  write values to memory"},
	{cmdTrace, "[on|off]       print each instruction as it is executed"},
	{cmdGraph, "file           write graphviz representation of SMP to file"},
	{cmdKeys, "               single key stepping (space=step r=regs q=quit)"},
	{cmdHelp, "               this list"},
	{cmdQuit, "               leave the monitor"},
}

func (mon *Monitor) help() {
	for _, h := range helpText {
		mon.printf("%s %s\n", strings.ToLower(h.cmd), h.help)
	}
}

func (mon *Monitor) cmdStep(tk *tokens) error {
	n, err := tk.number(1, 0xffffffff)
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		err = mon.step()
		if err != nil {
			return err
		}
	}
	if !mon.trace {
		mon.printf("%s\n", mon.mc.LastResult.String())
	}
	return nil
}

func (mon *Monitor) cmdRun(tk *tokens) error {
	if tk.remaining() == 0 {
		return fmt.Errorf("%s requires a cycle count", strings.ToLower(cmdRun))
	}
	budget, err := tk.number(0, 0x7fffffff)
	if err != nil {
		return err
	}

	var excess int

	if mon.trace {
		var elapsed int
		for elapsed < int(budget) {
			err = mon.step()
			elapsed += mon.mc.LastResult.Cycles
			if err != nil {
				return err
			}
		}
		excess = elapsed - int(budget)
	} else {
		excess, err = mon.mc.Run(int(budget))
		if err != nil {
			return err
		}
	}

	mon.printf("excess cycles: %d\n", excess)
	mon.regs()

	return nil
}

func (mon *Monitor) filename(tk *tokens, cmd string) (string, error) {
	fn, ok := tk.get()
	if !ok {
		return "", fmt.Errorf("%s requires a filename", strings.ToLower(cmd))
	}
	return fn, nil
}

func (mon *Monitor) cmdSave(tk *tokens) error {
	fn, err := mon.filename(tk, cmdSave)
	if err != nil {
		return err
	}
	err = os.WriteFile(fn, mon.mc.Serialise(), 0o644)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	mon.printf("state saved to %s\n", fn)
	return nil
}

func (mon *Monitor) cmdLoad(tk *tokens) error {
	fn, err := mon.filename(tk, cmdLoad)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	err = mon.mc.Deserialise(b)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	mon.regs()
	return nil
}

// the number of bytes disassembled or printed if no end address is given.
const defaultRange = 0x1f

func (mon *Monitor) cmdDisasm(tk *tokens) error {
	from, err := tk.address(mon.mc.PC.Address())
	if err != nil {
		return err
	}
	end := uint16(0xffff)
	if from < end-defaultRange {
		end = from + defaultRange
	}
	to, err := tk.address(end)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(mon.mem, from, to, from)
	if err != nil {
		return err
	}

	return dsm.Write(mon.output, disassembly.WriteAttr{ByteCode: true, Cycles: true, Decoded: true})
}

func (mon *Monitor) cmdPeek(tk *tokens) error {
	if tk.remaining() == 0 {
		return fmt.Errorf("%s requires an address", strings.ToLower(cmdPeek))
	}
	from, err := tk.address(0)
	if err != nil {
		return err
	}
	to, err := tk.address(from)
	if err != nil {
		return err
	}
	if to < from {
		return fmt.Errorf("invalid range: %04x to %04x", from, to)
	}
	mon.printf("%s", mon.mem.Dump(from, to))
	return nil
}

func (mon *Monitor) cmdPoke(tk *tokens) error {
	if tk.remaining() < 2 {
		return fmt.Errorf("%s requires an address and at least one value", strings.ToLower(cmdPoke))
	}
	addr, err := tk.address(0)
	if err != nil {
		return err
	}
	for !tk.isEnd() {
		v, err := tk.number(0, 0xff)
		if err != nil {
			return err
		}
		err = mon.mem.Poke(addr, uint8(v))
		if err != nil {
			return err
		}
		addr++
	}
	return nil
}

func (mon *Monitor) cmdTrace(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		mon.trace = !mon.trace
	} else {
		switch strings.ToUpper(arg) {
		case "ON":
			mon.trace = true
		case "OFF":
			mon.trace = false
		default:
			return fmt.Errorf("unrecognised argument for %s: %s", strings.ToLower(cmdTrace), arg)
		}
	}
	if mon.trace {
		mon.printf("trace is on\n")
	} else {
		mon.printf("trace is off\n")
	}
	return nil
}

func (mon *Monitor) cmdGraph(tk *tokens) error {
	fn, err := mon.filename(tk, cmdGraph)
	if err != nil {
		return err
	}
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	defer f.Close()

	// the snapshot is a copy of the SMP registers and latches. the memory
	// pointer in the copy means the graph can be very large so we remove it
	snapshot := mon.mc.Snapshot()
	snapshot.Plumb(nil)
	memviz.Map(f, snapshot)

	mon.printf("graph written to %s\n", fn)
	return nil
}

func (mon *Monitor) cmdKeys() error {
	if mon.keys == nil {
		return fmt.Errorf("%s: not available", strings.ToLower(cmdKeys))
	}

	err := mon.keys.CBreakMode()
	if err != nil {
		return fmt.Errorf("%s: %w", strings.ToLower(cmdKeys), err)
	}
	defer mon.keys.CanonicalMode()

	for {
		k, err := mon.keys.ReadKey()
		if err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(cmdKeys), err)
		}

		switch k {
		case ' ', 's':
			err = mon.step()
			if err != nil {
				return err
			}
			if !mon.trace {
				mon.printf("%s\n", mon.mc.LastResult.String())
			}
		case 'r':
			mon.regs()
		case 'q', 0x1b:
			return nil
		}
	}
}
