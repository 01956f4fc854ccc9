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
	"os"

	"github.com/jetsetilly/spc700/hardware/memory/aram"
	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/logger"
	"github.com/jetsetilly/spc700/statsview"
	"github.com/spf13/pflag"
)

// options shared by every subcommand that creates a machine.
type options struct {
	origin    uint16
	ipl       bool
	state     string
	echoLog   bool
	statsview bool
}

// flags returns the FlagSet for the options. the FlagSet is added to the
// persistent flags of the root command.
func (opts *options) flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("machine", pflag.ContinueOnError)
	fs.Uint16Var(&opts.origin, "origin", 0x0200, "load address of program. reset vector points here unless --ipl is set")
	fs.BoolVar(&opts.ipl, "ipl", false, "enable IPL ROM and start execution from the IPL reset vector")
	fs.StringVar(&opts.state, "state", "", "restore SMP state from file after reset")
	fs.BoolVar(&opts.echoLog, "echo-log", false, "echo log entries to stderr")
	fs.BoolVar(&opts.statsview, "statsview", false, fmt.Sprintf("run stats server on %s", statsview.DefaultAddress))
	return fs
}

// ambient sets up the logging and statistics options.
func (opts *options) ambient() {
	if opts.echoLog {
		logger.SetEcho(os.Stderr, false)
	}
	if opts.statsview {
		statsview.Launch(os.Stderr, "")
	}
}

// machine is an SMP connected to audio RAM.
type machine struct {
	mem *aram.ARAM
	mc  *smp.SMP

	// extent of the loaded program
	from uint16
	to   uint16
}

// newMachine loads the program file into audio RAM at the origin address and
// resets the SMP. The program is optional if the IPL ROM is enabled or if a
// state file is being restored.
func newMachine(opts options, program string) (*machine, error) {
	m := &machine{
		mem:  aram.NewARAM(opts.ipl),
		from: opts.origin,
		to:   opts.origin,
	}

	if program != "" {
		data, err := os.ReadFile(program)
		if err != nil {
			return nil, fmt.Errorf("program: %w", err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("program: %s is empty", program)
		}
		if len(data) > 0x10000-int(opts.origin) {
			return nil, fmt.Errorf("program: %s is too large to load at %04x", program, opts.origin)
		}
		if !opts.ipl && int(opts.origin)+len(data) > smp.ResetVector {
			return nil, fmt.Errorf("program: %s overlaps the reset vector at %04x", program, smp.ResetVector)
		}
		m.mem.Load(opts.origin, data)
		m.to = opts.origin + uint16(len(data)-1)
		logger.Logf(logger.Allow, "spc700", "loaded %d bytes from %s at %04x", len(data), program, opts.origin)
	}

	// reset vector is in RAM underneath the IPL ROM
	if !opts.ipl {
		m.mem.Load(smp.ResetVector, []uint8{uint8(opts.origin), uint8(opts.origin >> 8)})
	}

	m.mc = smp.NewSMP(m.mem)
	err := m.mc.Reset()
	if err != nil {
		return nil, err
	}

	if opts.state != "" {
		b, err := os.ReadFile(opts.state)
		if err != nil {
			return nil, fmt.Errorf("state: %w", err)
		}
		err = m.mc.Deserialise(b)
		if err != nil {
			return nil, fmt.Errorf("state: %w", err)
		}
		logger.Logf(logger.Allow, "spc700", "restored state from %s", opts.state)
	}

	return m, nil
}
