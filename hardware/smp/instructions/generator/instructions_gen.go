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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/spc700/hardware/smp/instructions"
)

const definitionsCSVFile = "../instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// the instruction table, indexed by opcode. use GetDefinitions() to acquire a\n" +
	"// copy of the table\n" +
	"var definitions = [256]Definition{"

const trailingBoilerPlate = "}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":                      instructions.Implied,
	"ACCUMULATOR":                  instructions.Accumulator,
	"IMMEDIATE":                    instructions.Immediate,
	"DIRECT_PAGE":                  instructions.DirectPage,
	"DIRECT_PAGE_X":                instructions.DirectPageX,
	"DIRECT_PAGE_Y":                instructions.DirectPageY,
	"ABSOLUTE":                     instructions.Absolute,
	"ABSOLUTE_X":                   instructions.AbsoluteX,
	"ABSOLUTE_Y":                   instructions.AbsoluteY,
	"INDIRECT_X":                   instructions.IndirectX,
	"INDIRECT_X_INC":               instructions.IndirectXInc,
	"INDIRECT_X_INDIRECT_Y":        instructions.IndirectXIndirectY,
	"DIRECT_PAGE_INDEXED_INDIRECT": instructions.DirectPageIndexedIndirect,
	"DIRECT_PAGE_INDIRECT_INDEXED": instructions.DirectPageIndirectIndexed,
	"DIRECT_PAGE_DIRECT_PAGE":      instructions.DirectPageDirectPage,
	"DIRECT_PAGE_IMMEDIATE":        instructions.DirectPageImmediate,
	"ABSOLUTE_BIT":                 instructions.AbsoluteBit,
	"DIRECT_PAGE_BIT":              instructions.DirectPageBit,
	"DIRECT_PAGE_BIT_RELATIVE":     instructions.DirectPageBitRelative,
	"RELATIVE":                     instructions.Relative,
	"DIRECT_PAGE_RELATIVE":         instructions.DirectPageRelative,
	"DIRECT_PAGE_X_RELATIVE":       instructions.DirectPageXRelative,
	"ABSOLUTE_INDEXED_INDIRECT":    instructions.AbsoluteIndexedIndirect,
	"UPPER_PAGE":                   instructions.UpperPage,
	"TABLE":                        instructions.Table,
}

var families = map[string]instructions.Family{
	"MOVE": instructions.Move,
	"FLOW": instructions.Flow,
	"READ": instructions.Read,
	"RMW":  instructions.RMW,
	"MISC": instructions.Misc,
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true

	// the conditional field is optional
	csvr.FieldsPerRecord = -1

	var deftable [256]*instructions.Definition

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if !(len(rec) == 6 || len(rec) == 7) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if deftable[newDef.OpCode] != nil {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		// field: operator and operand template
		newDef.Operator = rec[1]
		newDef.Operands = rec[2]

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[3])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		}

		// field: addressing mode, which also decides the number of bytes
		am, ok := addressingModes[strings.ToUpper(rec[4])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		}
		newDef.AddressingMode = am
		newDef.Bytes = am.Bytes()

		// field: family
		f, ok := families[strings.ToUpper(rec[5])]
		if !ok {
			return "", fmt.Errorf("unknown family for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
		}
		newDef.Family = f

		// field: conditional (optional)
		if len(rec) == 7 {
			if strings.ToUpper(rec[6]) != "CONDITIONAL" {
				return "", fmt.Errorf("unknown option for %#02x (%s) [line %d]", newDef.OpCode, rec[6], line)
			}
			newDef.Conditional = true
		}

		deftable[newDef.OpCode] = &newDef
	}

	// every opcode has a definition
	var missing []string
	for i := range deftable {
		if deftable[i] == nil {
			missing = append(missing, fmt.Sprintf("%#02x", i))
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing definitions for opcodes: %s", strings.Join(missing, ", "))
	}

	output := strings.Builder{}
	for _, def := range deftable {
		output.WriteString(fmt.Sprintf("\n{OpCode: 0x%02x, Operator: %q, Operands: %q, Bytes: %d, Cycles: %d, AddressingMode: %s, Family: %s",
			def.OpCode, def.Operator, def.Operands, def.Bytes, def.Cycles, def.AddressingMode, def.Family))
		if def.Conditional {
			output.WriteString(", Conditional: true")
		}
		output.WriteString("},")
	}

	return output.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output = fmt.Sprintf("%s%s\n%s", leadingBoilerPlate, output, trailingBoilerPlate)

	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formattedOutput, 0644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
