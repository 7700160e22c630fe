package emulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/mcsim/translate"
)

const (
	REPORT_COLUMNS = 8 // Registers per table row.
)

// Report writes the registers of every core.
func (emu *Emulator) Report(w io.Writer) (err error) {
	for _, core := range emu.Cores {
		_, err = translate.Fprintf(w, "\nCore %d Registers: %v\n", core.Id, core.String())
		if err != nil {
			return
		}
	}

	return
}

// ReportTable writes the halting state and registers of every core as tables.
func (emu *Emulator) ReportTable(w io.Writer) (err error) {
	status := table.NewWriter()
	status.SetStyle(table.StyleLight)
	status.SetTitle(f("Cores"))
	status.AppendHeader(table.Row{f("Core"), f("Halt"), f("Steps"), f("Faults")})
	for _, res := range emu.Results {
		status.AppendRow(table.Row{res.Core, res.String(), res.Steps, res.Faults})
	}

	regs := table.NewWriter()
	regs.SetStyle(table.StyleLight)
	regs.SetTitle(f("Registers"))

	header := table.Row{f("Core"), f("Registers")}
	for n := range REPORT_COLUMNS {
		header = append(header, fmt.Sprintf("+%d", n))
	}
	regs.AppendHeader(header)

	for n, core := range emu.Cores {
		if n > 0 {
			regs.AppendSeparator()
		}
		for base := 0; base < len(core.Register); base += REPORT_COLUMNS {
			limit := min(base+REPORT_COLUMNS, len(core.Register))
			row := table.Row{core.Id, fmt.Sprintf("x%d-x%d", base, limit-1)}
			for _, value := range core.Register[base:limit] {
				row = append(row, value)
			}
			regs.AppendRow(row)
		}
	}

	_, err = fmt.Fprintf(w, "%v\n%v\n", status.Render(), regs.Render())
	return
}

// Listing writes the assembled program as a table.
func (emu *Emulator) Listing(w io.Writer) (err error) {
	prog := emu.Program
	if prog == nil {
		err = ErrProgramMissing
		return
	}

	list := table.NewWriter()
	list.SetStyle(table.StyleLight)
	list.AppendHeader(table.Row{f("PC"), f("Line"), f("Label"), f("Source"), f("Decoded")})

	for n := range prog.Opcodes {
		op := &prog.Opcodes[n]
		decoded := op.Code.String()
		if op.Err != nil {
			decoded = f("fault: %v", op.Err)
		} else if op.Code.Target < 0 {
			decoded = f("%v (label %v missing)", decoded, op.LinkLabel)
		}
		labels := strings.Join(prog.LabelsAt(n), " ")
		list.AppendRow(table.Row{n, op.LineNo, labels, op.String(), decoded})
	}

	_, err = fmt.Fprintln(w, list.Render())
	return
}
