package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// scoreTable collects name/score rows; scores are right aligned.
type scoreTable struct {
	header table.Row
	rows   []table.Row
}

func newScoreTable(name, score string) *scoreTable {
	return &scoreTable{header: table.Row{name, score}}
}

func (s *scoreTable) add(name string, score float64, precision int) {
	s.rows = append(s.rows, table.Row{name, strconv.FormatFloat(score, 'f', precision, 64)})
}

// write renders the table to w, with rounded borders on a terminal.
func (s *scoreTable) write(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	style := table.StyleDefault
	if isTerminal(w) {
		style = table.StyleRounded
	}
	tw.SetStyle(style)
	tw.AppendHeader(s.header)
	tw.AppendRows(s.rows)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
