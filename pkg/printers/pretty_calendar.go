package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/alpha/pkg/calendar"
	"tableflip.dev/alpha/pkg/holiday"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the anchor's month as a compact grid. Days with scheduled
// tasks print bold, Sundays and holidays underlined.
func (pp *PrettyPrint) Month(anchor time.Time, reg *holiday.Registry, busy map[int]bool) {
	tf := color.New(color.FgWhite, color.Italic)

	m := anchor.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	plain := color.New(color.Faint, color.FgWhite)
	b := color.New(color.Bold, color.FgHiWhite)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	col := 0
	for _, cell := range calendar.MonthGrid(anchor, reg) {
		if cell.Blank() {
			fmt.Print("   ")
			col++
			continue
		}
		printer := plain
		switch {
		case busy[cell.Day] && (cell.Sunday || cell.Holiday != ""):
			printer = bs
		case busy[cell.Day]:
			printer = b
		case cell.Sunday || cell.Holiday != "":
			printer = s
		}
		_, _ = printer.Printf("%2d ", cell.Day)

		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}
