// Package printers renders alpha's data as colored terminal output for the
// CLI verbs. The TUI has its own rendering.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/alpha/pkg/child"
	"tableflip.dev/alpha/pkg/dates"
	"tableflip.dev/alpha/pkg/guide"
	"tableflip.dev/alpha/pkg/mission"
	"tableflip.dev/alpha/pkg/notify"
	"tableflip.dev/alpha/pkg/staff"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("1761234567890  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Timeline prints one day's missions in store order.
func (pp *PrettyPrint) Timeline(missions ...mission.Mission) {
	if len(missions) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" no tasks scheduled\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, m := range missions {
		if pp.ShowID {
			_, _ = y.Print(m.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(m.ID)))
		}
		printer := t
		mark := "○"
		if m.Completed() {
			printer = done
			mark = "●"
		}
		_, _ = printer.Printf("%s %s %s  %s\n", mark, m.Time, m.Icon, m.Title)
	}
	_, _ = t.Println("")
}

// Children prints the roster, marking the selected child.
func (pp *PrettyPrint) Children(roster *child.Roster) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold).SprintFunc()
	tbl.AddRow(bold(""), bold("Name"), bold("Born"), bold("Gender"))
	for i, c := range roster.Children() {
		mark := " "
		if i == roster.SelectedIndex() {
			mark = "*"
		}
		tbl.AddRow(mark, c.Name, c.DateOfBirth, string(c.Gender))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Staff prints the household staff directory.
func (pp *PrettyPrint) Staff(members []staff.Member) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold).SprintFunc()
	tbl.AddRow(bold("Name"), bold("Role"), bold("Status"))
	for _, m := range members {
		tbl.AddRow(m.Name, m.Role, m.Status)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Articles prints guide search results or the local library.
func (pp *PrettyPrint) Articles(articles []guide.Article) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	i := color.New(color.Italic)
	for _, a := range articles {
		_, _ = b.Println(a.Title)
		_, _ = f.Printf("  %s · %s\n", a.Category, a.Source)
		_, _ = i.Printf("  %s\n\n", a.Summary)
	}
}

// Nearby prints a grounded activity search result with its map links.
func (pp *PrettyPrint) Nearby(text string, links []string) {
	fmt.Println(text)
	if len(links) > 0 {
		f := color.New(color.Faint, color.Underline)
		fmt.Println("")
		for _, l := range links {
			_, _ = f.Println(l)
		}
	}
}

// Notifications prints the feed grouped by day.
func (pp *PrettyPrint) Notifications(items []notify.Notification) {
	groups := []string{"Today", "Yesterday", "Earlier"}
	h := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)
	for _, g := range groups {
		printed := false
		for _, n := range items {
			if n.Group != g {
				continue
			}
			if !printed {
				_, _ = h.Println(g)
				printed = true
			}
			fmt.Printf("%s %s\n", glyphFor(n.Type), n.Title)
			_, _ = f.Printf("  %s\n", n.Message)
		}
		if printed {
			fmt.Println("")
		}
	}
}

func glyphFor(t notify.Type) string {
	switch t {
	case notify.TypeCompleted:
		return "✓"
	case notify.TypeAlert:
		return "!"
	default:
		return "@"
	}
}

// Day prints a header line for the selected day with any holiday label.
func (pp *PrettyPrint) Day(day dates.DayKey, holiday string) {
	b := color.New(color.Bold)
	_, _ = b.Print(day)
	if holiday != "" {
		i := color.New(color.Italic, color.FgHiRed)
		_, _ = i.Printf("  %s", holiday)
	}
	fmt.Println("")
}
