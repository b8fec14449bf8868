package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habits/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// History prints a habit's trailing history as a week-aligned calendar
// ending today. Completed days are bold, skipped days faint.
func (pp *PrettyPrint) History(history []int) {
	pp.HistoryAt(time.Now(), history)
}

// HistoryAt is History with an explicit "today".
func (pp *PrettyPrint) HistoryAt(now time.Time, history []int) {
	if len(history) == 0 {
		pp.none()
		return
	}
	out := pp.out()
	days := timeutil.LastNDays(now, len(history))

	tf := color.New(color.FgWhite, color.Italic)
	header := fmt.Sprintf("Last %d days", len(history))
	mid := (width - len(header)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), header)

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiGreen)

	// Pad out the start of the first week.
	for i := time.Sunday; i < days[0].Weekday(); i++ {
		_, _ = fmt.Fprint(out, "   ")
	}
	for i, d := range days {
		printer := l1
		if history[i] == 1 {
			printer = l2
		}
		_, _ = printer.Fprintf(out, "%2d ", d.Day())
		if d.Weekday() == time.Saturday {
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprintf(out, "\n\n")
}
