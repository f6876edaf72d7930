// Package diary locates monthly diary files and keeps their day headings.
package diary

import (
	"fmt"
	"time"
)

// Date is a calendar day in the diary.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// FileName is the monthly file holding this day, e.g. 202403.md.
func (d Date) FileName() string {
	return fmt.Sprintf("%d%02d.md", d.Year, int(d.Month))
}

// Heading is the day's section marker, e.g. "## 2024/3/7".
func (d Date) Heading() string {
	return "## " + d.String()
}

// CommitMessage is used for the automatic git commit.
func (d Date) CommitMessage() string {
	return fmt.Sprintf("auto commit for %s diary", d)
}

// String renders the date unpadded as year/month/day.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Year, int(d.Month), d.Day)
}
