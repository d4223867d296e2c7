package session

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/segments/segments"
)

// Text form of the display report. Every number is rounded to two decimals
// and printed in its shortest form.
func writeReport(w io.Writer, au aurora.Aurora, report segments.Report) {
	for i, stats := range report.Segments {
		fmt.Fprintf(w, "Line Segment %d:\n", i+1)
		fmt.Fprintf(w, "%s\n", stats.Segment)
		fmt.Fprintf(w, "Slope:%s\n", quantity(au, stats.Slope, stats.SlopeErr))
		fmt.Fprintf(w, "Midpoint:%s\n", stats.Midpoint)
		fmt.Fprintf(w, "X Intercept:%s\n", quantity(au, stats.XIntercept.X, stats.XInterceptErr))
		fmt.Fprintf(w, "Y Intercept:%s\n", quantity(au, stats.YIntercept.Y, stats.YInterceptErr))
		fmt.Fprintf(w, "Length:%s\n", segments.FormatNumber(stats.Length))
		fmt.Fprintf(w, "%s\n", stats.Equation)
	}

	for _, pair := range report.Pairs {
		fmt.Fprintf(w, "The line segments compared are segments[%d] and segments[%d]: ", pair.I, pair.J)
		switch pair.Relation {
		case segments.Parallel:
			fmt.Fprintln(w, "Lines are Parallel")
		case segments.NotIntersecting:
			fmt.Fprintln(w, "Not Parallel and not Intersecting")
		case segments.Intersecting:
			fmt.Fprintf(w, "Intersection Point :%s\n", au.Green(pair.Point.String()))
		}
	}
}

func quantity(au aurora.Aurora, value float64, err error) string {
	if err != nil {
		return au.Yellow("undefined").String()
	}
	return segments.FormatNumber(value)
}
