package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dekarrin/inssort/internal/suite"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	passLabel = color.New(color.FgGreen).Add(color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed).Add(color.Bold).SprintFunc()
	dim       = color.New(color.FgHiBlack).SprintFunc()
)

func printReport(w io.Writer, rep suite.Report) {
	fmt.Fprintf(w, "Run %s (seed %d)\n", rep.RunID, rep.Seed)

	for _, res := range rep.Results {
		label := passLabel("PASS")
		if !res.Ok() {
			label = failLabel("FAIL")
		}

		fmt.Fprintf(w, "  %s  %-20s %10s inputs  %s\n", label, res.Name, humanize.Comma(int64(res.Inputs)), dim(res.Duration.Round(time.Microsecond)))

		if c := res.Complexity; c != nil {
			fmt.Fprintf(w, "        power = %.3f (want %.3f ± %.3f); avg at %s: %s, at %s: %s\n",
				c.Power, c.Expected, c.Epsilon,
				humanize.Comma(int64(c.BaseSize)), c.Avg,
				humanize.Comma(int64(2*c.BaseSize)), c.Avg2,
			)
		}
		if res.Err != nil {
			fmt.Fprintf(w, "        %v\n", res.Err)
		}
	}

	failed := len(rep.Failed())
	if failed > 0 {
		fmt.Fprintf(w, "%s: %d of %d failed\n", failLabel("FAILED"), failed, len(rep.Results))
	} else {
		fmt.Fprintf(w, "%s: all %d passed\n", passLabel("OK"), len(rep.Results))
	}
}
