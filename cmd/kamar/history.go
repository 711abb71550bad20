package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/kamar"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		rec, err := deps.History.FindAnalysisByID(deps.Ctx, c.ID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kamar.ErrorMessage(err))
			return err
		}
		return writeResult(deps.Stdout, c.Format, rec.Result)
	}

	filter := kamar.AnalysisFilter{Limit: c.Limit}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}
	records, err := deps.History.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kamar.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'kamar analyze' to run one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Keyword)
	}
	return nil
}
