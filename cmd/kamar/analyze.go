package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/kamar"
	"github.com/fwojciec/kamar/markdown"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	result, err := deps.Analyzer.Analyze(deps.Ctx, c.Keyword)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kamar.ErrorMessage(err))
		if kamar.ErrorCode(err) == kamar.EUNAVAILABLE {
			fmt.Fprintln(deps.Stderr, "Hint: Check your network connection and search provider credentials")
		}
		return err
	}
	return writeResult(deps.Stdout, c.Format, result)
}

// writeResult renders result in the named format.
func writeResult(w io.Writer, format string, result *kamar.AnalysisResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "markdown":
		return markdown.NewReportWriter(w).Write(result)
	default:
		_, err := fmt.Fprintln(w, kamar.FormatAnalysis(result))
		return err
	}
}
