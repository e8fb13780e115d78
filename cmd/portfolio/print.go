package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/daniel/portfolio-site/internal/resume"
)

// printResultJSON dumps the full parse result as indented JSON.
func printResultJSON(out io.Writer, result resume.ParseResult[resume.ParsedResume]) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// printResult renders a human-readable extraction report.
func printResult(out io.Writer, result resume.ParseResult[resume.ParsedResume]) {
	var sections []*resume.SectionParseResult
	if result.Data != nil {
		sections = result.Data.SectionResults
	}
	summary := resume.NewParsingSummary(sections, result.Errors, result.Warnings)

	if result.Data != nil {
		parsed := result.Data
		fmt.Fprintf(out, "Experience entries:  %d\n", len(parsed.Experience))
		fmt.Fprintf(out, "Skills found:        %d\n", len(parsed.Skills))
		fmt.Fprintf(out, "Education entries:   %d\n", len(parsed.Education))
		fmt.Fprintf(out, "Achievements:        %d\n", len(parsed.Achievements))
		fmt.Fprintf(out, "Overall confidence:  %.2f\n", parsed.Confidence)
		fmt.Fprintln(out)

		for _, sr := range parsed.SectionResults {
			fmt.Fprintf(out, "  %-14s confidence %.2f, %d entries\n",
				sr.Section, sr.Confidence, len(sr.Data))
		}
		fmt.Fprintln(out)
	}

	for _, e := range result.Errors {
		fmt.Fprintln(out, resume.FormatErrorMessage(e))
		for _, s := range e.Suggestions {
			fmt.Fprintf(out, "   - %s\n", s)
		}
	}
	for _, warning := range result.Warnings {
		fmt.Fprintln(out, resume.FormatWarningMessage(warning))
	}

	if len(summary.Recommendations) > 0 {
		fmt.Fprintln(out)
		for _, rec := range summary.Recommendations {
			fmt.Fprintf(out, "* %s\n", rec)
		}
	}
}
