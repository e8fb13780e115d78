package resume

import "fmt"

// errorPrefixes maps each error type to the fixed label prepended to its
// message. The prefixes are purely presentational; other layers rely on
// them only for consistent scannability.
var errorPrefixes = map[ErrorType]string{
	ErrorFileFormat:        "📄 File Format",
	ErrorFileCorrupted:     "💥 Corrupted File",
	ErrorFileEmpty:         "📭 Empty File",
	ErrorFileTooLarge:      "📦 File Too Large",
	ErrorUnsupportedFormat: "🚫 Unsupported Format",
	ErrorSectionMissing:    "🔍 Missing Section",
	ErrorParsingFailed:     "⚠️ Parsing Problem",
}

// FormatErrorMessage renders a ParseError as a human-readable line with
// its type-specific prefix.
func FormatErrorMessage(err *ParseError) string {
	prefix, ok := errorPrefixes[err.Type]
	if !ok {
		prefix = "⚠️ Error"
	}
	return fmt.Sprintf("%s: %s", prefix, err.Message)
}

// FormatWarningMessage renders a warning the same way as an error; the
// severity distinction is carried by which list it came from.
func FormatWarningMessage(warning *ParseError) string {
	return FormatErrorMessage(warning)
}

// ParsingSummary aggregates the outcome of a parse for presentation:
// which sections worked, total diagnostic counts, and ordered
// recommendations driving the retry-vs-manual-entry decision downstream.
type ParsingSummary struct {
	SuccessfulSections []string `json:"successful_sections"`
	FailedSections     []string `json:"failed_sections"`
	TotalErrors        int      `json:"total_errors"`
	TotalWarnings      int      `json:"total_warnings"`
	Success            bool     `json:"success"`
	Recommendations    []string `json:"recommendations"`
}

// NewParsingSummary partitions section results into successful (success
// flag set and non-empty data) versus failed, sums diagnostics across all
// layers, and generates the recommendation list. Overall success requires
// zero total errors and at least one successful section.
func NewParsingSummary(sections []*SectionParseResult, errors, warnings []*ParseError) ParsingSummary {
	summary := ParsingSummary{
		SuccessfulSections: []string{},
		FailedSections:     []string{},
		TotalErrors:        len(errors),
		TotalWarnings:      len(warnings),
		Recommendations:    []string{},
	}

	for _, s := range sections {
		summary.TotalErrors += len(s.Errors)
		summary.TotalWarnings += len(s.Warnings)
		if s.Success && len(s.Data) > 0 {
			summary.SuccessfulSections = append(summary.SuccessfulSections, s.Section)
		} else {
			summary.FailedSections = append(summary.FailedSections, s.Section)
		}
	}

	summary.Success = summary.TotalErrors == 0 && len(summary.SuccessfulSections) > 0

	for _, section := range summary.FailedSections {
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Consider entering your %s manually", section))
	}
	if summary.TotalWarnings > 0 {
		summary.Recommendations = append(summary.Recommendations,
			"Review the warnings below and verify the extracted content")
	}
	if summary.Success {
		summary.Recommendations = append(summary.Recommendations,
			"Your resume was parsed successfully")
	}
	if summary.TotalErrors > 0 {
		summary.Recommendations = append(summary.Recommendations,
			"Fix the errors above before the resume can be used")
	}

	return summary
}
