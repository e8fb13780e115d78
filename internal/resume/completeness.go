package resume

import (
	"fmt"
	"regexp"
	"strings"
)

// minContentLength is the content-level floor on decoded text. This is
// distinct from the decoder-level empty checks, which run on raw bytes.
const minContentLength = 50

// Evidence patterns used to decide whether an empty section result means
// "section truly absent" or "section present but unparsed".
var sectionEvidence = map[string]*regexp.Regexp{
	SectionExperience: regexp.MustCompile(`(?i)experience|work|employment|career`),
	SectionEducation:  regexp.MustCompile(`(?i)education|university|college|degree|academic`),
	SectionSkills:     regexp.MustCompile(`(?i)skills|technologies|competencies|proficien`),
}

// CompletenessReport carries the outcome of the final cross-section pass.
type CompletenessReport struct {
	Errors   []*ParseError
	Warnings []*ParseError
}

// ValidateCompleteness inspects the full raw text together with all
// extracted sections. It runs once, after every section extraction
// finished, and assesses independently of the per-section wrappers: a
// missing section may be reported by both layers.
func ValidateCompleteness(rawText string, experience []Experience, skills []Skill, education []Education, achievements []Achievement) CompletenessReport {
	var report CompletenessReport

	if len(strings.TrimSpace(rawText)) < minContentLength {
		report.Errors = append(report.Errors, NewParseError(ErrorFileEmpty,
			"The document contains almost no readable text", "", nil,
			map[string]any{"text_length": len(strings.TrimSpace(rawText))}))
		return report
	}

	counts := map[string]int{
		SectionExperience: len(experience),
		SectionSkills:     len(skills),
		SectionEducation:  len(education),
	}
	// Achievements are optional and never generate a completeness warning.
	for _, section := range []string{SectionExperience, SectionSkills, SectionEducation} {
		if counts[section] > 0 {
			continue
		}
		if sectionEvidence[section].MatchString(rawText) {
			report.Warnings = append(report.Warnings, NewParseError(ErrorParsingFailed,
				fmt.Sprintf("The document appears to mention %s but no entries could be extracted", section),
				section, nil, nil))
		} else {
			report.Warnings = append(report.Warnings, NewParseError(ErrorSectionMissing,
				fmt.Sprintf("No %s section was found in the document", section),
				section, nil, nil))
		}
	}

	return report
}
