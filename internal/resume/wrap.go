package resume

import "fmt"

// runSection executes one raw extractor under a shared state machine:
// panics become a single parsing_failed error terminal for this section
// only; a present-but-unparsed section or a missing section heading becomes
// a warning; entries rejected by the filter are removed with one warning
// each. Success stays true on every non-panic path, including zero-entry
// sections that carry only warnings.
func runSection[T any](
	section string,
	rawText string,
	extract func(string) []T,
	optional bool,
	filter func(T) (keep bool, label string),
) (*SectionParseResult, []T) {
	result := &SectionParseResult{
		Section:  section,
		Data:     []any{},
		Errors:   []*ParseError{},
		Warnings: []*ParseError{},
	}

	entries, panicked := guardedExtract(rawText, extract)
	if panicked != nil {
		result.Success = false
		result.Confidence = 0
		result.Errors = append(result.Errors, NewParseError(ErrorParsingFailed,
			fmt.Sprintf("An unexpected error occurred while parsing the %s section", section),
			section, nil, map[string]any{"cause": fmt.Sprint(panicked)}))
		return result, nil
	}

	// Independent re-check of the heading, not reusing extractor state.
	headingFound := sectionHeadingFound(section, rawText)
	switch {
	case headingFound && len(entries) == 0:
		result.Warnings = append(result.Warnings, NewParseError(ErrorParsingFailed,
			fmt.Sprintf("A %s section was found but no entries could be parsed from it", section),
			section, sectionParseHints(section), nil))
	case !headingFound && !optional:
		result.Warnings = append(result.Warnings, NewParseError(ErrorSectionMissing,
			fmt.Sprintf("No %s section heading was found", section),
			section, nil, nil))
	}

	// Filter out entries that lack a real identifying field.
	kept := entries[:0:0]
	for _, entry := range entries {
		if filter != nil {
			if keep, label := filter(entry); !keep {
				result.Warnings = append(result.Warnings, NewParseError(ErrorParsingFailed,
					fmt.Sprintf("Dropped incomplete %s entry: %s", section, label),
					section, nil, nil))
				continue
			}
		}
		kept = append(kept, entry)
		result.Data = append(result.Data, entry)
	}

	result.Success = true
	result.Confidence = SectionConfidence(headingFound, len(kept))
	return result, kept
}

// guardedExtract runs the extractor and converts a panic into a value.
func guardedExtract[T any](rawText string, extract func(string) []T) (entries []T, panicked any) {
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			panicked = r
		}
	}()
	return extract(rawText), nil
}

// sectionParseHints returns the remediation shown when a section heading
// exists but nothing could be parsed under it.
func sectionParseHints(section string) []string {
	switch section {
	case SectionExperience:
		return []string{"Ensure each job entry includes a company name, position, and dates"}
	case SectionEducation:
		return []string{"Ensure each education entry names the institution and degree"}
	case SectionSkills:
		return []string{"List skills separated by commas or bullet points"}
	case SectionAchievements:
		return []string{"List achievements as bullet points, one per line"}
	}
	return nil
}

// ParseExperienceSection wraps the experience extractor with section-level
// error handling. Entries with the Unknown Company placeholder are removed
// and reported as warnings.
func (v Vocabulary) ParseExperienceSection(rawText string) (*SectionParseResult, []Experience) {
	return runSection(SectionExperience, rawText, v.ExtractExperience, false,
		func(e Experience) (bool, string) {
			if e.Company == UnknownCompany {
				return false, e.Position
			}
			return true, ""
		})
}

// ParseSkillsSection wraps the skills extractor.
func (v Vocabulary) ParseSkillsSection(rawText string) (*SectionParseResult, []Skill) {
	return runSection(SectionSkills, rawText, v.ExtractSkills, false, nil)
}

// ParseEducationSection wraps the education extractor. Entries with the
// Unknown Institution placeholder are removed and reported as warnings.
func (v Vocabulary) ParseEducationSection(rawText string) (*SectionParseResult, []Education) {
	return runSection(SectionEducation, rawText, v.ExtractEducation, false,
		func(e Education) (bool, string) {
			if e.Institution == UnknownInstitution {
				return false, e.Degree
			}
			return true, ""
		})
}

// ParseAchievementsSection wraps the achievements extractor. The section is
// optional, so a missing heading generates no warning.
func (v Vocabulary) ParseAchievementsSection(rawText string) (*SectionParseResult, []Achievement) {
	return runSection(SectionAchievements, rawText, v.ExtractAchievements, true, nil)
}
