package resume

import (
	"regexp"
	"strconv"
	"strings"
)

const minEducationEntryLength = 10

// UnknownInstitution is the placeholder used when an entry has degree
// information but no recognizable institution. The section wrapper filters
// these out and reports each one as a warning.
const UnknownInstitution = "Unknown Institution"

// institutionRe matches lines naming a school-type organization.
var institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)

// degreeRe matches common degree names and abbreviations.
var degreeRe = regexp.MustCompile(`(?i)\b(bachelor(?:'s)?|master(?:'s)?|ph\.?d\.?|doctorate|associate(?:'s)?|b\.?sc?\.?|b\.?a\.?|m\.?sc?\.?|m\.?a\.?|mba)\b`)

// fieldInRe and fieldOfRe capture the field of study after a degree phrase
// ("Bachelor of Science in Computer Science"). "in" is preferred so that
// "of Science in X" resolves to X rather than the degree's own noun.
var (
	fieldInRe = regexp.MustCompile(`(?im)\bin\s+([A-Z][A-Za-z &]+?)\s*(?:[,(]|$)`)
	fieldOfRe = regexp.MustCompile(`(?im)\bof\s+([A-Z][A-Za-z &]+?)\s*(?:[,(]|$)`)
)

// gpaRe captures a GPA value. The range is deliberately unchecked here;
// plausibility (0-4) is enforced by the schema layer.
var gpaRe = regexp.MustCompile(`(?i)\bgpa[:\s]*([0-9]+(?:\.[0-9]+)?)`)

// ExtractEducation parses the education section of the raw resume text.
func (v Vocabulary) ExtractEducation(rawText string) []Education {
	body, ok := locateSection(rawText, educationHeadings)
	if !ok {
		return nil
	}

	blocks := splitBlocks(body, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isPureDateLine(trimmed) {
			return false
		}
		return institutionRe.MatchString(line) || yearLineRe.MatchString(line)
	})

	var entries []Education
	for _, block := range blocks {
		if len(block) < minEducationEntryLength {
			continue
		}
		if entry, ok := v.parseEducationBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseEducationBlock parses one education entry. Blocks with neither an
// institution nor degree information are dropped silently.
func (v Vocabulary) parseEducationBlock(block string) (Education, bool) {
	entry := Education{Achievements: []string{}}

	lines := strings.Split(block, "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if entry.Institution == "" && institutionRe.MatchString(trimmed) {
			entry.Institution = cleanInstitutionLine(trimmed)
		}
	}

	if m := degreeRe.FindString(block); m != "" {
		entry.Degree = canonicalDegree(m)
	}
	if m := fieldInRe.FindStringSubmatch(block); m != nil {
		entry.Field = strings.TrimSpace(m[1])
	} else if m := fieldOfRe.FindStringSubmatch(block); m != nil {
		entry.Field = strings.TrimSpace(m[1])
	}
	if m := gpaRe.FindStringSubmatch(block); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil {
			entry.GPA = &gpa
		}
	}
	if start, end, ok := parseDateRange(block); ok {
		entry.StartDate = start
		entry.EndDate = end
	}
	for _, line := range lines {
		text := strings.TrimSpace(line)
		if bulletRe.MatchString(line) && v.isAchievementLine(bulletRe.ReplaceAllString(text, "")) {
			entry.Achievements = append(entry.Achievements, bulletRe.ReplaceAllString(text, ""))
		}
	}

	if entry.Institution == "" && entry.Degree == "" {
		return Education{}, false
	}
	if entry.Institution == "" {
		entry.Institution = UnknownInstitution
	}
	return entry, true
}

// cleanInstitutionLine strips dates and trailing separators from an
// institution line ("Stanford University, 2014 - 2018" → "Stanford University").
func cleanInstitutionLine(line string) string {
	line = dateRangeRe.ReplaceAllString(line, "")
	line = regexp.MustCompile(`\b(19|20)\d{2}\b`).ReplaceAllString(line, "")
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "-–—,|"))
}

// canonicalDegree normalizes a matched degree token for display.
func canonicalDegree(m string) string {
	lower := strings.ToLower(strings.Trim(m, ". "))
	switch {
	case strings.HasPrefix(lower, "b"):
		if lower == "ba" || lower == "b.a" {
			return "Bachelor of Arts"
		}
		return "Bachelor's"
	case strings.HasPrefix(lower, "m") && lower != "mba":
		return "Master's"
	case lower == "mba":
		return "MBA"
	case strings.HasPrefix(lower, "ph") || lower == "doctorate":
		return "PhD"
	case strings.HasPrefix(lower, "associate"):
		return "Associate's"
	}
	if lower == "" {
		return ""
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
