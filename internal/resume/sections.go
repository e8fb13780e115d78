package resume

import (
	"regexp"
	"strings"
	"time"
)

// Heading patterns per section, tried in order; the first match wins.
// All matching is case-insensitive against the full raw text.
var (
	experienceHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?i)professional\s+experience`),
		regexp.MustCompile(`(?i)work\s+experience`),
		regexp.MustCompile(`(?i)work\s+history`),
		regexp.MustCompile(`(?i)employment(\s+history)?`),
		regexp.MustCompile(`(?i)career\s+history`),
		regexp.MustCompile(`(?i)\bexperience\b`),
	}
	skillsHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?i)technical\s+skills`),
		regexp.MustCompile(`(?i)core\s+competencies`),
		regexp.MustCompile(`(?i)\bskills\b`),
		regexp.MustCompile(`(?i)\btechnologies\b`),
		regexp.MustCompile(`(?i)\bexpertise\b`),
	}
	educationHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\beducation\b`),
		regexp.MustCompile(`(?i)academic\s+background`),
		regexp.MustCompile(`(?i)\bqualifications\b`),
		regexp.MustCompile(`(?i)\bdegrees\b`),
	}
	achievementHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bachievements\b`),
		regexp.MustCompile(`(?i)\baccomplishments\b`),
		regexp.MustCompile(`(?i)\bawards\b`),
		regexp.MustCompile(`(?i)\bhonors\b`),
		regexp.MustCompile(`(?i)\brecognition\b`),
	}
)

// nextHeadingRe marks the boundary where any section body ends: the next
// recognized heading from the shared closed list, at the start of a line.
var nextHeadingRe = regexp.MustCompile(`(?im)^\s*(education|experience|work\s+history|employment|skills|certifications?|awards|projects|publications|references|summary|objective|about)\b`)

// dateRangeRe matches "2020 - 2023", "2019 - Present" and similar ranges.
var dateRangeRe = regexp.MustCompile(`(?i)(\d{4})\s*[-–—~]\s*(\d{4}|present|current|ongoing)`)

// yearLineRe matches an entry line that leads with a 4-digit year.
var yearLineRe = regexp.MustCompile(`^\s*(19|20)\d{2}\b`)

// headingPatterns returns the ordered heading regex list for a section.
func headingPatterns(section string) []*regexp.Regexp {
	switch section {
	case SectionExperience:
		return experienceHeadings
	case SectionSkills:
		return skillsHeadings
	case SectionEducation:
		return educationHeadings
	case SectionAchievements:
		return achievementHeadings
	}
	return nil
}

// sectionHeadingFound reports whether any heading pattern for the section
// matches the raw text. Used by the wrappers as an independent re-check.
func sectionHeadingFound(section, text string) bool {
	for _, re := range headingPatterns(section) {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// locateSection finds the body of a section in the raw text: from the end
// of the first matching heading to the start of the next recognized heading
// or the end of the document. Returns ok=false when no heading matches.
func locateSection(text string, patterns []*regexp.Regexp) (body string, ok bool) {
	for _, re := range patterns {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		// Body starts after the heading line.
		start := loc[1]
		if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
			start += nl + 1
		} else {
			start = len(text)
		}
		end := len(text)
		if boundary := nextHeadingRe.FindStringIndex(text[start:]); boundary != nil {
			end = start + boundary[0]
		}
		return text[start:end], true
	}
	return "", false
}

// parseDateRange extracts a start date and optional end date from text.
// The start year maps to January 1 of that year. A textual end marker
// (present/current/ongoing) or no match leaves the end date nil.
func parseDateRange(text string) (start time.Time, end *time.Time, ok bool) {
	m := dateRangeRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, nil, false
	}
	startYear := atoiYear(m[1])
	start = time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	if endYear := atoiYear(m[2]); endYear > 0 {
		e := time.Date(endYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		// Malformed ranges with end before start keep only the start.
		if !e.Before(start) {
			end = &e
		}
	}
	return start, end, true
}

func atoiYear(s string) int {
	if len(s) != 4 {
		return 0
	}
	year := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}

// splitBlocks splits a section body into candidate entry blocks using the
// supplied boundary test, which receives each line. Lines before the first
// boundary are ignored unless no boundary exists at all, in which case the
// whole body is a single block.
func splitBlocks(body string, isBoundary func(line string) bool) []string {
	lines := strings.Split(body, "\n")
	var blocks []string
	var current []string
	sawBoundary := false

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.TrimSpace(strings.Join(current, "\n")))
			current = nil
		}
	}

	for _, line := range lines {
		if isBoundary(line) {
			sawBoundary = true
			flush()
		}
		if sawBoundary {
			current = append(current, line)
		}
	}
	flush()

	if !sawBoundary {
		trimmed := strings.TrimSpace(body)
		if trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	return blocks
}
