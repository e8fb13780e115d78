package resume

import (
	"regexp"
	"strings"
)

const minJobEntryLength = 20

// UnknownCompany is the placeholder used when an entry has a recognizable
// position but no company name could be determined. The section wrapper
// filters these out and reports each one as a warning.
const UnknownCompany = "Unknown Company"

// jobHeaderRe matches a line that opens a job entry: a capitalized word
// followed by an at/@/-/, separator or a 4-digit year somewhere on the line.
var jobHeaderRe = regexp.MustCompile(`^\s*[A-Z][\w.&']*.*(\bat\b|@|-|,|\b(19|20)\d{2}\b)`)

// locationRe matches a "City, ST" or "City, Country" style location line.
var locationRe = regexp.MustCompile(`^[A-Z][A-Za-z .'-]+,\s*[A-Z][A-Za-z ]*$`)

// bulletRe strips common bullet markers from the start of a line.
var bulletRe = regexp.MustCompile(`^\s*[-•*·▪]\s*`)

// ExtractExperience parses the experience section of the raw resume text
// into structured entries. It is a pure function: no heading in the text
// means an empty result, never an error.
func (v Vocabulary) ExtractExperience(rawText string) []Experience {
	body, ok := locateSection(rawText, experienceHeadings)
	if !ok {
		return nil
	}

	blocks := splitBlocks(body, isJobBoundary)

	var entries []Experience
	for _, block := range blocks {
		if len(block) < minJobEntryLength {
			continue
		}
		if entry, ok := v.parseJobBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// isJobBoundary reports whether a line opens a new job entry. Lines that
// are only a date range or only a location belong to the current entry,
// even though they would otherwise match the header shape.
func isJobBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if isPureDateLine(trimmed) {
		return false
	}
	if locationRe.MatchString(trimmed) {
		return false
	}
	return jobHeaderRe.MatchString(line) || yearLineRe.MatchString(line)
}

// isPureDateLine reports whether a line carries nothing but a date range.
func isPureDateLine(trimmed string) bool {
	loc := dateRangeRe.FindStringIndex(trimmed)
	if loc == nil {
		return false
	}
	rest := strings.TrimSpace(trimmed[:loc[0]] + trimmed[loc[1]:])
	return len(rest) <= 2
}

// parseJobBlock parses one delimited job entry. Entries where neither a
// company nor a position can be determined are dropped silently; reporting
// happens at the wrapper layer.
func (v Vocabulary) parseJobBlock(block string) (Experience, bool) {
	lines := strings.Split(block, "\n")

	entry := Experience{
		Achievements: []string{},
		Technologies: []string{},
		Metrics:      []string{},
	}

	// First line carries the position/company split.
	first := strings.TrimSpace(lines[0])
	first = dateRangeRe.ReplaceAllString(first, "")
	first = strings.TrimSpace(strings.Trim(first, "-–—,"))
	entry.Position, entry.Company = splitRoleCompany(first)

	if entry.Company == "" && entry.Position == "" {
		return Experience{}, false
	}
	if entry.Company == "" {
		entry.Company = UnknownCompany
	}

	if start, end, ok := parseDateRange(block); ok {
		entry.StartDate = start
		entry.EndDate = end
	}

	var description []string
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if entry.Location == "" && locationRe.MatchString(trimmed) {
			entry.Location = trimmed
			continue
		}
		if dateRangeRe.MatchString(trimmed) && len(trimmed) < 30 {
			continue // bare date line, already captured
		}
		text := bulletRe.ReplaceAllString(trimmed, "")
		if len(entry.Achievements) < maxAchievementsPerEntry && v.isAchievementLine(text) {
			entry.Achievements = append(entry.Achievements, text)
			continue
		}
		description = append(description, text)
	}
	entry.Description = strings.Join(description, " ")

	for _, tech := range v.Technologies {
		if containsKeyword(block, tech) {
			entry.Technologies = append(entry.Technologies, tech)
		}
	}

	return entry, true
}

// maxAchievementsPerEntry caps how many verb-led bullet lines are promoted
// to achievements for a single job entry.
const maxAchievementsPerEntry = 5

// isAchievementLine reports whether a line starts with one of the
// achievement verbs ("Led team of engineers", "Improved performance...").
func (v Vocabulary) isAchievementLine(line string) bool {
	lower := strings.ToLower(line)
	for _, verb := range v.AchievementVerbs {
		if strings.HasPrefix(lower, verb+" ") {
			return true
		}
	}
	return false
}

// splitRoleCompany splits a job header line into position and company on
// the first recognized separator ("Senior Engineer at Google" →
// "Senior Engineer", "Google"). With no separator the whole line is the
// position and the company stays empty.
func splitRoleCompany(line string) (position, company string) {
	separators := []string{" at ", " @ ", "@", " - ", " – ", " | ", ","}
	for _, sep := range separators {
		if idx := strings.Index(line, sep); idx > 0 {
			position = strings.TrimSpace(line[:idx])
			company = strings.TrimSpace(line[idx+len(sep):])
			// The company half may carry trailing location fragments.
			if cut := strings.IndexAny(company, ",|"); cut > 0 {
				company = strings.TrimSpace(company[:cut])
			}
			return position, company
		}
	}
	return strings.TrimSpace(line), ""
}
