package resume

import (
	"regexp"
	"strings"
)

const (
	minAchievementEntryLength = 10
	minAchievementTitleLength = 10
)

// achievementYearRe captures a standalone year to attach as the
// achievement date.
var achievementYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// organizationRe captures an organization name after "at"/"from"/"by".
var organizationRe = regexp.MustCompile(`\b(?:at|from|by)\s+([A-Z][A-Za-z0-9 .&']+)`)

// ExtractAchievements parses the achievements/awards section of the raw
// resume text. Entries split on bullet markers; each entry's title is its
// first line, and entries with titles below the minimum length are dropped.
func (v Vocabulary) ExtractAchievements(rawText string) []Achievement {
	body, ok := locateSection(rawText, achievementHeadings)
	if !ok {
		return nil
	}

	blocks := splitBlocks(body, func(line string) bool {
		return bulletRe.MatchString(line)
	})

	var entries []Achievement
	for _, block := range blocks {
		if len(block) < minAchievementEntryLength {
			continue
		}
		if entry, ok := parseAchievementBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// parseAchievementBlock parses one bullet-delimited achievement entry.
func parseAchievementBlock(block string) (Achievement, bool) {
	lines := strings.Split(block, "\n")
	title := strings.TrimSpace(bulletRe.ReplaceAllString(lines[0], ""))
	title = strings.TrimRight(title, ".")
	if len(title) < minAchievementTitleLength {
		return Achievement{}, false
	}

	entry := Achievement{
		Title:    title,
		Category: CategoryRecognition,
	}
	if len(lines) > 1 {
		entry.Description = strings.TrimSpace(strings.Join(lines[1:], " "))
	}
	if m := achievementYearRe.FindString(block); m != "" {
		entry.Date = m
	}
	if m := organizationRe.FindStringSubmatch(block); m != nil {
		entry.Organization = strings.TrimSpace(m[1])
	}
	return entry, true
}
