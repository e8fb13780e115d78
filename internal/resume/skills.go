package resume

import (
	"regexp"
	"strings"
)

// DefaultSkillLevel is assigned to every extracted skill. Resume text
// rarely states proficiency, so the extractor does not try to infer it.
const DefaultSkillLevel = "intermediate"

// inlineSkillListRe matches explicit "Skills: a, b, c" style lists
// anywhere in the document.
var inlineSkillListRe = regexp.MustCompile(`(?im)^\s*(?:skills|expertise)\s*:\s*(.+)$`)

// ExtractSkills discovers skills with three strategies: delimiter-separated
// lists inside the skills section (or after an inline "Skills:" label),
// bullet lines inside the section, and a whole-document scan against the
// technology vocabulary. The vocabulary scan runs even when no skills
// heading exists, because technical skills are often listed without a
// labeled section. Results are deduplicated by exact name.
func (v Vocabulary) ExtractSkills(rawText string) []Skill {
	seen := make(map[string]bool)
	var skills []Skill

	add := func(name string) {
		name = strings.TrimSpace(name)
		if len(name) < 2 || len(name) >= 50 {
			return
		}
		if seen[name] {
			return
		}
		seen[name] = true
		skills = append(skills, Skill{
			Name:     name,
			Category: v.categorizeSkill(name),
			Level:    DefaultSkillLevel,
		})
	}

	// Strategy 1: delimiter-separated lists in the skills section body.
	if body, ok := locateSection(rawText, skillsHeadings); ok {
		for _, line := range strings.Split(body, "\n") {
			line = bulletRe.ReplaceAllString(strings.TrimSpace(line), "")
			if line == "" {
				continue
			}
			// Strategy 2: a bullet line without delimiters is one skill.
			for _, token := range splitSkillList(line) {
				add(token)
			}
		}
	}

	// Inline "Skills: ..." lists outside any located section.
	for _, m := range inlineSkillListRe.FindAllStringSubmatch(rawText, -1) {
		for _, token := range splitSkillList(m[1]) {
			add(token)
		}
	}

	// Strategy 3: technology vocabulary scan over the whole document.
	for _, tech := range v.Technologies {
		if containsKeyword(rawText, tech) {
			add(tech)
		}
	}

	return skills
}

// splitSkillList splits a line on the common skill delimiters.
func splitSkillList(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•' || r == '·'
	})
}
