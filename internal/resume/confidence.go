package resume

// Per-section confidence formula constants.
const (
	confidenceBase         = 0.1
	confidenceHeadingBonus = 0.3
	confidenceEntriesBonus = 0.4
	confidencePerEntry     = 0.1
	confidenceEntryCap     = 0.2
)

// sectionWeights drive the overall confidence average. personal_info is
// never populated by this pipeline and always contributes zero.
var sectionWeights = map[string]float64{
	SectionExperience:   0.4,
	SectionSkills:       0.2,
	SectionEducation:    0.2,
	SectionAchievements: 0.1,
	SectionPersonalInfo: 0.1,
}

// SectionConfidence scores one section's extraction in [0, 1]: a small
// baseline, a bonus for finding the heading at all, and a bonus for
// extracting entries that grows slightly with entry count.
func SectionConfidence(headingFound bool, entryCount int) float64 {
	score := confidenceBase
	if headingFound {
		score += confidenceHeadingBonus
		if entryCount > 0 {
			entryBonus := confidencePerEntry * float64(entryCount)
			if entryBonus > confidenceEntryCap {
				entryBonus = confidenceEntryCap
			}
			score += confidenceEntriesBonus + entryBonus
		}
	}
	return clamp01(score)
}

// OverallConfidence combines per-section confidences into one score: a
// weighted average over the sections present, plus a small bonus for
// longer source text, capped at 1.
func OverallConfidence(sections []*SectionParseResult, rawText string) float64 {
	var weighted, totalWeight float64
	for _, s := range sections {
		weight, ok := sectionWeights[s.Section]
		if !ok {
			continue
		}
		weighted += s.Confidence * weight
		totalWeight += weight
	}
	var score float64
	if totalWeight > 0 {
		score = weighted / totalWeight
	}

	lengthBonus := float64(len(rawText)) / 1000
	if lengthBonus > 1 {
		lengthBonus = 1
	}
	return clamp01(score + lengthBonus*0.1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
