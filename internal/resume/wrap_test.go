package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSectionPanicIsolation(t *testing.T) {
	boom := func(string) []Experience { panic("extractor bug") }

	result, entries := runSection(SectionExperience, "Experience\ntext", boom, false, nil)

	assert.False(t, result.Success)
	assert.Zero(t, result.Confidence)
	assert.Nil(t, entries)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ErrorParsingFailed, result.Errors[0].Type)
	assert.Equal(t, SectionExperience, result.Errors[0].Section)
	assert.NotEmpty(t, result.Errors[0].Suggestions)
	assert.Equal(t, "extractor bug", result.Errors[0].Details["cause"])
}

func TestRunSectionMissingHeading(t *testing.T) {
	none := func(string) []Skill { return nil }

	t.Run("required section warns", func(t *testing.T) {
		result, _ := runSection(SectionSkills, "no headings here", none, false, nil)

		assert.True(t, result.Success)
		assert.Empty(t, result.Errors)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, ErrorSectionMissing, result.Warnings[0].Type)
	})

	t.Run("optional section stays silent", func(t *testing.T) {
		result, _ := runSection(SectionAchievements, "no headings here",
			func(string) []Achievement { return nil }, true, nil)

		assert.True(t, result.Success)
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})
}

func TestRunSectionPresentButEmpty(t *testing.T) {
	none := func(string) []Skill { return nil }

	result, _ := runSection(SectionSkills, "Skills\nsomething unparseable", none, false, nil)

	assert.True(t, result.Success)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, ErrorParsingFailed, result.Warnings[0].Type)
	assert.Contains(t, result.Warnings[0].Message, "no entries could be parsed")
	assert.InDelta(t, 0.4, result.Confidence, 0.0001)
}

func TestRunSectionFilter(t *testing.T) {
	extract := func(string) []Experience {
		return []Experience{
			{Company: "Acme", Position: "Engineer"},
			{Company: UnknownCompany, Position: "Mystery Role"},
		}
	}
	filter := func(e Experience) (bool, string) {
		return e.Company != UnknownCompany, e.Position
	}

	result, kept := runSection(SectionExperience, "Experience\ntext", extract, false, filter)

	assert.True(t, result.Success)
	require.Len(t, kept, 1)
	assert.Equal(t, "Acme", kept[0].Company)
	require.Len(t, result.Data, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "Mystery Role")
	assert.InDelta(t, 0.9, result.Confidence, 0.0001)
}

func TestParseExperienceSectionFiltersPlaceholders(t *testing.T) {
	vocab := DefaultVocabulary()
	text := "Experience\n" +
		"Freelance Consultant 2016 - 2019\n" +
		"- Delivered projects for small businesses\n"

	result, entries := vocab.ParseExperienceSection(text)

	assert.True(t, result.Success)
	assert.Empty(t, entries)
	require.NotEmpty(t, result.Warnings)
	found := false
	for _, w := range result.Warnings {
		if w.Type == ErrorParsingFailed && w.Section == SectionExperience {
			found = true
		}
	}
	assert.True(t, found, "expected a warning for the dropped placeholder entry")
}

func TestParseAchievementsSectionOptional(t *testing.T) {
	vocab := DefaultVocabulary()

	result, entries := vocab.ParseAchievementsSection("Experience\nEngineer at Acme, 2019 - 2021\n")

	assert.True(t, result.Success)
	assert.Empty(t, entries)
	assert.Empty(t, result.Warnings)
}
