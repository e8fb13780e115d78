package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience(t *testing.T) {
	vocab := DefaultVocabulary()

	t.Run("single entry with open-ended range", func(t *testing.T) {
		text := "Experience\n" +
			"Senior Engineer at Google\n" +
			"2020 - Present\n" +
			"Mountain View, CA\n" +
			"- Led team of 5 engineers\n"

		entries := vocab.ExtractExperience(text)
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, "Google", entry.Company)
		assert.Equal(t, "Senior Engineer", entry.Position)
		assert.Equal(t, 2020, entry.StartDate.Year())
		assert.Nil(t, entry.EndDate)
		assert.Equal(t, "Mountain View, CA", entry.Location)
		assert.Equal(t, []string{"Led team of 5 engineers"}, entry.Achievements)
	})

	t.Run("multiple entries", func(t *testing.T) {
		text := "Work Experience\n" +
			"Software Engineer at Initech, 2015 - 2018\n" +
			"- Built internal reporting tools\n" +
			"Staff Engineer at Hooli, 2018 - 2021\n" +
			"- Designed the payments platform\n"

		entries := vocab.ExtractExperience(text)
		require.Len(t, entries, 2)
		assert.Equal(t, "Initech", entries[0].Company)
		assert.Equal(t, "Software Engineer", entries[0].Position)
		require.NotNil(t, entries[0].EndDate)
		assert.Equal(t, 2018, entries[0].EndDate.Year())
		assert.Equal(t, "Hooli", entries[1].Company)
		assert.Equal(t, "Staff Engineer", entries[1].Position)
	})

	t.Run("technologies mentioned in the entry are captured", func(t *testing.T) {
		text := "Experience\n" +
			"Backend Developer at Initech, 2019 - 2021\n" +
			"- Built services in Python with PostgreSQL and Docker\n"

		entries := vocab.ExtractExperience(text)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Technologies, "Python")
		assert.Contains(t, entries[0].Technologies, "PostgreSQL")
		assert.Contains(t, entries[0].Technologies, "Docker")
	})

	t.Run("no heading yields no entries", func(t *testing.T) {
		assert.Empty(t, vocab.ExtractExperience("Skills: Go, SQL"))
	})

	t.Run("header without separator gets the unknown company placeholder", func(t *testing.T) {
		text := "Experience\n" +
			"Freelance Consultant 2016 - 2019\n" +
			"- Delivered projects for small businesses\n"

		entries := vocab.ExtractExperience(text)
		require.Len(t, entries, 1)
		assert.Equal(t, UnknownCompany, entries[0].Company)
		assert.Equal(t, "Freelance Consultant", entries[0].Position)
	})

	t.Run("achievements cap per entry", func(t *testing.T) {
		text := "Experience\n" +
			"Engineer at Acme Corp, 2015 - 2020\n" +
			"- Improved build times\n" +
			"- Reduced costs by half\n" +
			"- Launched three products\n" +
			"- Led the platform migration\n" +
			"- Designed the billing system\n" +
			"- Optimized the query planner\n"

		entries := vocab.ExtractExperience(text)
		require.Len(t, entries, 1)
		assert.Len(t, entries[0].Achievements, maxAchievementsPerEntry)
	})
}

func TestSplitRoleCompany(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantPosition string
		wantCompany  string
	}{
		{"at separator", "Senior Engineer at Google", "Senior Engineer", "Google"},
		{"spaced at sign", "Engineer @ Stripe", "Engineer", "Stripe"},
		{"dash separator", "Engineer - Acme Corp", "Engineer", "Acme Corp"},
		{"pipe separator", "Engineer | Hooli", "Engineer", "Hooli"},
		{"comma separator", "Engineer, Initech", "Engineer", "Initech"},
		{"trailing location stripped", "Engineer at Acme, Austin TX", "Engineer", "Acme"},
		{"no separator", "Freelance Consultant", "Freelance Consultant", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			position, company := splitRoleCompany(tt.input)
			assert.Equal(t, tt.wantPosition, position)
			assert.Equal(t, tt.wantCompany, company)
		})
	}
}

func TestIsPureDateLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare range", "2020 - Present", true},
		{"bare closed range", "2018 - 2020", true},
		{"range with header text", "Engineer at Acme 2018 - 2020", false},
		{"no date at all", "Mountain View, CA", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPureDateLine(tt.input))
		})
	}
}
