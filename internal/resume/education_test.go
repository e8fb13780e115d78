package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	vocab := DefaultVocabulary()

	t.Run("full entry with degree field and gpa", func(t *testing.T) {
		text := "Education\n" +
			"Stanford University, 2014 - 2018\n" +
			"Bachelor of Science in Computer Science\n" +
			"GPA: 3.8\n"

		entries := vocab.ExtractEducation(text)
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, "Stanford University", entry.Institution)
		assert.Equal(t, "Bachelor's", entry.Degree)
		assert.Equal(t, "Computer Science", entry.Field)
		require.NotNil(t, entry.GPA)
		assert.InDelta(t, 3.8, *entry.GPA, 0.001)
		assert.Equal(t, 2014, entry.StartDate.Year())
		require.NotNil(t, entry.EndDate)
		assert.Equal(t, 2018, entry.EndDate.Year())
	})

	t.Run("gpa is captured even when implausible", func(t *testing.T) {
		text := "Education\n" +
			"State College, 2010 - 2014\n" +
			"GPA: 7.5\n"

		entries := vocab.ExtractEducation(text)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].GPA)
		assert.InDelta(t, 7.5, *entries[0].GPA, 0.001)
	})

	t.Run("degree without institution gets the placeholder", func(t *testing.T) {
		text := "Education\n" +
			"Bachelor of Arts, 2012 - 2016\n"

		entries := vocab.ExtractEducation(text)
		require.Len(t, entries, 1)
		assert.Equal(t, UnknownInstitution, entries[0].Institution)
	})

	t.Run("no heading yields no entries", func(t *testing.T) {
		assert.Empty(t, vocab.ExtractEducation("Experience\nEngineer at Acme\n"))
	})

	t.Run("multiple entries split on institution lines", func(t *testing.T) {
		text := "Education\n" +
			"MIT Institute, 2018 - 2020\n" +
			"Master of Science in Robotics\n" +
			"State University, 2014 - 2018\n" +
			"Bachelor of Science in Physics\n"

		entries := vocab.ExtractEducation(text)
		require.Len(t, entries, 2)
		assert.Equal(t, "MIT Institute", entries[0].Institution)
		assert.Equal(t, "Master's", entries[0].Degree)
		assert.Equal(t, "State University", entries[1].Institution)
		assert.Equal(t, "Physics", entries[1].Field)
	})
}

func TestCanonicalDegree(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bachelor", "Bachelor", "Bachelor's"},
		{"bachelors possessive", "bachelor's", "Bachelor's"},
		{"ba abbreviation", "BA", "Bachelor of Arts"},
		{"bsc abbreviation", "BSc", "Bachelor's"},
		{"master", "Master", "Master's"},
		{"msc abbreviation", "MSc", "Master's"},
		{"mba stays mba", "MBA", "MBA"},
		{"phd", "PhD", "PhD"},
		{"doctorate", "doctorate", "PhD"},
		{"associate", "Associate's", "Associate's"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalDegree(tt.input))
		})
	}
}

func TestCleanInstitutionLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"date range stripped", "Stanford University, 2014 - 2018", "Stanford University"},
		{"lone year stripped", "State College 2016", "State College"},
		{"clean line untouched", "Oxford University", "Oxford University"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanInstitutionLine(tt.input))
		})
	}
}
