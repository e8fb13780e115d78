package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCompleteness(t *testing.T) {
	longFiller := strings.Repeat("plenty of resume text here ", 5)

	t.Run("near-empty text is an error and ends the pass", func(t *testing.T) {
		report := ValidateCompleteness("   short   ", nil, nil, nil, nil)

		require.Len(t, report.Errors, 1)
		assert.Equal(t, ErrorFileEmpty, report.Errors[0].Type)
		assert.Empty(t, report.Warnings)
	})

	t.Run("all sections populated yields a clean report", func(t *testing.T) {
		report := ValidateCompleteness(longFiller,
			[]Experience{{Company: "Acme"}},
			[]Skill{{Name: "Go"}},
			[]Education{{Institution: "State University"}},
			nil)

		assert.Empty(t, report.Errors)
		assert.Empty(t, report.Warnings)
	})

	t.Run("empty section with evidence warns as a parsing failure", func(t *testing.T) {
		text := longFiller + " years of work experience in the field"
		report := ValidateCompleteness(text,
			nil,
			[]Skill{{Name: "Go"}},
			[]Education{{Institution: "State University"}},
			nil)

		assert.Empty(t, report.Errors)
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, ErrorParsingFailed, report.Warnings[0].Type)
		assert.Equal(t, SectionExperience, report.Warnings[0].Section)
	})

	t.Run("empty section without evidence warns as missing", func(t *testing.T) {
		report := ValidateCompleteness(longFiller,
			[]Experience{{Company: "Acme"}},
			[]Skill{{Name: "Go"}},
			nil,
			nil)

		assert.Empty(t, report.Errors)
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, ErrorSectionMissing, report.Warnings[0].Type)
		assert.Equal(t, SectionEducation, report.Warnings[0].Section)
	})

	t.Run("missing achievements never warns", func(t *testing.T) {
		report := ValidateCompleteness(longFiller,
			[]Experience{{Company: "Acme"}},
			[]Skill{{Name: "Go"}},
			[]Education{{Institution: "State University"}},
			nil)

		assert.Empty(t, report.Warnings)
	})
}
