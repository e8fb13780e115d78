package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{"plain word match", "built services in Python daily", "Python", true},
		{"case insensitive", "PYTHON and more", "python", true},
		{"substring does not match", "a javascripter wrote this", "JavaScript", false},
		{"go inside google does not match", "worked at Google", "Go", false},
		{"go as a word matches", "wrote Go services", "Go", true},
		{"cpp with symbols", "knows C++ well", "C++", true},
		{"dotted name", "Node.js backend work", "Node.js", true},
		{"leading dot name", "a .NET shop", ".NET", true},
		{"keyword at start of text", "Python expert", "Python", true},
		{"keyword at end of text", "expert in Python", "Python", true},
		{"absent keyword", "nothing relevant", "Rust", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsKeyword(tt.text, tt.keyword))
		})
	}
}

func TestCategorizeSkill(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name  string
		skill string
		want  string
	}{
		{"exact technology name", "Go", CategoryTechnical},
		{"technology case fold", "kubernetes", CategoryTechnical},
		{"technical term substring", "REST API design", CategoryTechnical},
		{"soft skill", "Team Leadership", CategorySoft},
		{"soft skill exact", "Communication", CategorySoft},
		{"industry fallback", "Underwriting", CategoryIndustry},
		{"negotiation is soft not technical", "Negotiation", CategorySoft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vocab.categorizeSkill(tt.skill))
		})
	}
}
