package resume

import "strings"

// Vocabulary holds the keyword tables the extractors match against. It is
// injectable so tests can use small fixed sets and so the lists can be
// extended without touching extraction logic.
type Vocabulary struct {
	// Technologies is scanned across the whole document to discover
	// technical skills even when no labeled skills section exists.
	Technologies []string
	// TechnicalTerms classify a skill name as "technical".
	TechnicalTerms []string
	// SoftTerms classify a skill name as "soft".
	SoftTerms []string
	// AchievementVerbs lead the bullet patterns mined from job entries.
	AchievementVerbs []string
}

// DefaultVocabulary returns the built-in keyword tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Technologies: []string{
			"JavaScript", "TypeScript", "Python", "Java", "Go", "Golang",
			"C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala",
			"React", "Angular", "Vue", "Node.js", "Express", "Django",
			"Flask", "Spring", "Rails", "Laravel", ".NET", "GraphQL",
			"REST", "gRPC", "HTML", "CSS", "Sass", "Tailwind",
			"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
			"Kafka", "RabbitMQ", "AWS", "Azure", "GCP", "Docker",
			"Kubernetes", "Terraform", "Jenkins", "Git", "Linux", "CI/CD",
		},
		TechnicalTerms: []string{
			"javascript", "typescript", "python", "java", "golang", "ruby",
			"php", "swift", "kotlin", "rust", "scala", "c++", "c#",
			"react", "angular", "vue", "node", "django", "flask", "spring",
			"rails", ".net", "graphql", "rest", "grpc", "html", "css",
			"sql", "postgres", "mysql", "mongo", "redis", "kafka",
			"aws", "azure", "gcp", "cloud", "docker", "kubernetes",
			"terraform", "git", "linux", "api", "database", "frontend",
			"backend", "devops", "testing", "security", "data",
		},
		SoftTerms: []string{
			"communication", "leadership", "management", "teamwork",
			"collaboration", "problem solving", "mentoring", "coaching",
			"presentation", "negotiation", "organization", "adaptability",
			"creativity", "critical thinking", "time management",
		},
		AchievementVerbs: []string{
			"achieved", "improved", "increased", "reduced", "led",
			"managed", "delivered", "implemented", "launched", "built",
			"designed", "optimized",
		},
	}
}

// containsKeyword reports whether text contains keyword as a whole word,
// case-insensitively. Word boundaries are checked manually because many
// technology names ("C++", "Node.js", ".NET") break \b-based regexes.
func containsKeyword(text, keyword string) bool {
	lowerText := strings.ToLower(text)
	lowerKw := strings.ToLower(keyword)

	for start := 0; ; {
		idx := strings.Index(lowerText[start:], lowerKw)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(lowerKw)

		beforeOK := idx == 0 || !isWordChar(lowerText[idx-1])
		afterOK := end == len(lowerText) || !isWordChar(lowerText[end])
		// Only require a boundary on sides where the keyword itself ends
		// with a word character ("C++" has no trailing word char).
		if isWordChar(lowerKw[0]) && !beforeOK {
			start = idx + 1
			continue
		}
		if isWordChar(lowerKw[len(lowerKw)-1]) && !afterOK {
			start = idx + 1
			continue
		}
		return true
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// categorizeSkill classifies a skill name as technical, soft, or industry
// by case-insensitive substring match against the vocabulary term lists.
func (v Vocabulary) categorizeSkill(name string) string {
	lower := strings.ToLower(name)
	for _, tech := range v.Technologies {
		if strings.EqualFold(name, tech) {
			return CategoryTechnical
		}
	}
	for _, term := range v.TechnicalTerms {
		if strings.Contains(lower, term) {
			return CategoryTechnical
		}
	}
	for _, term := range v.SoftTerms {
		if strings.Contains(lower, term) {
			return CategorySoft
		}
	}
	return CategoryIndustry
}
