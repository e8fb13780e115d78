// Package resume implements the best-effort resume parsing pipeline:
// file validation, text decoding dispatch, heuristic section extraction,
// per-section error handling, confidence scoring, and result assembly.
package resume

import "time"

// Section names understood by the pipeline.
const (
	SectionExperience   = "experience"
	SectionSkills       = "skills"
	SectionEducation    = "education"
	SectionAchievements = "achievements"
	SectionPersonalInfo = "personal_info"
)

// Skill categories assigned by the keyword heuristic.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryIndustry  = "industry"
)

// Achievement categories. The extractor currently always assigns
// CategoryRecognition; the others exist for manual entry downstream.
const (
	CategoryAward       = "award"
	CategoryRecognition = "recognition"
	CategoryMilestone   = "milestone"
	CategoryPublication = "publication"
)

// Experience represents one work history entry extracted from a resume.
// EndDate is nil for current positions.
type Experience struct {
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Location     string     `json:"location,omitempty"`
	Description  string     `json:"description,omitempty"`
	Achievements []string   `json:"achievements"`
	Technologies []string   `json:"technologies"`
	Metrics      []string   `json:"metrics"`
}

// Skill represents one skill found in a resume. Level is always
// "intermediate": resume text rarely states proficiency, so the extractor
// does not attempt to mine it.
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Description string `json:"description,omitempty"`
}

// Education represents one education entry. GPA is left unvalidated here;
// range checking (0-4) belongs to the schema layer.
type Education struct {
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	Field        string     `json:"field,omitempty"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	GPA          *float64   `json:"gpa,omitempty"`
	Achievements []string   `json:"achievements"`
}

// Achievement represents one award or accomplishment entry.
type Achievement struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date,omitempty"`
	Category     string `json:"category"`
	Organization string `json:"organization,omitempty"`
}

// PersonalInfo is a placeholder for contact details. The parsing core does
// not populate it; it exists so downstream manual entry can fill it in.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// SectionParseResult wraps one section extractor's outcome. Success is true
// on every path that did not hit an extractor panic, including sections that
// produced zero entries with only warnings.
type SectionParseResult struct {
	Section    string        `json:"section"`
	Success    bool          `json:"success"`
	Data       []any         `json:"data"`
	Errors     []*ParseError `json:"errors"`
	Warnings   []*ParseError `json:"warnings"`
	Confidence float64       `json:"confidence"`
}

// ParseResult is the generic outcome envelope. Success is true iff Errors
// is empty; warnings never affect it.
type ParseResult[T any] struct {
	Success    bool          `json:"success"`
	Data       *T            `json:"data,omitempty"`
	Errors     []*ParseError `json:"errors"`
	Warnings   []*ParseError `json:"warnings"`
	Confidence *float64      `json:"confidence,omitempty"`
}

// ParsedResume is the aggregate payload assembled once per parse call.
type ParsedResume struct {
	PersonalInfo   PersonalInfo          `json:"personal_info"`
	Experience     []Experience          `json:"experience"`
	Skills         []Skill               `json:"skills"`
	Education      []Education           `json:"education"`
	Achievements   []Achievement         `json:"achievements"`
	RawText        string                `json:"raw_text"`
	Confidence     float64               `json:"confidence"`
	SectionResults []*SectionParseResult `json:"section_results"`
}
