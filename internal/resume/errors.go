package resume

import "fmt"

// ErrorType identifies the kind of problem a ParseError describes.
// The set is closed; new values require updating the recoverability
// table and the default suggestion lists below.
type ErrorType string

// The full set of error types produced by the parsing pipeline.
const (
	ErrorFileFormat        ErrorType = "file_format"
	ErrorFileCorrupted     ErrorType = "file_corrupted"
	ErrorFileEmpty         ErrorType = "file_empty"
	ErrorFileTooLarge      ErrorType = "file_too_large"
	ErrorUnsupportedFormat ErrorType = "unsupported_format"
	ErrorSectionMissing    ErrorType = "section_missing"
	ErrorParsingFailed     ErrorType = "parsing_failed"
)

// ParseError is a single user-facing diagnostic produced while parsing a
// resume. It is constructed once (via NewParseError) and never mutated;
// the pipeline collects ParseErrors into error and warning lists.
type ParseError struct {
	Type        ErrorType      `json:"type"`
	Message     string         `json:"message"`
	Section     string         `json:"section,omitempty"`
	Suggestions []string       `json:"suggestions"`
	Recoverable bool           `json:"recoverable"`
	Details     map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("%s (%s): %s", e.Type, e.Section, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// recoverableByType maps each error type to whether the user can fix the
// problem by resubmitting different input. Corrupted and empty files are
// surfaced but not considered recoverable by resubmission.
var recoverableByType = map[ErrorType]bool{
	ErrorFileFormat:        true,
	ErrorFileCorrupted:     false,
	ErrorFileEmpty:         false,
	ErrorFileTooLarge:      true,
	ErrorUnsupportedFormat: true,
	ErrorSectionMissing:    true,
	ErrorParsingFailed:     true,
}

// defaultSuggestions holds the canned remediation list per error type,
// used when the caller supplies none.
var defaultSuggestions = map[ErrorType][]string{
	ErrorFileFormat: {
		"Convert your resume to PDF, Word (.docx), or plain text format",
		"Ensure the file extension matches the actual file format",
	},
	ErrorFileCorrupted: {
		"Re-export or re-save the file from its original application",
		"Try uploading a different copy of your resume",
	},
	ErrorFileEmpty: {
		"Check that the file contains your resume content",
		"Upload a different file",
	},
	ErrorFileTooLarge: {
		"Reduce the file size to under 10 MB",
		"Remove embedded images or export a text-only version",
	},
	ErrorUnsupportedFormat: {
		"Upload your resume as a PDF, Word (.docx), or plain text (.txt) file",
	},
	ErrorSectionMissing: {
		"Add a clearly labeled section heading for this content",
		"Use conventional resume section names so they can be detected",
	},
	ErrorParsingFailed: {
		"Try a simpler formatting with clear section headings",
		"Enter this information manually instead",
	},
}

// sectionSuggestions refines the section_missing defaults with
// section-specific guidance.
var sectionSuggestions = map[string][]string{
	SectionExperience: {
		"Add a clearly labeled Experience section with company names, job titles, and dates",
		"List each position on its own lines, most recent first",
	},
	SectionEducation: {
		"Add an Education section listing institutions, degrees, and graduation years",
	},
	SectionSkills: {
		"Add a Skills section listing your technologies and competencies, separated by commas",
	},
	SectionAchievements: {
		"Add an Achievements or Awards section with bullet points",
	},
}

// NewParseError builds a ParseError for the given type and message.
// Recoverability is derived from the type. If suggestions is empty, the
// type-specific defaults are used; for section_missing errors with a known
// section, section-specific suggestions take precedence. Every returned
// ParseError carries at least one suggestion.
func NewParseError(errType ErrorType, message, section string, suggestions []string, details map[string]any) *ParseError {
	if len(suggestions) == 0 {
		if errType == ErrorSectionMissing {
			if s, ok := sectionSuggestions[section]; ok {
				suggestions = s
			}
		}
		if len(suggestions) == 0 {
			suggestions = defaultSuggestions[errType]
		}
		if len(suggestions) == 0 {
			suggestions = []string{"Try uploading your resume in a different format"}
		}
	}
	return &ParseError{
		Type:        errType,
		Message:     message,
		Section:     section,
		Suggestions: suggestions,
		Recoverable: recoverableByType[errType],
		Details:     details,
	}
}
