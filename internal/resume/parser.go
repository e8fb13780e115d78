package resume

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daniel/portfolio-site/internal/extraction"
)

// DefaultDecodeTimeout bounds the format decoder step. Document parsing
// libraries can hang on malformed input, so the decode runs under its own
// deadline.
const DefaultDecodeTimeout = 30 * time.Second

// Parser is the top-level entry point of the resume parsing pipeline.
// It is stateless between calls; one Parser may serve concurrent parses.
type Parser struct {
	decoders      *extraction.Registry
	vocab         Vocabulary
	decodeTimeout time.Duration
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithVocabulary overrides the keyword tables used by the extractors.
func WithVocabulary(v Vocabulary) ParserOption {
	return func(p *Parser) { p.vocab = v }
}

// WithDecodeTimeout overrides the decoder deadline.
func WithDecodeTimeout(d time.Duration) ParserOption {
	return func(p *Parser) { p.decodeTimeout = d }
}

// NewParser builds a Parser with the built-in decoders and vocabulary.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		decoders:      extraction.NewRegistry(),
		vocab:         DefaultVocabulary(),
		decodeTimeout: DefaultDecodeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full pipeline over one uploaded file: file validation,
// text decoding, the four section extractions, completeness validation,
// confidence aggregation, and result assembly. File and decode level
// problems are fatal; section-level problems are isolated warnings. The
// returned result's Success is true iff its error list is empty.
func (p *Parser) Parse(ctx context.Context, file FileUpload) (result ParseResult[ParsedResume]) {
	// Nothing below may panic out to the caller: any programming error or
	// unexpected library throw is normalized into one generic error.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("resume parse panic: %v", r)
			result = failureResult(NewParseError(ErrorParsingFailed,
				"An unexpected error occurred while parsing the resume", "",
				[]string{
					"Try uploading the resume in a different format",
					"Ensure the file is not corrupted",
					"Contact support if the problem persists",
				}, nil))
		}
	}()

	// 1. Validate declared file metadata.
	if errs := ValidateFile(file); len(errs) > 0 {
		return failureResult(errs...)
	}

	// 2. Resolve the decoder and extract raw text. Decoder failure is
	// always fatal: no partial recovery is attempted.
	format, ok := extraction.DetectFormat(file.MediaType, file.Name)
	if !ok {
		return failureResult(NewParseError(ErrorUnsupportedFormat,
			fmt.Sprintf("File type %q is not supported", file.MediaType), "", nil, nil))
	}
	decoder, ok := p.decoders.Decoder(format)
	if !ok {
		return failureResult(NewParseError(ErrorUnsupportedFormat,
			fmt.Sprintf("No decoder is available for %s files", format), "", nil, nil))
	}

	rawText, err := p.decode(ctx, decoder, file.Data)
	if err != nil {
		return failureResult(NewParseError(ErrorFileCorrupted,
			fmt.Sprintf("The file could not be read: %v", err), "", nil,
			map[string]any{"format": string(format)}))
	}

	// 3. Run the four wrapped section extractors. They are pure functions
	// of the same immutable text, so they run concurrently; results are
	// merged by section, not completion order.
	var (
		expResult, skillResult, eduResult, achResult *SectionParseResult
		experience                                   []Experience
		skills                                       []Skill
		education                                    []Education
		achievements                                 []Achievement
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		expResult, experience = p.vocab.ParseExperienceSection(rawText)
		return nil
	})
	g.Go(func() error {
		skillResult, skills = p.vocab.ParseSkillsSection(rawText)
		return nil
	})
	g.Go(func() error {
		eduResult, education = p.vocab.ParseEducationSection(rawText)
		return nil
	})
	g.Go(func() error {
		achResult, achievements = p.vocab.ParseAchievementsSection(rawText)
		return nil
	})
	_ = g.Wait() // the wrappers never return errors; panics are handled inside

	sectionResults := []*SectionParseResult{expResult, skillResult, eduResult, achResult}

	// 4. Final cross-section completeness pass.
	report := ValidateCompleteness(rawText, experience, skills, education, achievements)

	// 5. Merge errors and warnings from every layer.
	errors := append([]*ParseError{}, report.Errors...)
	warnings := append([]*ParseError{}, report.Warnings...)
	for _, sr := range sectionResults {
		errors = append(errors, sr.Errors...)
		warnings = append(warnings, sr.Warnings...)
	}

	// 6. Aggregate confidence.
	confidence := OverallConfidence(sectionResults, rawText)

	// 7. Assemble the final result.
	parsed := ParsedResume{
		Experience:     experience,
		Skills:         skills,
		Education:      education,
		Achievements:   achievements,
		RawText:        rawText,
		Confidence:     confidence,
		SectionResults: sectionResults,
	}

	result = ParseResult[ParsedResume]{
		Success:    len(errors) == 0,
		Errors:     errors,
		Warnings:   warnings,
		Confidence: &confidence,
	}
	if result.Success {
		result.Data = &parsed
	}
	return result
}

// decode runs the format decoder under the configured deadline. The
// decoder executes in its own goroutine so a hung text-extraction library
// cannot stall the whole parse past the timeout.
func (p *Parser) decode(ctx context.Context, decoder extraction.Decoder, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.decodeTimeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		// PDF libraries panic on some malformed inputs; the panic must not
		// escape this goroutine.
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("decoder panic: %v", r)}
			}
		}()
		text, err := decoder.Decode(ctx, data)
		ch <- outcome{text: text, err: err}
	}()

	select {
	case out := <-ch:
		return out.text, out.err
	case <-ctx.Done():
		return "", fmt.Errorf("decoding timed out: %w", ctx.Err())
	}
}

// failureResult builds a failed ParseResult carrying the given errors.
// The payload is omitted on failure; consumers must branch on Success.
func failureResult(errs ...*ParseError) ParseResult[ParsedResume] {
	return ParseResult[ParsedResume]{
		Success:  false,
		Errors:   errs,
		Warnings: []*ParseError{},
	}
}
