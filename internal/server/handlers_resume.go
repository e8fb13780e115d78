package server

import (
	"io"
	"net/http"

	"github.com/daniel/portfolio-site/internal/resume"
)

// maxUploadBytes bounds the multipart form read. It sits slightly above
// the parser's own 10 MiB ceiling so oversized files reach ValidateFile
// and produce the proper file_too_large diagnostic instead of a bare 400.
const maxUploadBytes = resume.MaxFileSize + 1<<20

// ParseResumeResponse is the response body for POST /api/resume/parse.
type ParseResumeResponse struct {
	Result   resume.ParseResult[resume.ParsedResume] `json:"result"`
	Summary  resume.ParsingSummary                   `json:"summary"`
	Errors   []string                                `json:"errors"`
	Warnings []string                                `json:"warnings"`
}

// handleParseResume accepts a multipart upload under the "resume" field,
// runs the parsing pipeline, and returns the full result plus a
// presentation-ready summary. Parse failures are still HTTP 200: the
// outcome is carried in the result envelope, not the status code.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A file named 'resume' is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
		return
	}

	upload := resume.FileUpload{
		Name:      header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Size:      header.Size,
		Data:      data,
	}

	result := s.parser.Parse(r.Context(), upload)

	var sections []*resume.SectionParseResult
	if result.Data != nil {
		sections = result.Data.SectionResults
	}
	summary := resume.NewParsingSummary(sections, result.Errors, result.Warnings)

	resp := ParseResumeResponse{
		Result:   result,
		Summary:  summary,
		Errors:   make([]string, 0, len(result.Errors)),
		Warnings: make([]string, 0, len(result.Warnings)),
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, resume.FormatErrorMessage(e))
	}
	for _, warning := range result.Warnings {
		resp.Warnings = append(resp.Warnings, resume.FormatWarningMessage(warning))
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
