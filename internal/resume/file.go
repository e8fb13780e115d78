package resume

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload ceiling in bytes (10 MiB). Only sizes strictly
// greater trigger the too-large error.
const MaxFileSize = 10 * 1024 * 1024

// Accepted media types and filename extensions.
const (
	MediaTypePDF   = "application/pdf"
	MediaTypeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypePlain = "text/plain"
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

var supportedMediaTypes = map[string]bool{
	MediaTypePDF:   true,
	MediaTypeDocx:  true,
	MediaTypePlain: true,
}

// FileUpload is the file-like input contract of the parsing pipeline:
// declared metadata plus the full byte content.
type FileUpload struct {
	Name      string
	MediaType string
	Size      int64
	Data      []byte
}

// ValidateFile checks the declared size, media type, and extension against
// the supported constraints. It never opens or decodes the content, and
// the checks are independent: a single file can fail several of them.
func ValidateFile(file FileUpload) []*ParseError {
	var errs []*ParseError

	if file.Size == 0 {
		errs = append(errs, NewParseError(ErrorFileEmpty,
			"The uploaded file is empty", "", nil,
			map[string]any{"size": int64(0)}))
	}

	if file.Size > MaxFileSize {
		sizeMB := float64(file.Size) / 1024 / 1024
		errs = append(errs, NewParseError(ErrorFileTooLarge,
			fmt.Sprintf("File size %.2f MB exceeds the 10 MB limit", sizeMB), "", nil,
			map[string]any{"size": file.Size, "limit": int64(MaxFileSize)}))
	}

	ext := strings.ToLower(filepath.Ext(file.Name))
	if !supportedMediaTypes[file.MediaType] && !supportedExtensions[ext] {
		errs = append(errs, NewParseError(ErrorUnsupportedFormat,
			fmt.Sprintf("File type %q is not supported", displayType(file.MediaType, ext)), "", nil,
			map[string]any{"media_type": file.MediaType, "extension": ext}))
	}

	return errs
}

func displayType(mediaType, ext string) string {
	if mediaType != "" {
		return mediaType
	}
	if ext != "" {
		return ext
	}
	return "unknown"
}
