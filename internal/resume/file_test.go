package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name      string
		file      FileUpload
		wantTypes []ErrorType
	}{
		{
			name:      "valid pdf upload",
			file:      FileUpload{Name: "resume.pdf", MediaType: MediaTypePDF, Size: 1024},
			wantTypes: nil,
		},
		{
			name:      "valid docx upload",
			file:      FileUpload{Name: "resume.docx", MediaType: MediaTypeDocx, Size: 2048},
			wantTypes: nil,
		},
		{
			name:      "valid txt by extension only",
			file:      FileUpload{Name: "resume.txt", MediaType: "", Size: 100},
			wantTypes: nil,
		},
		{
			name:      "valid pdf by media type with odd name",
			file:      FileUpload{Name: "resume", MediaType: MediaTypePDF, Size: 100},
			wantTypes: nil,
		},
		{
			name:      "empty file",
			file:      FileUpload{Name: "resume.pdf", MediaType: MediaTypePDF, Size: 0},
			wantTypes: []ErrorType{ErrorFileEmpty},
		},
		{
			name:      "exactly at the size limit passes",
			file:      FileUpload{Name: "resume.pdf", MediaType: MediaTypePDF, Size: MaxFileSize},
			wantTypes: nil,
		},
		{
			name:      "one byte over the limit fails",
			file:      FileUpload{Name: "resume.pdf", MediaType: MediaTypePDF, Size: MaxFileSize + 1},
			wantTypes: []ErrorType{ErrorFileTooLarge},
		},
		{
			name:      "unsupported extension and media type",
			file:      FileUpload{Name: "resume.exe", MediaType: "application/octet-stream", Size: 100},
			wantTypes: []ErrorType{ErrorUnsupportedFormat},
		},
		{
			name:      "empty and unsupported reported together",
			file:      FileUpload{Name: "resume.exe", MediaType: "application/octet-stream", Size: 0},
			wantTypes: []ErrorType{ErrorFileEmpty, ErrorUnsupportedFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateFile(tt.file)
			require.Len(t, errs, len(tt.wantTypes))
			for i, wantType := range tt.wantTypes {
				assert.Equal(t, wantType, errs[i].Type)
				assert.NotEmpty(t, errs[i].Suggestions)
			}
		})
	}
}

func TestValidateFileTooLargeMessage(t *testing.T) {
	file := FileUpload{Name: "resume.pdf", MediaType: MediaTypePDF, Size: 15 * 1024 * 1024}
	errs := ValidateFile(file)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrorFileTooLarge, errs[0].Type)
	assert.Contains(t, errs[0].Message, "15.00 MB")
	assert.True(t, errs[0].Recoverable)
}
