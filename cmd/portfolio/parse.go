package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daniel/portfolio-site/internal/resume"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume file and print the extraction summary",
	Long:  `Run the resume parsing pipeline on a local PDF, Word, or plain text file and print what could be extracted, with confidence scores and diagnostics.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the full result as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	upload := resume.FileUpload{
		Name:      filepath.Base(path),
		MediaType: mime.TypeByExtension(filepath.Ext(path)),
		Size:      int64(len(data)),
		Data:      data,
	}

	parser := resume.NewParser()
	result := parser.Parse(cmd.Context(), upload)

	if parseJSON {
		return printResultJSON(cmd.OutOrStdout(), result)
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}
