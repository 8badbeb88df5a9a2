package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-assistant/internal/extract"
)

var parseFile string

var parseCmd = &cobra.Command{
	Use:   "parse [transcript]",
	Short: "Extract resume fields from a transcript",
	Long:  `Run the field extractors over a transcript given as an argument, from --file, or from stdin, and print the resulting partial-resume patch as JSON.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFile, "file", "", "Read the transcript from a file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	var transcript string
	switch {
	case parseFile != "":
		data, err := os.ReadFile(parseFile)
		if err != nil {
			return fmt.Errorf("failed to read transcript file: %w", err)
		}
		transcript = string(data)
	case len(args) == 1:
		transcript = args[0]
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		transcript = string(data)
	}

	patch := extract.ParseTranscript(transcript)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(patch)
}
