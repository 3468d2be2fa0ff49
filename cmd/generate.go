/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/akshara-doc/SwaggerForge/internal/generator"
	"github.com/akshara-doc/SwaggerForge/internal/models"
	"github.com/akshara-doc/SwaggerForge/internal/output"
	"github.com/akshara-doc/SwaggerForge/internal/parser"
	"github.com/akshara-doc/SwaggerForge/internal/synthesizer"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	formatName   string
	outputFile   string
	serverURL    string
	filter       string
	tags         []string
	verbose      bool
	fetchTimeout int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [openapi-spec-file-or-url]",
	Short: "Generate test artifacts from an OpenAPI specification",
	Long: `Generate test artifacts from an OpenAPI specification file or URL.

The document's endpoints are extracted, a battery of test cases is
synthesized per endpoint, and the result is exported in the chosen
format.

Examples:
  # Spreadsheet of test cases (default format)
  swaggerforge generate api-spec.json

  # Postman collection from a remote document
  swaggerforge generate https://example.com/openapi.json --format postman

  # SoapUI project for a subset of endpoints
  swaggerforge generate api-spec.json --format soapui --filter /pets

  # pytest script against a specific server
  swaggerforge generate api-spec.json --format script --server https://api.example.com`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	doc, err := loadDocument(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OpenAPI document: %v\n", err)
		os.Exit(1)
	}

	name := firstNonEmpty(formatName, viper.GetString("format"), "excel")
	format, err := output.ParseFormat(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	operations := filterOperations(doc.Operations(), filter, tags)
	if len(operations) == 0 {
		fmt.Println("No operations found matching the criteria")
		os.Exit(0)
	}

	cases := synthesizer.NewSynthesizer(doc).Synthesize(operations)

	filePath := firstNonEmpty(outputFile, viper.GetString("output"), output.DefaultFilename(format))

	gen := generator.NewGenerator(doc)
	opts := output.Options{
		Title:   doc.Title(),
		BaseURL: firstNonEmpty(serverURL, viper.GetString("server"), "http://localhost"),
		SampleBody: func(schema *yaml.Node) string {
			return gen.SampleJSON(schema)
		},
	}

	if err := output.Export(format, filePath, operations, cases, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting artifacts: %v\n", err)
		os.Exit(1)
	}

	displaySummary(doc, operations, cases, filePath)
}

// loadDocument parses a local file or fetches a remote document once
// before any conversion work starts.
func loadDocument(source string) (*parser.Document, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if isTTY {
			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = " Fetching " + source
			s.Start()
			defer s.Stop()
		}
		return parser.ParseURL(source, time.Duration(fetchTimeout)*time.Second)
	}
	return parser.ParseFile(source)
}

func filterOperations(operations []models.Operation, filterStr string, tagFilters []string) []models.Operation {
	var filtered []models.Operation

	for _, op := range operations {
		// Filter by path pattern or operation ID
		if filterStr != "" {
			if !strings.Contains(op.Path, filterStr) && !strings.Contains(op.OperationID, filterStr) {
				continue
			}
		}

		// Filter by tags
		if len(tagFilters) > 0 {
			found := false
			for _, filterTag := range tagFilters {
				for _, opTag := range op.Tags {
					if opTag == filterTag {
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				continue
			}
		}

		filtered = append(filtered, op)
	}

	return filtered
}

func displaySummary(doc *parser.Document, operations []models.Operation, cases []models.TestCase, filePath string) {
	summary := models.ConversionSummary{
		Endpoints:  len(operations),
		TestCases:  len(cases),
		OutputFile: filePath,
	}

	fmt.Printf("\n%s\n", white("=== Conversion Summary ==="))
	if doc.SpecType() != "" {
		fmt.Printf("Specification: %s %s\n", doc.SpecType(), doc.SpecVersion())
	}
	if doc.Title() != "" {
		fmt.Printf("Title:         %s\n", doc.Title())
	}
	fmt.Printf("Endpoints:     %s\n", cyan(summary.Endpoints))
	fmt.Printf("Test Cases:    %s\n", cyan(summary.TestCases))
	fmt.Printf("Output:        %s\n", green(summary.OutputFile))

	if verbose {
		fmt.Println()
		for _, op := range operations {
			n := 0
			for _, tc := range cases {
				if tc.Endpoint == op.Path && tc.Method == op.Method {
					n++
				}
			}
			fmt.Printf("%-8s %-40s %d cases\n", op.Method, op.Path, n)
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&formatName, "format", "f", "", "Export format: excel, postman, soapui, script")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: fixed filename per format)")
	generateCmd.Flags().StringVar(&serverURL, "server", "", "Base URL used by collection and script exports")
	generateCmd.Flags().StringVar(&filter, "filter", "", "Filter endpoints by path pattern or operation ID")
	generateCmd.Flags().StringSliceVar(&tags, "tags", []string{}, "Filter by OpenAPI tags (can be specified multiple times)")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show per-endpoint case counts")
	generateCmd.Flags().IntVarP(&fetchTimeout, "timeout", "t", 30, "Remote fetch timeout in seconds")
}
