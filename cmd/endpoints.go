/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:   "endpoints [openapi-spec-file-or-url]",
	Short: "List the operations extracted from an OpenAPI specification",
	Long: `List every path+method operation the converter extracts from an
OpenAPI specification, without generating any artifacts. Useful for
checking what a generate run will cover.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loadDocument(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing OpenAPI document: %v\n", err)
			os.Exit(1)
		}

		operations := filterOperations(doc.Operations(), filter, tags)
		if len(operations) == 0 {
			fmt.Println("No operations found matching the criteria")
			os.Exit(0)
		}

		for _, op := range operations {
			fmt.Printf("%-8s %-40s %s\n", op.Method, op.Path, op.Summary)

			if verbose {
				if op.OperationID != "" {
					fmt.Printf("  Operation ID: %s\n", op.OperationID)
				}
				if len(op.Tags) > 0 {
					fmt.Printf("  Tags: %s\n", strings.Join(op.Tags, ", "))
				}
				for _, p := range op.Parameters {
					required := ""
					if p.Required {
						required = " (required)"
					}
					fmt.Printf("  Parameter: %s in %s%s\n", p.Name, p.In, required)
				}
				if op.RequestBody != nil {
					fmt.Printf("  Request body: JSON schema declared\n")
				}
			}
		}

		fmt.Printf("\nTotal: %s operations\n", cyan(len(operations)))
	},
}

func init() {
	rootCmd.AddCommand(endpointsCmd)

	endpointsCmd.Flags().StringVar(&filter, "filter", "", "Filter endpoints by path pattern or operation ID")
	endpointsCmd.Flags().StringSliceVar(&tags, "tags", []string{}, "Filter by OpenAPI tags (can be specified multiple times)")
	endpointsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show parameters and tags per endpoint")
	endpointsCmd.Flags().IntVarP(&fetchTimeout, "timeout", "t", 30, "Remote fetch timeout in seconds")
}
