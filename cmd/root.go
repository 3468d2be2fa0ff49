/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// Color helpers shared across commands
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
	white = color.New(color.FgWhite, color.Bold).SprintFunc()

	isTTY = term.IsTerminal(int(os.Stdout.Fd()))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swaggerforge",
	Short: "Generate test artifacts from OpenAPI specifications",
	Long: `swaggerforge converts an OpenAPI/Swagger document into ready-to-use
test artifacts: a spreadsheet of test cases, a Postman collection, a
SoapUI project, or a pytest script.

Provide a specification file or URL, pick an export format, and the
generated artifact is written to a local file.`,
}

func Execute() {
	cobra.OnInitialize(func() {
		viper.SetConfigName("swaggerforge")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		// The config file is optional; it only supplies defaults for
		// format, output and server.
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalf("Error reading config file: %v", err)
			}
		}
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
