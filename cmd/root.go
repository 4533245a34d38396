package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reqdoc",
	Short: "Compile API definitions with per-method requiredness into OpenAPI",
	Long: `reqdoc reads a YAML API definition (entities, parameter groups and routes)
and compiles it into an OpenAPI 3.1 document. Parameters and entity fields can
vary their "required" flag per HTTP method or for responses using requiredDetails.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("input", "i", "api.yaml", "API definition file")
	rootCmd.MarkPersistentFlagFilename("input", "yaml", "yml")
}
