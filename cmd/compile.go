package cmd

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/masnyjimmy/reqdoc/compilation"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile an API definition into an OpenAPI document",
	Long: `Compile reads the definition given with --input, validates it and writes
an OpenAPI 3.1 document. The output format follows the --output extension:
.json writes JSON, anything else writes YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		input, _ := cmd.Flags().GetString("input")

		if res := CompileFile(output, input); res != 0 {
			os.Exit(res)
		}
	},
}

func compileBytes(input, ext string) ([]byte, error) {
	document, err := loadDocument(input)
	if err != nil {
		return nil, err
	}

	log.Print("Compiling api document..")

	var bytes []byte

	switch ext {
	case ".json":
		log.Printf("Type selected: json")
		bytes, err = compilation.CompileToJSON(document)
	case ".yaml", ".yml":
		log.Printf("Type selected: yaml")
		bytes, err = compilation.CompileToYAML(document)
	default:
		log.Printf("Unknown file extension %q, selecting yaml", ext)
		bytes, err = compilation.CompileToYAML(document)
	}

	if err != nil {
		return nil, &loadError{exitCompile, err}
	}

	return bytes, nil
}

// CompileFile compiles input into output and returns the process exit code.
func CompileFile(output, input string) int {
	bytes, err := compileBytes(input, filepath.Ext(output))
	if err != nil {
		errorLogger.Print(err)

		var le *loadError
		if errors.As(err, &le) {
			return le.code
		}
		return exitCompile
	}

	log.Printf("Writing to %v", output)

	if err := os.WriteFile(output, bytes, 0644); err != nil {
		errorLogger.Printf("Unable to write file %v: %v", output, err)
		return exitWrite
	}

	log.Printf("Finished successfully")
	return 0
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringP("output", "o", "openapi.yaml", "Output filepath")
	compileCmd.MarkFlagFilename("output", "yaml", "yml", "json")
}
