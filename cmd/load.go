package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/reqdoc/docs"
	"github.com/masnyjimmy/reqdoc/validation"
)

const (
	exitRead = iota + 1
	exitValidate
	exitParse
	exitCompile
	exitWrite
)

var errorLogger *log.Logger = log.New(os.Stderr, "Error: ", log.Ltime)

// loadError carries the exit code of the stage that failed.
type loadError struct {
	code int
	err  error
}

func (e *loadError) Error() string { return e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

/*
Loading a definition
1. read bytes
2. validate against the schema
3. unmarshal
4. validate struct invariants
*/
func loadDocument(input string) (*docs.Document, error) {
	log.Printf("Reading %v", input)

	bytes, err := os.ReadFile(input)
	if err != nil {
		return nil, &loadError{exitRead, fmt.Errorf("unable to read file %q: %w", input, err)}
	}

	log.Print("Validating schema..")

	if err := validation.ValidateYAML(bytes); err != nil {
		return nil, &loadError{exitValidate, fmt.Errorf("validation failed: %w", err)}
	}

	log.Print("Parsing document..")

	var document docs.Document

	if err := yaml.Unmarshal(bytes, &document); err != nil {
		return nil, &loadError{exitParse, fmt.Errorf("unable to parse document: %w", err)}
	}

	if err := document.Validate(); err != nil {
		return nil, &loadError{exitValidate, err}
	}

	return &document, nil
}
