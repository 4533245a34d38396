package docs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the structural invariants of the document: names are set,
// methods are known, paths are absolute and entity names are unique.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Namespace()+": "+formatValidationError(ve))
	}

	return fmt.Errorf("invalid document: %s", strings.Join(messages, "; "))
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", ve.Param())
	case "startswith":
		return fmt.Sprintf("must start with %q", ve.Param())
	case "unique":
		return fmt.Sprintf("%s must be unique", ve.Param())
	default:
		return fmt.Sprintf("failed on %q", ve.Tag())
	}
}
