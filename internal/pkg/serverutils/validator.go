package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a user-facing summary of failed request fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// ValidateRequest checks struct tags on a request DTO and returns a
// *ValidationError listing the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", ve.Field(), ve.Tag()))
		}
		return &ValidationError{Fields: fields}
	}
	return err
}
