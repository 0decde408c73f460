package workload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfiguration reports a size or seed parameter outside its
// valid domain. It is raised before any input is generated.
var ErrInvalidConfiguration = errors.New("invalid configuration")

var paramValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a parameter struct against its `validate` tags. Any
// violation is returned wrapped in ErrInvalidConfiguration.
func Validate(params any) error {
	err := paramValidate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf(
		"%w: %s", ErrInvalidConfiguration, strings.Join(msgs, "; "),
	)
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()

	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s = %v must be greater than %s",
			field, fe.Value(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s = %v must be at least %s",
			field, fe.Value(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s = %v must be at most %s",
			field, fe.Value(), fe.Param())
	case "ltfield":
		return fmt.Sprintf("%s = %v must be less than %s",
			field, fe.Value(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s = %v must be at least %s",
			field, fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}
