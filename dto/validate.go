package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"course_workspace/internal/apperr"
)

var validate = validator.New()

// Validate checks a request struct against its validate tags and folds any
// violation into a single InvalidArgument error naming the offending fields.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return apperr.Invalid("invalid fields: " + strings.Join(fields, ", "))
	}
	return apperr.Wrap(apperr.InvalidArgument, "invalid request body", err)
}
