package load

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	goIdent  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	sqlIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*)?$`)
)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return goIdent.MatchString(fl.Field().String())
	})
	v.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return sqlIdent.MatchString(fl.Field().String())
	})
	return v
})

// Validate checks the project against its struct constraints. Every
// violation is reported.
func (p *Project) Validate() error {
	err := validate().Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &FieldError{Namespace: fe.Namespace(), Tag: fe.Tag(), Value: fe.Value()})
	}
	return errors.Join(errs...)
}

// FieldError reports a value that violates a constraint of the input model.
type FieldError struct {
	Namespace string
	Tag       string
	Value     any
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("load: %s is required", e.Namespace)
	case "goident", "sqlident":
		return fmt.Sprintf("load: %s: %q is not a valid identifier", e.Namespace, e.Value)
	default:
		return fmt.Sprintf("load: %s failed on %q", e.Namespace, e.Tag)
	}
}
