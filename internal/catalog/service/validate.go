package service

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// usernamePattern matches the accepted username alphabet: word
// characters plus the dot, at-sign, plus and minus.
var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// slugPattern matches lowercase letters, digits, hyphens and
// underscores, the accepted shape for category and genre slugs.
var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// reservedUsernames cannot be registered; "me" is routed to the
// self-profile endpoint and would shadow a real user.
var reservedUsernames = map[string]struct{}{
	"me": {},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names so validation errors key
	// on the wire-level field the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	must(v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if _, reserved := reservedUsernames[s]; reserved {
			return false
		}
		return usernamePattern.MatchString(s)
	}))
	must(v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// validateStruct runs the shared validator over params and converts
// failures into a field-keyed ValidationError.
func validateStruct(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	ve := &ValidationError{Fields: map[string][]string{}}
	for _, fe := range verrs {
		ve.Add(fe.Field(), validationMessage(fe))
	}
	return ve
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "username":
		return "must contain only letters, digits and .@+- and not be a reserved name"
	case "slug":
		return "must contain only letters, digits, hyphens and underscores"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
