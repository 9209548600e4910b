package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"creator-hub/pkg/apperror"
	"creator-hub/services/catalog/internal/entity"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("creator_category", func(fl validator.FieldLevel) bool {
		return entity.CreatorCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("product_category", func(fl validator.FieldLevel) bool {
		return entity.ProductCategory(fl.Field().String()).Valid()
	})

	return v
}

// validationError turns validator output into a Validation error whose message
// names each failing field, e.g. "invalid creator: slug failed on slug".
func validationError(subject string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.Validation(subject, err)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fieldPath(fe), fe.Tag()))
	}
	return apperror.Validation(subject+": "+strings.Join(parts, ", "), err)
}

// fieldPath drops the top-level struct name: "NewCreator.socialLinks.twitter" -> "socialLinks.twitter".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
