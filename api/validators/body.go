package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
)

// maxBodyBytes bounds item payloads; titles and URLs are capped far below it.
const maxBodyBytes = 64 << 10

const unknownFieldPrefix = "json: unknown field "

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// DecodeJSONBody decodes a single JSON object into dest and runs its validate
// tags. Unknown fields, type mismatches and tag failures become a
// CodeValidation error keyed by JSON field name.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() {
		_, _ = io.Copy(io.Discard, body)
	}()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return decodeError(err)
	}
	if decoder.More() {
		return pkgerrors.New(pkgerrors.CodeValidation, "request body must contain a single JSON object")
	}
	if err := validate.Struct(dest); err != nil {
		return tagErrors(err)
	}
	return nil
}

func decodeError(err error) error {
	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	fields := pkgerrors.FieldErrors{}
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		fields.Add(typeErr.Field, "must be a "+typeErr.Type.String())
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		fields.Add(strings.Trim(strings.TrimPrefix(err.Error(), unknownFieldPrefix), `"`), "is not allowed")
	case errors.As(err, &sizeErr):
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "request body too large")
	case errors.Is(err, io.EOF):
		return pkgerrors.New(pkgerrors.CodeValidation, "request body is empty")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed JSON body")
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").WithDetails(map[string]string(fields))
}

func tagErrors(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
	}
	fields := pkgerrors.FieldErrors{}
	for _, fieldErr := range errs {
		fields.Add(fieldErr.Field(), tagMessage(fieldErr))
	}
	return fields.Err("validation failed")
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}
