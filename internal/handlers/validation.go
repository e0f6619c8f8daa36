package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names, not Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest returns one message per invalid field, nil when the request is valid.
func validateRequest(req models.ConvertRequest) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", fe.Field())
	case "iso4217":
		return fmt.Sprintf("%s must be a valid ISO4217 currency code", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeRequest reads exactly one JSON value from body. An empty body is not an error.
func decodeRequest(body io.Reader, req *models.ConvertRequest) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errTrailingData
	}
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "amount":
			return "amount must be a number conforming to the specified constraints"
		case "from", "to":
			return fmt.Sprintf("%s must be a string", typeErr.Field)
		default:
			return "request body must be a JSON object"
		}
	}
	return fmt.Sprintf("Unexpected token in JSON body: %v", err)
}

func joinMessages(msgs []string) string {
	return strings.Join(msgs, "; ")
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
