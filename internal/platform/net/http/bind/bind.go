// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "leadlens/internal/platform/errors"
	"leadlens/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DefaultMaxBytes caps JSON bodies when no option overrides it
const DefaultMaxBytes int64 = 2 << 20

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // 0 means DefaultMaxBytes
	DisallowUnknown bool
	AllowEmptyBody  bool
}

func options(opts []JSONOptions) JSONOptions {
	o := JSONOptions{DisallowUnknown: true}
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	return o
}

// ParseJSON decodes one JSON value into T, validates it and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := options(opts)
	body, err := readBody(r, o)
	if err != nil || body == nil {
		return zero, err
	}
	var dst T
	if err := decode(body, &dst, o); err != nil {
		return zero, err
	}
	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// ParseJSONOneOrMany accepts either a single object or an array of objects
// every element is validated and the first failure names its index
func ParseJSONOneOrMany[T any](r *http.Request, opts ...JSONOptions) ([]T, error) {
	o := options(opts)
	body, err := readBody(r, o)
	if err != nil || body == nil {
		return nil, err
	}

	var out []T
	if body[0] == '[' {
		if err := decode(body, &out, o); err != nil {
			return nil, err
		}
	} else {
		var one T
		if err := decode(body, &one, o); err != nil {
			return nil, err
		}
		out = []T{one}
	}

	for i := range out {
		if err := Validate(out[i]); err != nil {
			if len(out) > 1 {
				return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "item %d: %s", i, perr.WireFrom(err).Message), fmt.Sprintf("[%d]", i))
			}
			return nil, err
		}
	}
	return out, nil
}

// Validate runs struct validation and returns a validation error with the first field
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
}

// Body reads the raw request body under the same size rules as ParseJSON
func Body(r *http.Request, opts ...JSONOptions) ([]byte, error) {
	return readBody(r, options(opts))
}

// readBody returns the trimmed body, nil when empty and that is allowed
func readBody(r *http.Request, o JSONOptions) ([]byte, error) {
	if r.Body == nil {
		r.Body = http.NoBody
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(r.Body, o.MaxBytes+1))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, perr.Newf(perr.ErrorCodeValidation, "request body exceeds %d bytes", mbe.Limit)
		}
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "read body")
	}
	if int64(len(b)) > o.MaxBytes {
		return nil, perr.Newf(perr.ErrorCodeValidation, "request body exceeds %d bytes", o.MaxBytes)
	}

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		if o.AllowEmptyBody {
			return nil, nil
		}
		return nil, perr.JSONErrf("empty body")
	}
	return b, nil
}

func decode(body []byte, dst any, o JSONOptions) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return perr.JSONErrf("unexpected trailing data")
	}
	return nil
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
