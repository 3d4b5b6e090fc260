package parser

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// StrictDecoding is implemented by record types that must reject unknown
// JSON fields. Types that don't implement it are decoded leniently.
type StrictDecoding interface {
	StrictFields() bool
}

// DecodeError is returned when a response body can't be decoded into the
// requested type
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoder parses FIPE API responses
type Decoder struct {
	lenient jsoniter.API
	strict  jsoniter.API
}

// NewDecoder creates a new decoder
func NewDecoder() *Decoder {
	return &Decoder{
		lenient: jsoniter.ConfigCompatibleWithStandardLibrary,
		strict: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			DisallowUnknownFields:  true,
		}.Froze(),
	}
}

func (d *Decoder) apiFor(v any) jsoniter.API {
	if s, ok := v.(StrictDecoding); ok && s.StrictFields() {
		return d.strict
	}
	return d.lenient
}

// DecodeOne parses text as a single JSON object into T
func DecodeOne[T any](d *Decoder, text string) (T, error) {
	var out T
	if err := decode(d.apiFor(&out), text, &out); err != nil {
		return out, &DecodeError{Target: typeName[T](), Err: err}
	}
	return out, nil
}

// DecodeList parses text as a JSON array, decoding each element as T
func DecodeList[T any](d *Decoder, text string) ([]T, error) {
	var elem T
	var out []T
	if err := decode(d.apiFor(&elem), text, &out); err != nil {
		return nil, &DecodeError{Target: "[]" + typeName[T](), Err: err}
	}
	return out, nil
}

var errEmptyBody = errors.New("empty body")

func decode(api jsoniter.API, text string, v any) error {
	if strings.TrimSpace(text) == "" {
		return errEmptyBody
	}
	return api.UnmarshalFromString(text, v)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
