package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

var errBodyTooLarge = errors.New("request body too large")

// FieldError describes one rejected input. Loc is the path to it, for example
// ["body", "price"] or ["path", "id"].
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type ValidationError []FieldError

func (v ValidationError) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		loc := make([]string, 0, len(fe.Loc))
		for _, l := range fe.Loc {
			loc = append(loc, fmt.Sprint(l))
		}
		parts = append(parts, strings.Join(loc, ".")+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ValidationError{{
			Loc:  []any{"path", "id"},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
			Type: "int_parsing",
		}}
	}
	return id, nil
}

// decodeProductFields reads a create/update body. All five fields are
// required; anything else in the object, including an "id", is ignored.
func decodeProductFields(w http.ResponseWriter, r *http.Request) (ProductFields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return ProductFields{}, errBodyTooLarge
		}
		return ProductFields{}, bodyError("JSON decode error", "json_invalid")
	}
	if raw == nil {
		return ProductFields{}, bodyError("Input should be a valid dictionary or object", "model_attributes_type")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ProductFields{}, bodyError("extra data after JSON object", "json_invalid")
	}

	var (
		f    ProductFields
		errs ValidationError
	)
	errs = decodeField(raw, "name", &f.Name, "string_type", "Input should be a valid string", errs)
	errs = decodeField(raw, "sku", &f.SKU, "string_type", "Input should be a valid string", errs)
	errs = decodeStock(raw, &f.Stock, errs)
	errs = decodeField(raw, "price", &f.Price, "decimal_parsing", "Input should be a valid decimal", errs)
	errs = decodeField(raw, "category", &f.Category, "string_type", "Input should be a valid string", errs)

	if len(errs) > 0 {
		return ProductFields{}, errs
	}
	return f, nil
}

func decodeField(raw map[string]json.RawMessage, key string, dst any, typ, msg string, errs ValidationError) ValidationError {
	loc := []any{"body", key}

	v, ok := raw[key]
	if !ok {
		return append(errs, FieldError{Loc: loc, Msg: "Field required", Type: "missing"})
	}
	// encoding/json and decimal both treat null as "leave unchanged".
	if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return append(errs, FieldError{Loc: loc, Msg: msg, Type: typ})
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return append(errs, FieldError{Loc: loc, Msg: msg, Type: typ})
	}
	return errs
}

// decodeStock accepts an integer, a number with a zero fractional part
// ("3.0", "3e2") or a string holding an integer.
func decodeStock(raw map[string]json.RawMessage, dst *int64, errs ValidationError) ValidationError {
	loc := []any{"body", "stock"}

	v, ok := raw["stock"]
	if !ok {
		return append(errs, FieldError{Loc: loc, Msg: "Field required", Type: "missing"})
	}
	v = bytes.TrimSpace(v)

	if len(v) > 0 && v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return append(errs, FieldError{Loc: loc, Msg: "Input should be a valid integer", Type: "int_type"})
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return append(errs, FieldError{
				Loc:  loc,
				Msg:  "Input should be a valid integer, unable to parse string as an integer",
				Type: "int_parsing",
			})
		}
		*dst = n
		return errs
	}

	var num json.Number
	if bytes.Equal(v, []byte("null")) || json.Unmarshal(v, &num) != nil {
		return append(errs, FieldError{Loc: loc, Msg: "Input should be a valid integer", Type: "int_type"})
	}
	if n, err := num.Int64(); err == nil {
		*dst = n
		return errs
	}

	d, err := decimal.NewFromString(num.String())
	if err != nil {
		return append(errs, FieldError{Loc: loc, Msg: "Input should be a valid integer", Type: "int_type"})
	}
	if d.IsZero() {
		*dst = 0
		return errs
	}
	if !d.IsInteger() {
		return append(errs, FieldError{
			Loc:  loc,
			Msg:  "Input should be a valid integer, got a number with a fractional part",
			Type: "int_from_float",
		})
	}
	// Checked before BigInt so a huge exponent is never expanded.
	if d.Exponent() > 18 || !d.BigInt().IsInt64() {
		return append(errs, FieldError{
			Loc:  loc,
			Msg:  "Input should be a valid integer, exceeded maximum size",
			Type: "int_parsing_size",
		})
	}
	*dst = d.BigInt().Int64()
	return errs
}

func bodyError(msg, typ string) ValidationError {
	return ValidationError{{Loc: []any{"body"}, Msg: msg, Type: typ}}
}
