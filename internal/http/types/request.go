// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/storage"
)

const maxBodyBytes = 1 << 20

// NewValidator returns a validator reporting fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// DecodeJSON reads the request body into dst and validates it.
func DecodeJSON(r *http.Request, v *validator.Validate, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return apperrors.Validation("invalid request body: %v", err)
	}

	return Validate(v, dst)
}

// Validate runs struct validation and reports every failing field.
func Validate(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validation("invalid request: %v", err)
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}

	return apperrors.Validation("request validation failed").WithDetails(map[string]interface{}{"fields": fields})
}

// ParsePage reads the page and limit query parameters.
func ParsePage(r *http.Request) (storage.Page, error) {
	var p storage.Page

	q := r.URL.Query()
	for name, dst := range map[string]*int64{"page": &p.Page, "limit": &p.Size} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}

		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return storage.Page{}, apperrors.Validation("%s must be a non negative integer", name)
		}
		*dst = n
	}

	return p, nil
}

// ParseBool reads a boolean query parameter, def when absent.
func ParseBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.Validation("%s must be a boolean", name)
	}

	return b, nil
}

// ParseDate reads a YYYY-MM-DD or RFC3339 date.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.Validation("invalid date %q", raw)
	}

	return t, nil
}

// OptionalString maps an empty query value to nil.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
