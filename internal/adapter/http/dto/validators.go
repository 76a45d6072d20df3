package dto

import (
	"fmt"
	"html"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var keySegmentRe = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// customRules are the binding tags this package adds on top of validator's
// built-ins.
var customRules = map[string]validator.Func{
	"safe_url": func(fl validator.FieldLevel) bool {
		return IsReturnURL(fl.Field().String())
	},
	"proof_ref": func(fl validator.FieldLevel) bool {
		return IsProofReference(fl.Field().String())
	},
}

// RegisterValidators installs the custom binding tags on v. Registering on
// the same engine twice replaces the earlier functions.
func RegisterValidators(v *validator.Validate) error {
	for tag, fn := range customRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// IsReturnURL accepts the empty string and absolute http(s) URLs with a host.
func IsReturnURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// IsProofReference reports whether s is a relative object key made of
// safe segments. Parent references are never allowed.
func IsProofReference(s string) bool {
	if s == "" {
		return false
	}
	for _, seg := range strings.Split(s, "/") {
		if seg == "." || seg == ".." || !keySegmentRe.MatchString(seg) {
			return false
		}
	}
	return true
}

// SanitizeStruct trims and HTML-escapes the settable string and *string
// fields of the struct v points to. Anything else is left untouched.
func SanitizeStruct(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return
	}
	s := rv.Elem()
	if s.Kind() != reflect.Struct {
		return
	}
	for i := range s.NumField() {
		if target, ok := stringTarget(s.Field(i)); ok {
			target.SetString(html.EscapeString(strings.TrimSpace(target.String())))
		}
	}
}

func stringTarget(f reflect.Value) (reflect.Value, bool) {
	if !f.CanSet() {
		return reflect.Value{}, false
	}
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return reflect.Value{}, false
		}
		f = f.Elem()
	}
	return f, f.Kind() == reflect.String
}
