package mapping

import (
	"fmt"
	"math"
	"net/mail"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
)

// Scalar field validators. Each fetches one payload field, records any
// failure in errs and reports via the second return whether a usable value
// was produced.

func requiredString(p map[string]any, errs FieldErrors, field string, maxLen int) (string, bool) {
	v, ok := p[field]
	if !ok {
		errs.Add(field, msgRequired)
		return "", false
	}
	return checkString(errs, field, v, maxLen, false)
}

// optionalString accepts an absent field (no value, no error) and treats an
// explicit null as clearing the field to empty.
func optionalString(p map[string]any, errs FieldErrors, field string, maxLen int) (string, bool) {
	v, ok := p[field]
	if !ok {
		return "", false
	}
	if v == nil {
		return "", true
	}
	return checkString(errs, field, v, maxLen, true)
}

func checkString(errs FieldErrors, field string, v any, maxLen int, allowBlank bool) (string, bool) {
	s, ok := v.(string)
	if !ok {
		errs.Add(field, fmt.Sprintf("Incorrect Type. Expected a str but got %s", typeName(v)))
		return "", false
	}
	if s == "" && !allowBlank {
		errs.Add(field, msgBlank)
		return "", false
	}
	if maxLen > 0 && len(s) > maxLen {
		errs.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxLen))
		return "", false
	}
	return s, true
}

func requiredEmail(p map[string]any, errs FieldErrors, field string) (string, bool) {
	s, ok := requiredString(p, errs, field, 0)
	if !ok {
		return "", false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		errs.Add(field, "Enter a valid email address.")
		return "", false
	}
	return s, true
}

func requiredIP(p map[string]any, errs FieldErrors, field string) (string, bool) {
	s, ok := requiredString(p, errs, field, 0)
	if !ok {
		return "", false
	}
	if _, err := netip.ParseAddr(s); err != nil {
		errs.Add(field, "Enter a valid IPv4 or IPv6 address.")
		return "", false
	}
	return s, true
}

// optionalURL accepts absent and null like optionalString; a blank string
// also clears the field.
func optionalURL(p map[string]any, errs FieldErrors, field string) (string, bool) {
	s, ok := optionalString(p, errs, field, 200)
	if !ok || s == "" {
		return s, ok
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "ftp" && u.Scheme != "ftps") {
		errs.Add(field, "Enter a valid URL.")
		return "", false
	}
	return s, true
}

// optionalInt accepts a JSON number with no fractional part or a numeric
// string. Absent yields no value; an explicit null yields a nil marker the
// caller stores as the cleared value.
func optionalInt(p map[string]any, errs FieldErrors, field string) (*int, bool) {
	v, ok := p[field]
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case nil:
		return nil, true
	case int:
		n := t
		return &n, true
	case float64:
		if t != math.Trunc(t) {
			errs.Add(field, "A valid integer is required.")
			return nil, false
		}
		n := int(t)
		return &n, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			errs.Add(field, "A valid integer is required.")
			return nil, false
		}
		return &n, true
	default:
		errs.Add(field, "A valid integer is required.")
		return nil, false
	}
}

// enumString validates a closed-choice field. Absent values are accepted
// for optional fields so model defaults apply on create.
func enumString(p map[string]any, errs FieldErrors, field string, choices []string, required bool) (string, bool) {
	v, ok := p[field]
	if !ok {
		if required {
			errs.Add(field, msgRequired)
		}
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		errs.Add(field, fmt.Sprintf("Incorrect Type. Expected a str but got %s", typeName(v)))
		return "", false
	}
	for _, choice := range choices {
		if s == choice {
			return s, true
		}
	}
	errs.Add(field, fmt.Sprintf("%q is not a valid choice.", s))
	return "", false
}
