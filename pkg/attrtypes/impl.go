/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attrtypes

import (
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/mail"
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/voedger/graphcheck/pkg/schema"
)

type attrType struct {
	kind     string
	validate func(value any) (reason string)
}

func (t attrType) Kind() string { return t.kind }

func (t attrType) Validate(value any, name string, _ *schema.AttributeSchema) error {
	if reason := t.validate(value); reason != "" {
		return invalidValue(t.kind, name, value, reason)
	}
	return nil
}

type types map[string]IAttributeType

func (tt types) Get(kind string) (IAttributeType, error) {
	t, ok := tt[kind]
	if !ok {
		return nil, fmt.Errorf("%w: «%s»", ErrUnknownKind, kind)
	}
	return t, nil
}

var colorRegexp = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func isString(value any) string {
	if _, ok := value.(string); !ok {
		return "is not a string"
	}
	return ""
}

func isInteger(value any) string {
	switch v := value.(type) {
	case int, int32, int64:
		return ""
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return ""
		}
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return ""
		}
	}
	return "is not an integer"
}

func isBoolean(value any) string {
	if _, ok := value.(bool); !ok {
		return "is not a boolean"
	}
	return ""
}

func isDateTime(value any) string {
	switch v := value.(type) {
	case time.Time:
		return ""
	case string:
		if _, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return ""
		}
	}
	return "is not a valid RFC 3339 date-time"
}

func isEmail(value any) string {
	s, ok := value.(string)
	if !ok {
		return "is not a string"
	}
	if a, err := mail.ParseAddress(s); err != nil || a.Address != s {
		return "is not a valid email address"
	}
	return ""
}

func isURL(value any) string {
	s, ok := value.(string)
	if !ok {
		return "is not a string"
	}
	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "is not a valid absolute URL"
	}
	return ""
}

func isColor(value any) string {
	s, ok := value.(string)
	if !ok || !colorRegexp.MatchString(s) {
		return "is not a valid color"
	}
	return ""
}

// Host address, optionally with prefix length, e.g. 10.0.0.1/24
func isIPHost(value any) string {
	s, ok := value.(string)
	if !ok {
		return "is not a string"
	}
	if strings.Contains(s, "/") {
		if _, err := netip.ParsePrefix(s); err == nil {
			return ""
		}
	} else if _, err := netip.ParseAddr(s); err == nil {
		return ""
	}
	return "is not a valid IP host"
}

// Network prefix without host bits, e.g. 10.0.0.0/24
func isIPNetwork(value any) string {
	s, ok := value.(string)
	if !ok {
		return "is not a string"
	}
	p, err := netip.ParsePrefix(s)
	if err != nil || p.Masked() != p {
		return "is not a valid IP network"
	}
	return ""
}

func isMacAddress(value any) string {
	s, ok := value.(string)
	if !ok {
		return "is not a string"
	}
	if _, err := net.ParseMAC(s); err != nil {
		return "is not a valid MAC address"
	}
	return ""
}

func isList(value any) string {
	if _, ok := value.([]any); !ok {
		return "is not a list"
	}
	return ""
}

func isJSON(value any) string {
	if s, ok := value.(string); ok {
		if !json.Valid([]byte(s)) {
			return "is not a valid JSON"
		}
		return ""
	}
	if _, err := json.Marshal(value); err != nil {
		return "is not JSON serializable"
	}
	return ""
}

func anyValue(any) string { return "" }
