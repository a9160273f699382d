package domain

import (
	"net/mail"
	"strings"
	"time"
)

// Checker collects field errors in declaration order.
type Checker struct {
	fields []FieldError
}

func (c *Checker) Add(param, msg string) {
	c.fields = append(c.fields, FieldError{Msg: msg, Param: param})
}

// Required records msg when value is blank.
func (c *Checker) Required(param, value, msg string) {
	if strings.TrimSpace(value) == "" {
		c.Add(param, msg)
	}
}

// Email accepts a bare address whose domain has at least two labels.
func (c *Checker) Email(param, value, msg string) {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !dottedDomain(value) {
		c.Add(param, msg)
	}
}

func dottedDomain(addr string) bool {
	host := addr[strings.LastIndex(addr, "@")+1:]
	if strings.HasPrefix(host, "[") {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}

func (c *Checker) MinLen(param, value string, n int, msg string) {
	if len(value) < n {
		c.Add(param, msg)
	}
}

// MaxLen counts bytes, not runes.
func (c *Checker) MaxLen(param, value string, n int, msg string) {
	if len(value) > n {
		c.Add(param, msg)
	}
}

// Err returns nil when nothing was recorded.
func (c *Checker) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return Validation(c.fields)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate accepts RFC3339 timestamps and plain calendar dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
