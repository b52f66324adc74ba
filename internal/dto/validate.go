package dto

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fadilmartias/job-tracker/internal/util"
)

const DateLayout = "2006-01-02"

const msgRequired = "This field is required."

func requireText(errs *util.FormError, field, value string, max int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, msgRequired)
		return value
	}
	maxLength(errs, field, value, max)
	return value
}

func maxLength(errs *util.FormError, field, value string, max int) {
	if max > 0 && utf8.RuneCountInString(value) > max {
		errs.Add(field, fmt.Sprintf("Ensure this value has at most %d characters.", max))
	}
}

// optionalDate parses a YYYY-MM-DD value; blank input yields nil.
func optionalDate(errs *util.FormError, field, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		errs.Add(field, "Enter a valid date (YYYY-MM-DD).")
		return nil
	}
	return &t
}

func requireDate(errs *util.FormError, field, value string) time.Time {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, msgRequired)
		return time.Time{}
	}
	t := optionalDate(errs, field, value)
	if t == nil {
		return time.Time{}
	}
	return *t
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}
