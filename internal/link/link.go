// Package link checks and normalises the URLs that get encoded.
package link

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// MaxLength caps the accepted URL length.
const MaxLength = 4096

var (
	ErrEmpty       = errors.New("URL parameter is required")
	ErrInvalid     = errors.New("invalid URL")
	ErrScheme      = errors.New("only http and https URLs are supported")
	ErrHost        = errors.New("URL must include a valid host")
	ErrTooLong     = errors.New("URL is too long")
	ErrMissingPart = errors.New("did you include https:// ?")
)

// Normalize validates s for QR generation from a web form. A missing scheme
// defaults to https. It returns the cleaned absolute URL.
func Normalize(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", ErrEmpty
	}
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	return check(v)
}

// Validate is the strict form used by the command line: the scheme must be
// given explicitly.
func Validate(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", ErrEmpty
	}
	if !strings.Contains(v, "://") {
		return "", fmt.Errorf("%w: %s (%w)", ErrInvalid, v, ErrMissingPart)
	}
	return check(v)
}

func check(v string) (string, error) {
	if len(v) > MaxLength {
		return "", ErrTooLong
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrScheme
	}
	if u.Hostname() == "" {
		return "", ErrHost
	}
	return u.String(), nil
}
