package validate

import (
	"net/url"
	"strings"

	"github.com/supchaser/media_queue/internal/utils/errs"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

// ValidateURL accepts absolute http(s) URLs with a host.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errs.ErrInvalidURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errs.ErrInvalidURL
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] || u.Host == "" {
		return errs.ErrInvalidURL
	}

	return nil
}

// ValidateFormatSelection requires a format id unless only audio is wanted.
func ValidateFormatSelection(formatID string, audioOnly bool) error {
	if audioOnly {
		return nil
	}
	if strings.TrimSpace(formatID) == "" {
		return errs.ErrFormatRequired
	}
	return nil
}
