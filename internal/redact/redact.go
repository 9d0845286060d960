// Package redact scrubs statements before they reach log output.
package redact

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/straja-ai/doubt/internal/textnorm"
)

// DefaultExcerptRunes is how much of a statement is kept in log fields.
const DefaultExcerptRunes = 120

var (
	bearerRe      = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._\-+/=]+)`)
	apiKeyValueRe = regexp.MustCompile(`(?i)(api[_-]?key(?:s)?\s*[:=]\s*)([A-Za-z0-9._\-+/=]+)`)
	tokenishKeyRe = regexp.MustCompile(`(?i)\b(password|passwd|secret|key|token)\s*[:=]\s*([^\s,;]{4,})`)
	emailRe       = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	longTokenRe   = regexp.MustCompile(`\b[A-Za-z0-9_\-]{32,}\b`)
	urlRe         = regexp.MustCompile(`https?://[^\s"'<>]+`)
)

// String redacts credentials, e-mail addresses and URL paths from free-form text.
func String(s string) string {
	if s == "" {
		return s
	}

	out := s
	out = bearerRe.ReplaceAllString(out, "${1}[REDACTED]")
	out = apiKeyValueRe.ReplaceAllString(out, "${1}[REDACTED]")
	out = tokenishKeyRe.ReplaceAllStringFunc(out, func(m string) string {
		if strings.Contains(m, "[REDACTED]") {
			return m
		}
		matches := tokenishKeyRe.FindStringSubmatch(m)
		if len(matches) < 3 {
			return m
		}
		return matches[1] + "=[REDACTED]"
	})
	out = urlRe.ReplaceAllStringFunc(out, redactURL)
	out = emailRe.ReplaceAllString(out, "[REDACTED_EMAIL]")
	out = longTokenRe.ReplaceAllString(out, "[REDACTED_TOKEN]")
	for strings.Contains(out, "[REDACTED][REDACTED]") {
		out = strings.ReplaceAll(out, "[REDACTED][REDACTED]", "[REDACTED]")
	}
	return out
}

// Excerpt redacts s and cuts it to at most n runes, marking the cut.
func Excerpt(s string, n int) string {
	if n <= 0 {
		n = DefaultExcerptRunes
	}
	safe := String(s)
	cut := textnorm.Truncate(safe, n)
	if cut == safe {
		return safe
	}
	return cut + "…"
}

// Sprintf formats like fmt.Sprintf and redacts the result.
func Sprintf(format string, args ...any) string {
	return String(fmt.Sprintf(format, args...))
}

func redactURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "[REDACTED_URL]"
	}
	if u.Path == "" || u.Path == "/" {
		return fmt.Sprintf("%s://%s", u.Scheme, u.Host)
	}
	return fmt.Sprintf("%s://%s/[REDACTED_PATH]", u.Scheme, u.Host)
}
