// Package redact removes sensitive information from strings before they are
// logged or returned in error responses. It covers the secrets this service
// handles: bearer tokens and JWTs, bcrypt digests, the geocoding API key,
// database connection strings, email addresses and raw SQL.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedHashPlaceholder       = "[REDACTED_HASH]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; token-shaped secrets go first so broader
// patterns never split them.
var rules = []rule{
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		RedactedJWTPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9_\-.~+/]{8,}=*`),
		"Bearer " + RedactionPlaceholder,
	},
	{
		regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`),
		RedactedHashPlaceholder,
	},
	{
		regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
		RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)([?&]key=)[^&\s"']+`),
		"${1}" + RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(postgres|postgresql|db|database)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|jwt[_-]?secret|secret|token)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		RedactedEmailPlaceholder,
	},
	{
		regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[\s\w,*()$.]+\b(FROM|INTO|SET)\b[^;]*`,
		),
		RedactedSQLPlaceholder,
	},
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		"[STACK_TRACE_REDACTED]",
	},
	{
		regexp.MustCompile(`(/[\w.-]+){3,}`),
		RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
