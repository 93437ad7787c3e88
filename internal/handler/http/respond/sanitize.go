package respond

import (
	"regexp"
)

var (
	// The Anthropic pattern must run before the OpenAI one; both key formats
	// begin with "sk-" and the more specific pattern has to win.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	// The OpenAI pattern must not re-match already masked output, hence the
	// length requirement.
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Basic-auth credentials embedded in fetched URLs (feed URLs sometimes
	// carry them).
	urlCredentialPattern = regexp.MustCompile(`://([^:/@\s]+):([^@/\s]+)@`)
)

// SanitizeError returns the error message with secrets masked.
// API keys and URL-embedded credentials are replaced before the message
// reaches a log line.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = urlCredentialPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
