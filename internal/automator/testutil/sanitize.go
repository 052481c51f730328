package testutil

import (
	"net/url"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var (
	// 16 digits, optionally grouped by four with dashes or spaces.
	cardNumberPattern = regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)
	phonePattern      = regexp.MustCompile(`\b380\d{9}\b`)

	// Form/JSON keys whose values are always redacted.
	sensitiveKeyPattern = regexp.MustCompile(`(?i)(cvv|cvc|card|pan|phone|exp|token|session|auth|csrf|secret|password)`)
	jsonFieldPattern    = regexp.MustCompile(`"([^"]+)"\s*:\s*("[^"]*"|[^,}\]\s]+)`)
)

// SensitiveHeaders are redacted on requests and responses.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-csrf-token":  true,
	"x-xsrf-token":  true,
}

// SanitizeHAR returns a copy of har with card numbers, CVV codes, phone
// numbers and session material replaced by [REDACTED].
func SanitizeHAR(har *HARLog) *HARLog {
	out := &HARLog{Entries: make([]HAREntry, len(har.Entries))}
	for i, entry := range har.Entries {
		req := entry.Request
		req.URL = sanitizeURL(req.URL)
		req.Headers = sanitizeHeaders(req.Headers)
		if req.PostData != nil {
			req.PostData = &HARPostData{MimeType: req.PostData.MimeType, Text: SanitizeText(req.PostData.Text)}
		}

		resp := entry.Response
		resp.Headers = sanitizeHeaders(resp.Headers)
		if resp.Content.Encoding != "base64" {
			resp.Content.Text = SanitizeText(resp.Content.Text)
		}

		out.Entries[i] = HAREntry{Request: req, Response: resp}
	}
	return out
}

// SanitizeText redacts sensitive values in a form-encoded, JSON or free-text
// body.
func SanitizeText(body string) string {
	if body == "" {
		return body
	}

	trimmed := strings.TrimSpace(body)
	switch {
	case strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "["):
		body = jsonFieldPattern.ReplaceAllStringFunc(body, func(field string) string {
			key := jsonFieldPattern.FindStringSubmatch(field)[1]
			if sensitiveKeyPattern.MatchString(key) {
				return `"` + key + `": "` + redacted + `"`
			}
			return field
		})
	case strings.Contains(body, "=") && !strings.ContainsAny(trimmed, " <"):
		if values, err := url.ParseQuery(body); err == nil {
			for key := range values {
				if sensitiveKeyPattern.MatchString(key) {
					values.Set(key, redacted)
				}
			}
			body = values.Encode()
		}
	}

	body = cardNumberPattern.ReplaceAllString(body, redacted)
	return phonePattern.ReplaceAllString(body, redacted)
}

func sanitizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.RawQuery == "" {
		return rawURL
	}

	query := parsed.Query()
	for key := range query {
		if sensitiveKeyPattern.MatchString(key) {
			query.Set(key, redacted)
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func sanitizeHeaders(headers []HARHeader) []HARHeader {
	out := make([]HARHeader, len(headers))
	for i, h := range headers {
		if SensitiveHeaders[strings.ToLower(h.Name)] {
			h.Value = redacted
		}
		out[i] = h
	}
	return out
}
