package gemini

import (
	"encoding/json"
	"strings"
)

// DefaultSummary is returned whenever a structured response cannot be parsed.
const DefaultSummary = "Analysis completed."

// StructuredAnalysis is the shape models are asked to return when the caller
// wants machine-readable output instead of freeform text.
type StructuredAnalysis struct {
	Summary         string   `json:"summary"`
	Trends          []string `json:"trends"`
	Recommendations []string `json:"recommendations"`
}

// ParseStructured extracts a StructuredAnalysis from raw model output.
// Models wrap JSON in code fences or stray prose often enough that the raw
// text cannot be fed to json.Unmarshal directly: the first balanced {...}
// substring is extracted before parsing. Any failure yields a safe default
// rather than an error, so callers never fail a request on malformed output.
func ParseStructured(raw string) StructuredAnalysis {
	fallback := StructuredAnalysis{
		Summary:         DefaultSummary,
		Trends:          []string{},
		Recommendations: []string{},
	}

	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	jsonStr := extractBalancedObject(cleaned)
	if jsonStr == "" {
		return fallback
	}

	var parsed StructuredAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return fallback
	}

	if parsed.Summary == "" {
		parsed.Summary = DefaultSummary
	}
	if parsed.Trends == nil {
		parsed.Trends = []string{}
	}
	if parsed.Recommendations == nil {
		parsed.Recommendations = []string{}
	}

	return parsed
}

// extractBalancedObject returns the first balanced {...} substring of s,
// or "" if none exists. Braces inside JSON strings are skipped.
func extractBalancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
