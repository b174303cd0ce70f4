package errors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FormatForUser returns a user-friendly error message.
// If debug is true, details and the underlying cause are included.
func FormatForUser(err error, debug bool) string {
	if err == nil {
		return ""
	}

	ye, ok := err.(*YfoilError)
	if !ok {
		return err.Error()
	}

	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(ye.Message)
	sb.WriteString("\n")

	if ye.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(ye.Suggestion)
		sb.WriteString("\n")
	}

	if debug {
		for _, k := range sortedKeys(ye.Details) {
			sb.WriteString(fmt.Sprintf("\n  %s: %s", k, ye.Details[k]))
		}
		if ye.Cause != nil && ye.Cause.Error() != ye.Message {
			sb.WriteString(fmt.Sprintf("\n  cause: %s", ye.Cause.Error()))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n[%s]", ye.Code))

	return sb.String()
}

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	ye, ok := err.(*YfoilError)
	if !ok {
		ye = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", ye.Message))

	if ye.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", ye.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("  Code: %s\n", ye.Code))

	return sb.String()
}

// jsonError is the JSON representation of an error.
type jsonError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Category   string            `json:"category"`
	Severity   string            `json:"severity"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      string            `json:"cause,omitempty"`
}

// FormatJSON returns a JSON representation of the error.
// Used by `yfoil check --json`.
func FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return json.Marshal(nil)
	}

	ye, ok := err.(*YfoilError)
	if !ok {
		ye = Wrap(ErrCodeInternal, err)
	}

	je := jsonError{
		Code:       ye.Code,
		Message:    ye.Message,
		Category:   string(ye.Category),
		Severity:   string(ye.Severity),
		Details:    ye.Details,
		Suggestion: ye.Suggestion,
	}

	if ye.Cause != nil {
		je.Cause = ye.Cause.Error()
	}

	return json.Marshal(je)
}

// FormatForLog formats an error for structured logging.
// Returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) map[string]any {
	if err == nil {
		return nil
	}

	ye, ok := err.(*YfoilError)
	if !ok {
		return map[string]any{
			"error": err.Error(),
		}
	}

	result := map[string]any{
		"error_code": ye.Code,
		"message":    ye.Message,
		"category":   string(ye.Category),
		"severity":   string(ye.Severity),
	}

	if ye.Cause != nil {
		result["cause"] = ye.Cause.Error()
	}

	if ye.Suggestion != "" {
		result["suggestion"] = ye.Suggestion
	}

	for k, v := range ye.Details {
		result["detail_"+k] = v
	}

	return result
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
