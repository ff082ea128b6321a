package utils

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PrettyJSON reindenta um texto JSON; devolve false se o texto não for JSON válido
func PrettyJSON(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return text, false
	}

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(trimmed), "", "  "); err != nil {
		return text, false
	}

	return out.String(), true
}
