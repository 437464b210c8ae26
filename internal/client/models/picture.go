// Package models holds the client-side view of resources owned by the
// photo-album service.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Picture is owned by the service; the client only reads it.
type Picture struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	FilePath string `json:"filePath"`
}

// UnmarshalJSON accepts the id as a JSON string or a JSON number.
func (p *Picture) UnmarshalJSON(data []byte) error {
	type plain Picture
	var aux struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}

	*p = Picture(aux.plain)
	p.ID = id
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("picture id: %w", err)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("picture id %s: %w", raw, err)
	}
	return n.String(), nil
}

// URL joins baseURL and FilePath with exactly one slash between them.
func (p Picture) URL(baseURL string) string {
	if p.FilePath == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(p.FilePath, "/")
}
