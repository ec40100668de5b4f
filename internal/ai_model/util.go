package ai_model

import (
	"fmt"
	"os"
	"strings"
)

// ReadApiKey reads the API credential from a plain-text file. Surrounding
// whitespace is dropped; a blank file is an error.
func ReadApiKey(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read api key %s: %w", path, err)
	}
	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", fmt.Errorf("api key file %s is empty", path)
	}
	return key, nil
}
