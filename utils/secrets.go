package utils

import (
	"fmt"

	"github.com/sethvargo/go-password/password"
)

// GenerateSecret returns a random 48 character secret suitable for signing session tokens.
func GenerateSecret() (string, error) {
	secret, err := password.Generate(48, 10, 0, false, true)
	if err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return secret, nil
}
