package utils

import "strings"

// MaskSecret mantém apenas os primeiros visible caracteres de um segredo
func MaskSecret(secret string, visible int) string {
	if secret == "" {
		return ""
	}

	if visible <= 0 || len(secret) <= visible {
		return strings.Repeat("*", 3) + "..."
	}

	return secret[:visible] + "..."
}
