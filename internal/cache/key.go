package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Operations recognised in cache keys.
const (
	OpPage = "page"
	OpCall = "call"
)

// KeyParams identifies one cacheable request.
type KeyParams struct {
	Operation string `json:"op"`
	Endpoint  string `json:"endpoint"`
	Offset    int    `json:"offset,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	CallID    string `json:"call_id,omitempty"`
}

// PageKey returns the key for one page of the call list.
func PageKey(endpoint string, offset, limit int) (string, error) {
	return GenerateKey(KeyParams{Operation: OpPage, Endpoint: endpoint, Offset: offset, Limit: limit})
}

// CallKey returns the key for a single call lookup.
func CallKey(endpoint, id string) (string, error) {
	return GenerateKey(KeyParams{Operation: OpCall, Endpoint: endpoint, CallID: id})
}

// GenerateKey hashes normalized params into a hex key. Operation and
// endpoint are case- and whitespace-insensitive.
func GenerateKey(params KeyParams) (string, error) {
	params.Operation = strings.ToLower(strings.TrimSpace(params.Operation))
	params.Endpoint = strings.TrimRight(strings.TrimSpace(params.Endpoint), "/")
	if params.Operation == "" {
		return "", fmt.Errorf("%w: missing operation", ErrInvalidCacheKey)
	}

	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshalling key params: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
