package auth

import (
	"net/http"
)

// Credentials attaches authentication headers to outgoing requests.
type Credentials interface {
	Apply(header http.Header)
}

// TokenCredentials sends a scoped API token as a Bearer credential.
type TokenCredentials struct {
	Token string
}

// Apply implements Credentials.
func (c *TokenCredentials) Apply(header http.Header) {
	header.Set("Authorization", "Bearer "+c.Token)
}

// KeyCredentials sends the legacy global API key with its account email.
type KeyCredentials struct {
	Key   string
	Email string
}

// Apply implements Credentials.
func (c *KeyCredentials) Apply(header http.Header) {
	header.Set("X-Auth-Key", c.Key)
	header.Set("X-Auth-Email", c.Email)
}
