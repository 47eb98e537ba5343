package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Property is a signed profile property, e.g. the "textures" skin
// blob, as returned by the session-verify collaborator.
type Property struct {
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Signature *string `json:"signature,omitempty"`
}

// GameProfile is the signed profile exchanged for a (name, session
// hash) pair by the external session-verify collaborator.
type GameProfile struct {
	UUID       uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

const sessionServerURL = "https://sessionserver.mojang.com/session/minecraft/hasJoined"

// SessionVerifier exchanges a (username, session hash) pair for a
// signed profile. The default implementation is an HTTPS GET against
// the vendor session server; tests substitute a stub.
type SessionVerifier interface {
	Verify(name, hash string) (*GameProfile, error)
}

// HTTPSessionVerifier is the default SessionVerifier, a thin black-box
// collaborator over net/http per §6 — this spec names no domain
// dependency for ad hoc HTTPS calls, and every pack repo that makes one
// reaches for net/http directly.
type HTTPSessionVerifier struct {
	Client *http.Client
}

// NewHTTPSessionVerifier returns a verifier using http.DefaultClient.
func NewHTTPSessionVerifier() *HTTPSessionVerifier {
	return &HTTPSessionVerifier{Client: http.DefaultClient}
}

// Verify performs the session-server GET and decodes its profile body.
func (v *HTTPSessionVerifier) Verify(name, hash string) (*GameProfile, error) {
	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	q := url.Values{"username": {name}, "serverId": {hash}}
	resp, err := client.Get(sessionServerURL + "?" + q.Encode())
	if err != nil {
		return nil, &Error{Kind: FailedRequest, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: FailedRequest, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var profile GameProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, &Error{Kind: MalformedJson, Err: err}
	}
	return &profile, nil
}
