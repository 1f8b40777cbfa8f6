package portal

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// CeremonyKind names the portal page that runs a passkey ceremony.
type CeremonyKind string

const (
	CeremonyConnect CeremonyKind = "connect"
	CeremonySign    CeremonyKind = "sign"
)

func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// BuildCeremonyURL returns the portal page the user opens to approve a
// passkey ceremony. extra values are added to the query as is.
func BuildCeremonyURL(portalURL string, kind CeremonyKind, redirectURI, state string, extra url.Values) (string, error) {
	if portalURL == "" {
		return "", errors.New("portal url is required")
	}
	if kind != CeremonyConnect && kind != CeremonySign {
		return "", fmt.Errorf("unknown ceremony %q", kind)
	}
	if redirectURI == "" {
		return "", errors.New("redirect uri is required")
	}
	if state == "" {
		return "", ErrMissingState
	}

	parsed, err := url.Parse(strings.TrimRight(portalURL, "/") + "/" + string(kind))
	if err != nil {
		return "", fmt.Errorf("parse portal url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("portal url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("portal url host is required")
	}

	q := parsed.Query()
	for key, values := range extra {
		for _, value := range values {
			q.Add(key, value)
		}
	}
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}

// challengeFor binds a sign ceremony to the exact relay body it approves.
func challengeFor(instructions []relayInstruction, options relayOptions) (string, error) {
	raw, err := json.Marshal(struct {
		Instructions []relayInstruction `json:"instructions"`
		Options      relayOptions       `json:"transactionOptions"`
	}{instructions, options})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(raw)
	return base64.RawURLEncoding.EncodeToString(sum[:]), nil
}
