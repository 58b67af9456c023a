package model

import "time"

// Well-known credential identifiers.
const (
	CredentialGemini  = "gemini-api-key"
	CredentialYouTube = "youtube-api-key"
)

// Credential is an opaque secret stored under a stable identifier. At most one
// Credential exists per ID; saving again overwrites it.
type Credential struct {
	ID       string
	Secret   string
	StoredAt time.Time
}
