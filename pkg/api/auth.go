package api

import (
	"net/http"
)

// Authenticator resolves the caller identity from an HTTP request.
// An empty userID means the caller is anonymous; endpoints decide whether
// that is acceptable.
type Authenticator interface {
	Authenticate(r *http.Request) (userID, userName string, err error)
}

// HeaderAuthenticator trusts identity headers set by the auth proxy in
// front of the server.
// Priority: X-Forwarded-User (oauth2-proxy) > X-User-Id (direct clients).
// Display name: X-Forwarded-Name > X-User-Name > the user id itself.
type HeaderAuthenticator struct{}

func (HeaderAuthenticator) Authenticate(r *http.Request) (string, string, error) {
	userID := r.Header.Get("X-Forwarded-User")
	if userID == "" {
		userID = r.Header.Get("X-User-Id")
	}
	if userID == "" {
		return "", "", nil
	}

	userName := r.Header.Get("X-Forwarded-Name")
	if userName == "" {
		userName = r.Header.Get("X-User-Name")
	}
	if userName == "" {
		userName = userID
	}
	return userID, userName, nil
}
