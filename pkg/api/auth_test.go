package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderAuthenticator(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		wantID   string
		wantName string
	}{
		{
			name:     "no headers is anonymous",
			headers:  map[string]string{},
			wantID:   "",
			wantName: "",
		},
		{
			name: "X-Forwarded-User takes priority",
			headers: map[string]string{
				"X-Forwarded-User": "alice",
				"X-User-Id":        "someone-else",
			},
			wantID:   "alice",
			wantName: "alice",
		},
		{
			name: "X-User-Id used when proxy headers absent",
			headers: map[string]string{
				"X-User-Id": "bob",
			},
			wantID:   "bob",
			wantName: "bob",
		},
		{
			name: "X-Forwarded-Name sets the display name",
			headers: map[string]string{
				"X-Forwarded-User": "alice",
				"X-Forwarded-Name": "Alice Chen",
			},
			wantID:   "alice",
			wantName: "Alice Chen",
		},
		{
			name: "X-User-Name used when proxy name absent",
			headers: map[string]string{
				"X-User-Id":   "bob",
				"X-User-Name": "Bob Singh",
			},
			wantID:   "bob",
			wantName: "Bob Singh",
		},
		{
			name: "name headers alone do not authenticate",
			headers: map[string]string{
				"X-Forwarded-Name": "Ghost",
			},
			wantID:   "",
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			userID, userName, err := HeaderAuthenticator{}.Authenticate(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, userID)
			assert.Equal(t, tt.wantName, userName)
		})
	}
}
