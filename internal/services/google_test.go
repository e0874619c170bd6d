package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rohits-web03/travelstory/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newGoogleStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("GET /userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":             "g-42",
			"email":          "traveller@example.com",
			"verified_email": true,
			"name":           "Traveller",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newStubbedGoogle(srv *httptest.Server) *GoogleOAuth {
	g := NewGoogleOAuth(config.GoogleConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8000/auth/google/callback",
	})
	g.cfg.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	g.userInfoURL = srv.URL + "/userinfo"
	return g
}

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	g := NewGoogleOAuth(config.GoogleConfig{ClientID: "client", ClientSecret: "s", RedirectURL: "http://localhost:8000/cb"})

	u, err := url.Parse(g.AuthCodeURL("state-123"))
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "http://localhost:8000/cb", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "userinfo.email")
}

func TestGoogleOAuth_Profile(t *testing.T) {
	srv := newGoogleStub(t)
	g := newStubbedGoogle(srv)

	profile, err := g.Profile(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, &GoogleProfile{ID: "g-42", Email: "traveller@example.com", VerifiedEmail: true, Name: "Traveller"}, profile)
}

func TestGoogleOAuth_Profile_Errors(t *testing.T) {
	srv := newGoogleStub(t)
	g := newStubbedGoogle(srv)

	_, err := g.Profile(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = g.Profile(context.Background(), "bad-code")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}
