package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obaro89/afridev-backend/internal/config"
	"github.com/obaro89/afridev-backend/internal/domain"
)

func newGitHubClient(url string) *GitHubClient {
	return NewGitHubClient(&config.Config{
		GitHubAPIURL:  url,
		GitHubToken:   "gh-token",
		GitHubTimeout: time.Second,
	})
}

func TestGitHubClient_Repos(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"repo1"}]`))
	}))
	defer srv.Close()

	body, err := newGitHubClient(srv.URL+"/").Repos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"repo1"}]`, string(body))

	require.NotNil(t, got)
	assert.Equal(t, "/users/octocat/repos", got.URL.Path)
	assert.Equal(t, "5", got.URL.Query().Get("per_page"))
	assert.Equal(t, "created:asc", got.URL.Query().Get("sort"))
	assert.Equal(t, "token gh-token", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get("User-Agent"))
}

func TestGitHubClient_FailuresCollapseToNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream 404", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) }},
		{"upstream 500", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"not json", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("<html>")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newGitHubClient(srv.URL).Repos(context.Background(), "octocat")
			assert.ErrorIs(t, err, domain.ErrGitHubNotFound)
		})
	}

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := newGitHubClient(url).Repos(context.Background(), "octocat")
		assert.ErrorIs(t, err, domain.ErrGitHubNotFound)
	})

	t.Run("blank username", func(t *testing.T) {
		_, err := newGitHubClient("http://127.0.0.1:1").Repos(context.Background(), " ")
		assert.ErrorIs(t, err, domain.ErrGitHubNotFound)
	})
}
