package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obaro89/afridev-backend/internal/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", domain.Validation([]domain.FieldError{{Msg: "Text is required", Param: "text"}}), 400,
			`{"errors":[{"msg":"Text is required","param":"text"}]}`},
		{"conflict", domain.ErrEmailConflict, 400, `{"errors":[{"msg":"User already exist"}]}`},
		{"credentials", domain.ErrInvalidCredentials, 400, `{"errors":[{"msg":"Invalid Credentials"}]}`},
		{"no token", domain.ErrUnauthenticated, 401, `{"msg":"No token, authorization denied"}`},
		{"bad token", domain.ErrInvalidToken, 401, `{"msg":"Token is not valid"}`},
		{"not owner", domain.ErrUnauthorized, 401, `{"msg":"User not authorized"}`},
		{"post", domain.ErrPostNotFound, 404, `{"msg":"Post not found"}`},
		{"comment", domain.ErrCommentNotFound, 404, `{"msg":"Comment does not exist"}`},
		{"own profile", domain.ErrProfileNotFound, 400, `{"msg":"User does not have a profile"}`},
		{"public profile", domain.ErrProfileMissing, 400, `{"msg":"Profile not found"}`},
		{"experience", domain.ErrExperienceNotFound, 400, `{"msg":"Experience not found"}`},
		{"wrapped", fmt.Errorf("lookup: %w", domain.ErrPostNotFound), 404, `{"msg":"Post not found"}`},
		{"github", domain.ErrGitHubNotFound, 404, `{"msg":"No Github profile found"}`},
		{"untagged", errors.New("pq: connection refused"), 500, `{"msg":"Server Error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteError_HidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret dsn leaked"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, rec.Body.String(), "dsn")
}
