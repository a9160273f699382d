package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/obaro89/afridev-backend/internal/config"
	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/observability"
)

const maxGitHubBody = 1 << 20

// GitHubClient lists a user's most recent public repositories.
type GitHubClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewGitHubClient(cfg *config.Config) *GitHubClient {
	return &GitHubClient{
		baseURL: strings.TrimRight(cfg.GitHubAPIURL, "/"),
		token:   cfg.GitHubToken,
		http: &http.Client{
			Timeout:   cfg.GitHubTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Repos returns the upstream JSON body unchanged. Every failure collapses to
// domain.ErrGitHubNotFound; the cause is logged.
func (c *GitHubClient) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	body, err := c.fetch(ctx, username)
	if err != nil {
		observability.GitHubLookupsTotal.WithLabelValues("error").Inc()
		observability.GetLogger(ctx).Warn("github lookup failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, domain.ErrGitHubNotFound
	}
	observability.GitHubLookupsTotal.WithLabelValues("ok").Inc()
	return body, nil
}

func (c *GitHubClient) fetch(ctx context.Context, username string) (json.RawMessage, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("empty username")
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "afridev-backend")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGitHubBody))
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("upstream body is not json")
	}
	return body, nil
}
