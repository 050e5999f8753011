package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quantum/internal/ports"
	"quantum/internal/shared"
	"quantum/internal/types"
)

// DefaultRegistryURL is the official quantum package registry.
const DefaultRegistryURL = "https://registry.silverbitcoin.org"

const (
	registryUserAgent      = "quantum-cli"
	defaultRegistryTimeout = 30 * time.Second
)

// RegistryHTTPAdapter talks to a quantum package registry over HTTP.
type RegistryHTTPAdapter struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewRegistryHTTPAdapter creates a registry client. An empty baseURL
// selects the official registry; token may be empty for anonymous
// access.
func NewRegistryHTTPAdapter(baseURL string, token string) RegistryHTTPAdapter {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = DefaultRegistryURL
	}
	return RegistryHTTPAdapter{
		BaseURL: strings.TrimRight(base, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: defaultRegistryTimeout},
	}
}

func (a RegistryHTTPAdapter) Download(ctx context.Context, name string, version string) ([]byte, error) {
	downloadURL := fmt.Sprintf("%s/api/v1/packages/%s/%s/download",
		a.BaseURL, url.PathEscape(name), url.PathEscape(version))
	resp, err := a.do(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, shared.FetchErr(fmt.Sprintf("failed to download %s v%s", name, version), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, shared.NotFoundErr(fmt.Sprintf("package not found: %s v%s", name, version), nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, shared.FetchErr(fmt.Sprintf("failed to download %s v%s", name, version),
			shared.HTTPStatusError(resp.StatusCode, downloadURL))
	}
	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, shared.FetchErr(fmt.Sprintf("failed to download %s v%s", name, version), err)
	}
	return archive, nil
}

type publishRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	License     string `json:"license,omitempty"`
	Repository  string `json:"repository,omitempty"`
	ArchiveData string `json:"archive_data"`
}

func (a RegistryHTTPAdapter) Publish(ctx context.Context, submission types.PublishSubmission) error {
	payload := publishRequest{
		Name:        submission.Name,
		Version:     submission.Version,
		Description: submission.Description,
		License:     submission.License,
		Repository:  submission.Repository,
		ArchiveData: base64.StdEncoding.EncodeToString(submission.Archive),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return shared.FetchErr("failed to encode publish request", err)
	}
	publishURL := a.BaseURL + "/api/v1/packages/publish"
	resp, err := a.do(ctx, http.MethodPost, publishURL, bytes.NewReader(body))
	if err != nil {
		return shared.FetchErr("failed to send publish request", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return shared.FetchErr("registry rejected publish",
			shared.HTTPStatusErrorWithBody(resp.StatusCode, publishURL, strings.TrimSpace(string(text))))
	}
	return nil
}

type searchResponse struct {
	Packages []types.PackageInfo `json:"packages"`
}

func (a RegistryHTTPAdapter) Search(ctx context.Context, query string) ([]types.PackageInfo, error) {
	searchURL := a.BaseURL + "/api/v1/packages/search?q=" + url.QueryEscape(query)
	resp, err := a.do(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, shared.FetchErr("search request failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, shared.FetchErr("search request failed",
			shared.HTTPStatusError(resp.StatusCode, searchURL))
	}
	var results searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, shared.ParseErr("search response", err)
	}
	return results.Packages, nil
}

func (a RegistryHTTPAdapter) do(ctx context.Context, method string, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", registryUserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}
	return a.Client.Do(req)
}

var _ ports.RegistryPort = RegistryHTTPAdapter{}
