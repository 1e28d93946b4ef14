package clientcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	filedepot "github.com/filedepot/filedepot"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client performs operations against a filedepot server.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	cfg = cfg.WithDefaults()

	c := &Client{
		config: &Config{
			Endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		},
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// apiError decodes an error body from the server into a Go error.
func apiError(resp *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, body.Message)
	}
	return fmt.Errorf("server error (%s): %s", body.Error, body.Message)
}

// multipartFile builds a multipart body with a single "file" part.
func multipartFile(localPath, contentType string) (*bytes.Buffer, string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", localPath, err)
	}
	defer func() { _ = f.Close() }()

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(localPath))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(localPath)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create multipart: %w", err)
	}

	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("read %s: %w", localPath, err)
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart: %w", err)
	}

	return &buf, mw.FormDataContentType(), nil
}

func (c *Client) sendFile(ctx context.Context, method, url, localPath, contentType string) (filedepot.FileInfo, error) {
	if localPath == "" {
		return filedepot.FileInfo{}, ErrEmptyPath
	}

	body, bodyType, err := multipartFile(localPath, contentType)
	if err != nil {
		return filedepot.FileInfo{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return filedepot.FileInfo{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", bodyType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return filedepot.FileInfo{}, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return filedepot.FileInfo{}, apiError(resp)
	}

	var info filedepot.FileInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return filedepot.FileInfo{}, fmt.Errorf("decode response: %w", err)
	}

	return info, nil
}

// Upload sends a local file to the server and returns the stored metadata.
// When contentType is empty it is derived from the file extension.
func (c *Client) Upload(ctx context.Context, localPath, contentType string) (filedepot.FileInfo, error) {
	return c.sendFile(ctx, http.MethodPost, c.config.Endpoint+"/api/FileUpload/Upload", localPath, contentType)
}

// Update replaces the stored file with the given ID.
func (c *Client) Update(ctx context.Context, id int64, localPath, contentType string) (filedepot.FileInfo, error) {
	return c.sendFile(ctx, http.MethodPut, fmt.Sprintf("%s/api/FileUpload/%d", c.config.Endpoint, id), localPath, contentType)
}

// Download fetches the stored bytes for the given ID into w and returns
// the content type reported by the server.
func (c *Client) Download(ctx context.Context, id int64, w io.Writer) (string, error) {
	url := fmt.Sprintf("%s/api/FileUpload/%d", c.config.Endpoint, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	return resp.Header.Get("Content-Type"), nil
}

// List fetches metadata for every stored file. An empty depot yields an
// empty slice, not an error, even though the server reports it as 404.
func (c *Client) List(ctx context.Context) ([]filedepot.FileInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.Endpoint+"/api/FileUpload/All", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return []filedepot.FileInfo{}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var items []filedepot.FileInfo
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return items, nil
}

// Delete removes the stored file with the given ID.
func (c *Client) Delete(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/api/FileUpload/%d", c.config.Endpoint, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}

	return nil
}
