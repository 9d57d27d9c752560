package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/slog"

	"cloudvault/internal/app/client/config"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "CloudVault-Client/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, email, password string) (*RegisterResult, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/register", body)
	if err != nil {
		return nil, err
	}

	var out RegisterResult
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return nil, err
	}

	var out AuthResult
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	h.token = out.Token
	return &out, nil
}

func (h *httpClient) PhoneLogin(ctx context.Context, idToken, phoneNumber string) (*AuthResult, error) {
	body := map[string]string{"idToken": idToken, "phoneNumber": phoneNumber}
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/phone-login", body)
	if err != nil {
		return nil, err
	}

	var out AuthResult
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	h.token = out.Token
	return &out, nil
}

func (h *httpClient) UpdateProfile(ctx context.Context, displayName string) (*User, error) {
	body := map[string]string{"displayName": displayName}
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/profile", body)
	if err != nil {
		return nil, err
	}

	var out struct {
		User User `json:"user"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (h *httpClient) ListFiles(ctx context.Context) (*FileList, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/files", nil)
	if err != nil {
		return nil, err
	}

	var out FileList
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadFile streams a local file as the multipart "file" field.
func (h *httpClient) UploadFile(ctx context.Context, path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/api/files/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	h.setCommonHeaders(req)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	var out struct {
		Message string `json:"message"`
		File    File   `json:"file"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.File, nil
}

// DownloadFile writes the file body to dst and returns bytes written.
func (h *httpClient) DownloadFile(ctx context.Context, id, dst string) (int64, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/files/download/"+id, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, h.errorFromResponse(resp)
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", dst, err)
	}
	return n, nil
}

func (h *httpClient) DeleteFile(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/files/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListNotes(ctx context.Context) (*NoteList, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, err
	}

	var out NoteList
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	body := map[string]string{"title": title, "content": content}
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/notes", body)
	if err != nil {
		return nil, err
	}

	var out struct {
		Message string `json:"message"`
		Note    Note   `json:"note"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.Note, nil
}

func (h *httpClient) UpdateNote(ctx context.Context, id, title, content string) (*Note, error) {
	body := map[string]string{"title": title, "content": content}
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/notes/"+id, body)
	if err != nil {
		return nil, err
	}

	var out struct {
		Message string `json:"message"`
		Note    Note   `json:"note"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.Note, nil
}

func (h *httpClient) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/notes/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListTexts(ctx context.Context) (*TextList, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/texts", nil)
	if err != nil {
		return nil, err
	}

	var out TextList
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) CreateText(ctx context.Context, title, content string) (*Text, error) {
	body := map[string]string{"title": title, "content": content}
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/texts", body)
	if err != nil {
		return nil, err
	}

	var out struct {
		Message string `json:"message"`
		Text    Text   `json:"text"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out.Text, nil
}

func (h *httpClient) DeleteText(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/texts/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) StorageStats(ctx context.Context) (*StorageStats, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/storage/stats", nil)
	if err != nil {
		return nil, err
	}

	var out StorageStats
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) Analytics(ctx context.Context) (*Analytics, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/analytics", nil)
	if err != nil {
		return nil, err
	}

	var out Analytics
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	h.setCommonHeaders(req)

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (h *httpClient) setCommonHeaders(req *http.Request) {
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
}

func (h *httpClient) parseResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return h.errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse digs the human message out of the error body. The
// API emits either an RFC 9457 problem document or a bare {"error": ...}
// from the auth middleware.
func (h *httpClient) errorFromResponse(resp *http.Response) error {
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var problem struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &problem); err == nil {
		switch {
		case problem.Detail != "":
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, problem.Detail)
		case problem.Error != "":
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, problem.Error)
		case problem.Title != "":
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, problem.Title)
		}
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
