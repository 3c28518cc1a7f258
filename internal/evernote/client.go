// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evernote is a minimal JSON-over-HTTP client for the Evernote
// note store: list and create notebooks, create notes, and identify the
// account a developer token belongs to. The chat-to-note flow lives in
// SaveChat, which converts a transcript to ENML and submits it.
package evernote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/chatnote/internal/enml"
	"github.com/pdiddy/chatnote/internal/httputil"
	"github.com/pdiddy/chatnote/internal/transcript"
	"github.com/pdiddy/chatnote/pkg/types"
)

// Service base URLs. Declared as vars so tests can substitute an httptest
// server.
var (
	productionBaseURL = "https://www.evernote.com/api/v1"
	sandboxBaseURL    = "https://sandbox.evernote.com/api/v1"
)

const defaultTimeout = 30 * time.Second

// Client talks to one Evernote environment with one developer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	userAgent  string
	maxRetries int

	mu        sync.Mutex
	notebooks []types.Notebook // nil until the first ListNotebooks
}

// New returns a Client for the environment selected by cfg.Sandbox.
func New(cfg types.EvernoteConfig) *Client {
	base := productionBaseURL
	if cfg.Sandbox {
		base = sandboxBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    base,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
	}
}

// ListNotebooks returns all notebooks in the account. The result is cached
// on the client; CreateNotebook invalidates the cache.
func (c *Client) ListNotebooks(ctx context.Context) ([]types.Notebook, error) {
	c.mu.Lock()
	cached := c.notebooks
	c.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	var notebooks []types.Notebook
	if err := c.do(ctx, http.MethodGet, "/notebooks", nil, &notebooks); err != nil {
		return nil, fmt.Errorf("listing notebooks: %w", err)
	}
	if notebooks == nil {
		notebooks = []types.Notebook{}
	}

	c.mu.Lock()
	c.notebooks = notebooks
	c.mu.Unlock()
	return notebooks, nil
}

// CreateNotebook creates a notebook with the given name and returns it.
func (c *Client) CreateNotebook(ctx context.Context, name string) (types.Notebook, error) {
	payload := types.Notebook{Name: name}
	var created types.Notebook
	if err := c.do(ctx, http.MethodPost, "/notebooks", payload, &created); err != nil {
		return types.Notebook{}, fmt.Errorf("creating notebook %q: %w", name, err)
	}

	c.mu.Lock()
	c.notebooks = nil
	c.mu.Unlock()
	return created, nil
}

// ResolveNotebook returns the GUID of the notebook with the given name,
// matched case-insensitively. An empty name resolves to the empty GUID,
// which the service treats as the account's default notebook. A name with
// no match creates the notebook.
func (c *Client) ResolveNotebook(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", nil
	}

	notebooks, err := c.ListNotebooks(ctx)
	if err != nil {
		return "", err
	}
	for _, nb := range notebooks {
		if strings.EqualFold(nb.Name, name) {
			return nb.GUID, nil
		}
	}

	created, err := c.CreateNotebook(ctx, name)
	if err != nil {
		return "", err
	}
	return created.GUID, nil
}

// CreateNote submits a note and returns the created note with its GUID set.
func (c *Client) CreateNote(ctx context.Context, note types.Note) (types.Note, error) {
	var created types.Note
	if err := c.do(ctx, http.MethodPost, "/notes", note, &created); err != nil {
		return types.Note{}, fmt.Errorf("creating note: %w", err)
	}
	return created, nil
}

// GetUser returns the account the client's token belongs to.
func (c *Client) GetUser(ctx context.Context) (types.User, error) {
	var user types.User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return types.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

// SaveRequest describes one chat-to-note save.
type SaveRequest struct {
	// Content is the raw chat transcript. Must not be empty.
	Content string
	// Title is the note title; empty means auto-generated.
	Title string
	// Notebook is the target notebook name; empty means the default notebook.
	Notebook string
	// Tags are applied to the created note.
	Tags []string
}

// SaveChat converts a chat transcript to ENML and creates a note from it,
// resolving (or creating) the target notebook first. It returns the GUID of
// the created note.
func (c *Client) SaveChat(ctx context.Context, req SaveRequest) (string, error) {
	if transcript.IsEmpty(req.Content) {
		return "", fmt.Errorf("chat content cannot be empty")
	}

	title := req.Title
	if title == "" {
		title = transcript.DefaultTitle(time.Now())
	}

	notebookGUID, err := c.ResolveNotebook(ctx, req.Notebook)
	if err != nil {
		return "", err
	}

	note := types.Note{
		Title:        title,
		Content:      enml.Document(req.Content),
		NotebookGUID: notebookGUID,
		TagNames:     req.Tags,
	}

	created, err := c.CreateNote(ctx, note)
	if err != nil {
		return "", err
	}
	return created.GUID, nil
}

// do executes one authenticated JSON request against the note store.
// payload and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.Do(ctx, c.httpClient, req, c.maxRetries)
	if err != nil {
		return fmt.Errorf("evernote API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("parsing evernote response: %w", err)
		}
	}
	return nil
}

// apiError turns a non-2xx response into an error, preferring the service's
// own error message when the body carries one.
func apiError(resp *http.Response) error {
	var svc struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(data, &svc); err == nil && svc.Message != "" {
		return fmt.Errorf("evernote API returned HTTP %d: %s", resp.StatusCode, svc.Message)
	}
	return fmt.Errorf("evernote API returned HTTP %d", resp.StatusCode)
}
