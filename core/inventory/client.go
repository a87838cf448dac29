package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dirsync/core/apperr"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

const (
	systemName   = "inventory"
	resourceRoot = "/JSSResource"
	// placeholderID asks the server to assign the real ID on create.
	placeholderID = "0"
	maxErrorBody  = 512
)

// Client wraps the department and building collections of the inventory API.
// Credentials are sent as HTTP basic auth on every request.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	out      io.Writer
	logger   *zap.Logger
}

// NewClient stores the credentials and prepares the HTTP client. No request
// is made until the first call. Progress lines for mutations are written to out.
func NewClient(cfg Config, out io.Writer, l *zap.Logger) *Client {
	if out == nil {
		out = io.Discard
	}
	if l == nil {
		l = zap.NewNop()
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.URL, "/") + resourceRoot,
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Transport: transport},
		out:      out,
		logger:   l,
	}
}

// BaseURL returns the resource root all endpoints hang off.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns the name of every record in col, in document order.
func (c *Client) List(ctx context.Context, col Collection) ([]string, error) {
	endpoint := c.baseURL + "/" + col.Path

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, &apperr.MalformedResponseError{Endpoint: endpoint, Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &apperr.MalformedResponseError{Endpoint: endpoint, Err: fmt.Errorf("no root element")}
	}

	records := root.SelectElements(col.Element)
	names := make([]string, 0, len(records))
	for _, record := range records {
		nameEl := record.SelectElement("name")
		if nameEl == nil {
			c.logger.Warn("Skipping record without name", zap.String("collection", col.Path))
			continue
		}
		names = append(names, nameEl.Text())
	}

	c.logger.Debug("Listed inventory collection", zap.String("collection", col.Path), zap.Int("count", len(names)))

	return names, nil
}

// Create submits a new record named name to col.
// Duplicates are left for the server to accept or reject.
func (c *Client) Create(ctx context.Context, col Collection, name string) error {
	fmt.Fprintf(c.out, "Creating %s: %s\n", col.Element, name)

	payload, err := EncodeRecord(col, name)
	if err != nil {
		return fmt.Errorf("failed to encode %s %q: %w", col.Element, name, err)
	}

	endpoint := c.baseURL + "/" + col.Path + "/id/" + placeholderID
	_, err = c.do(ctx, http.MethodPost, endpoint, payload)
	return err
}

// Delete removes the record named name from col.
func (c *Client) Delete(ctx context.Context, col Collection, name string) error {
	fmt.Fprintf(c.out, "Deleting %s: %s\n", col.Element, name)

	endpoint := c.baseURL + "/" + col.Path + "/name/" + url.PathEscape(name)
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil)
	return err
}

// ListDepartments returns all department names.
func (c *Client) ListDepartments(ctx context.Context) ([]string, error) {
	return c.List(ctx, Departments)
}

// ListBuildings returns all building names.
func (c *Client) ListBuildings(ctx context.Context) ([]string, error) {
	return c.List(ctx, Buildings)
}

// CreateDepartment creates a department.
func (c *Client) CreateDepartment(ctx context.Context, name string) error {
	return c.Create(ctx, Departments, name)
}

// CreateBuilding creates a building.
func (c *Client) CreateBuilding(ctx context.Context, name string) error {
	return c.Create(ctx, Buildings, name)
}

// DeleteDepartment deletes a department by name.
func (c *Client) DeleteDepartment(ctx context.Context, name string) error {
	return c.Delete(ctx, Departments, name)
}

// DeleteBuilding deletes a building by name.
func (c *Client) DeleteBuilding(ctx context.Context, name string) error {
	return c.Delete(ctx, Buildings, name)
}

// EncodeRecord renders <element><name>name</name></element>.
func EncodeRecord(col Collection, name string) ([]byte, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement(col.Element)
	root.CreateElement("name").SetText(name)
	return doc.WriteToBytes()
}

// do sends one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/xml")
	if payload != nil {
		req.Header.Set("Content-Type", "application/xml")
	}

	c.logger.Debug("Inventory request", zap.String("method", method), zap.String("url", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s %s: %w", method, endpoint, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", endpoint, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	if resp.StatusCode == http.StatusUnauthorized && method == http.MethodGet {
		return nil, &apperr.AuthenticationError{System: systemName}
	}

	snippet := strings.TrimSpace(string(body))
	if len(snippet) > maxErrorBody {
		snippet = snippet[:maxErrorBody]
	}

	return nil, &apperr.StatusError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Body:       snippet,
	}
}
