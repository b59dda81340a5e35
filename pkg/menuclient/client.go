// Package menuclient is a Go client for the family kitchen API together with
// a client-side store that mirrors the server's menu.
package menuclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Client talks to one server and keeps its session cookie in a jar.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient uses a copy of hc. A jar is added when hc has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		c.http = &cp
	}
}

// New builds a client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}
	return c, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type userData struct {
	User User `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	var out userData
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Guest(ctx context.Context, displayName string) (*User, error) {
	var out userData
	if err := c.doJSON(ctx, http.MethodPost, "/auth/guest", map[string]string{"display_name": displayName}, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out userData
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateDisplayName(ctx context.Context, name string) (*User, error) {
	var out userData
	if err := c.doJSON(ctx, http.MethodPut, "/users/me", map[string]string{"display_name": name}, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ListDishes(ctx context.Context) ([]Dish, error) {
	var out []Dish
	if err := c.doJSON(ctx, http.MethodGet, "/dishes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDish(ctx context.Context, id int64) (*Dish, error) {
	var out Dish
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/dishes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDish(ctx context.Context, in NewDish) (*Dish, error) {
	var out Dish
	if err := c.doJSON(ctx, http.MethodPost, "/dishes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDish(ctx context.Context, id int64, patch DishPatch) (*Dish, error) {
	var out Dish
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/dishes/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDish(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/dishes/%d", id), nil, nil)
}

func (c *Client) ToggleSelection(ctx context.Context, dishID int64) (bool, error) {
	var out struct {
		Selected bool `json:"selected"`
	}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/dishes/%d/selections", dishID), nil, &out); err != nil {
		return false, err
	}
	return out.Selected, nil
}

func (c *Client) AddComment(ctx context.Context, dishID int64, text string) (*Comment, error) {
	var out Comment
	path := fmt.Sprintf("/dishes/%d/comments", dishID)
	if err := c.doJSON(ctx, http.MethodPost, path, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EditComment(ctx context.Context, dishID, commentID int64, text string) (*Comment, error) {
	var out Comment
	path := fmt.Sprintf("/dishes/%d/comments/%d", dishID, commentID)
	if err := c.doJSON(ctx, http.MethodPut, path, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteComment(ctx context.Context, dishID, commentID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/dishes/%d/comments/%d", dishID, commentID), nil, nil)
}

func (c *Client) ToggleCommentLike(ctx context.Context, dishID, commentID int64) (*LikeResult, error) {
	var out LikeResult
	path := fmt.Sprintf("/dishes/%d/comments/%d/like", dishID, commentID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ingredients(ctx context.Context) ([]Ingredient, error) {
	var out []Ingredient
	if err := c.doJSON(ctx, http.MethodGet, "/ingredients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddIngredient(ctx context.Context, name string) (*Ingredient, error) {
	var out Ingredient
	if err := c.doJSON(ctx, http.MethodPost, "/ingredients", map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteIngredient(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/ingredients/%d", id), nil, nil)
}

// Upload sends r as the multipart field "file".
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*Upload, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out Upload
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
