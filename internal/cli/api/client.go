package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client — HTTP-клиент серверного API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New создаёт клиента. token может быть пустым (анонимные запросы).
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// DTO ответов сервера.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Material struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type Item struct {
	ID            int64   `json:"id"`
	MaterialID    int64   `json:"material_id"`
	ProductTypeID int64   `json:"product_type_id"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	PDFPath       *string `json:"pdf_path"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type materialPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type itemPayload struct {
	MaterialID    int64   `json:"material_id"`
	ProductTypeID int64   `json:"product_type_id"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
}

// do выполняет запрос с JSON-телом и разбирает JSON-ответ.
// Не-2xx ответы превращаются в ошибку с текстом из поля detail.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var d struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &d) == nil && d.Detail != "" {
			return fmt.Errorf("server: %s", d.Detail)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/auth/register", credentials{Username: username, Password: password}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var t Token
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Username: username, Password: password}, &t); err != nil {
		return "", err
	}
	return t.AccessToken, nil
}

// Logout отзывает сессию. Токен передаётся query-параметром — так устроен API.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout?token="+url.QueryEscape(token), nil, nil)
}

func (c *Client) ListMaterials(ctx context.Context) ([]Material, error) {
	var ms []Material
	if err := c.do(ctx, http.MethodGet, "/materials/", nil, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (c *Client) CreateMaterial(ctx context.Context, name string, description *string) (*Material, error) {
	var m Material
	if err := c.do(ctx, http.MethodPost, "/materials/", materialPayload{Name: name, Description: description}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) CreateItem(ctx context.Context, materialID, productTypeID int64, width, height float64) (*Item, error) {
	var it Item
	payload := itemPayload{MaterialID: materialID, ProductTypeID: productTypeID, Width: width, Height: height}
	if err := c.do(ctx, http.MethodPost, "/items/", payload, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (*Item, error) {
	var it Item
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, &it); err != nil {
		return nil, err
	}
	return &it, nil
}
