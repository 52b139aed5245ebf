// Package directory looks up stores and users in the remote directory
// service. Lookups never fail: any problem is logged and reported as absent.
package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/fieldbook/pkg/clients"
	"go.uber.org/zap"
)

type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(address string, client clients.HTTPClientI) *Client {
	return &Client{url: strings.TrimRight(address, "/"), client: client}
}

func (c *Client) Store(ctx context.Context, id string) *Store {
	var s Store
	if !c.fetch(ctx, "/stores/", id, &s) {
		return nil
	}
	return &s
}

func (c *Client) User(ctx context.Context, id string) *User {
	var u User
	if !c.fetch(ctx, "/users/", id, &u) {
		return nil
	}
	return &u
}

func (c *Client) fetch(ctx context.Context, path, id string, dst any) bool {
	if id == "" {
		return false
	}
	statusCode, body, err := c.client.Get(ctx, c.url+path+url.PathEscape(id), nil)
	if err != nil {
		zap.L().Warn("directory lookup failed", zap.String("path", path), zap.String("id", id), zap.Error(err))
		return false
	}
	if statusCode != http.StatusOK {
		if statusCode != http.StatusNotFound {
			zap.L().Warn("unexpected directory status", zap.String("path", path), zap.String("id", id), zap.Int("status", statusCode))
		}
		return false
	}

	// The directory wraps entities in {"data": ...}; bare entities are accepted too.
	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Data) > 0 && string(wrapped.Data) != "null" {
		body = wrapped.Data
	}
	if err := json.Unmarshal(body, dst); err != nil {
		zap.L().Warn("can't decode directory entity", zap.String("path", path), zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}
