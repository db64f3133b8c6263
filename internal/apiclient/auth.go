package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/loganlanou/dealerpost/internal/types"
)

func (c *Client) Register(ctx context.Context, req types.RegisterRequest) (*User, error) {
	var user User
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges an email and password for an access token using the
// form encoded password grant.
func (c *Client) Login(ctx context.Context, email, password string) (*types.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var token types.Token
	err := c.do(ctx, http.MethodPost, "/api/auth/token", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ConnectAmazon(ctx context.Context, req types.AmazonConnection) (*types.Message, error) {
	var resp types.Message
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/connect-amazon", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ConnectTwitter(ctx context.Context, req types.TwitterConnection) (*types.Message, error) {
	var resp types.Message
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/connect-twitter", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ConnectionStatus(ctx context.Context) (*types.ConnectionStatus, error) {
	var resp types.ConnectionStatus
	if err := c.getJSON(ctx, "/api/auth/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
