package api

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{
		Email:    email,
		Password: password,
	}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Signup creates an account and returns its first token.
func (c *Client) Signup(ctx context.Context, email, password, userName string) (string, error) {
	var resp TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", nil, signupRequest{
		Email:    email,
		Password: password,
		UserName: userName,
	}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// RefreshToken exchanges the current token for a fresh one.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var resp TokenResponse
	if err := c.do(ctx, http.MethodGet, "/auth/refresh", nil, nil, &resp, true); err != nil {
		return "", err
	}
	return resp.Token, nil
}
