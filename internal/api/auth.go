package api

import (
	"context"
	"fmt"
	"net/http"

	"svw.info/slide/internal/domain"
)

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type credentialsResp struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Login exchanges username/password for a bearer token and installs it on
// the client.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Credentials, error) {
	return c.authenticate(ctx, "/api/auth/login", username, password)
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, username, password string) (domain.Credentials, error) {
	return c.authenticate(ctx, "/api/auth/register", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, username, password string) (domain.Credentials, error) {
	var resp credentialsResp
	err := c.doJSON(ctx, http.MethodPost, path, credentialsReq{Username: username, Password: password}, &resp, nil)
	if err != nil {
		return domain.Credentials{}, err
	}
	if resp.Token == "" {
		return domain.Credentials{}, fmt.Errorf("auth response missing token")
	}
	c.token = resp.Token
	return domain.Credentials{Username: resp.Username, Token: resp.Token}, nil
}
