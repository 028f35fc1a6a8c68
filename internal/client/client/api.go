package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is what the backend returns for valid credentials.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login exchanges credentials for a bearer token. It does not store the
// token; see services.AuthService.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	resp, err := c.Request(ctx, loginEndpoint, RequestOptions{
		Method:   http.MethodPost,
		Body:     loginRequest{Username: username, Password: password},
		SkipAuth: true,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var res LoginResult
	if err := resp.Decode(&res); err != nil || res.Token == "" {
		return LoginResult{}, &RequestError{Status: resp.Status, Message: "login response carried no token", Err: ErrProtocol}
	}
	return res, nil
}

// Ping checks that the backend answers at all.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.Request(ctx, pingEndpoint, RequestOptions{SkipAuth: true})
	return err
}
