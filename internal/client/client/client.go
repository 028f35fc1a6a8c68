package client

import (
	"context"
)

// Client is the console's view of the NauticalFlow backend.
type Client interface {
	Request(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error)
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token to attach; "" means none is stored.
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// SessionTerminator ends the session after the backend rejected token.
// *session.Controller implements it.
type SessionTerminator interface {
	Terminate(ctx context.Context, token string) error
}
