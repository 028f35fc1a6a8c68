// Package services contains the application services of the console.
// This file defines the authentication service: login, logout, session
// status and the one-shot logout notice.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nauticalflow/internal/client/client"
	"github.com/dmitrijs2005/nauticalflow/internal/client/session"
	"github.com/dmitrijs2005/nauticalflow/internal/client/token"
	"github.com/dmitrijs2005/nauticalflow/internal/common"
)

// ExpiredNotice is shown on the first login prompt after the session ran out.
const ExpiredNotice = "Your session has expired. Please log in again."

// ErrEmptyCredentials is returned when username or password is blank.
var ErrEmptyCredentials = errors.New("username and password are required")

// Status describes the current session for the whoami command.
type Status struct {
	LoggedIn    bool
	DisplayName string
	// ExpiresAt is zero when the token carries no readable exp.
	ExpiresAt time.Time
}

// SessionEnder ends the current session. *session.Controller implements it.
type SessionEnder interface {
	Logout(ctx context.Context, reason session.LogoutReason) error
}

// AuthService defines authentication operations for the console.
//
// Contract:
//   - Login: exchange credentials for a token and persist the session.
//   - Logout: end the session explicitly, no reason recorded.
//   - Status: report who is logged in and until when.
//   - TakeNotice: the message explaining the last logout, at most once.
//   - Ping: check backend liveness.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (role string, err error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (Status, error)
	TakeNotice(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Store
	ender  SessionEnder
}

func NewAuthService(c client.Client, store session.Store, ender SessionEnder) AuthService {
	return &authService{client: c, store: store, ender: ender}
}

// Login wipes password before returning. The display name stored with
// the token is the username.
func (a *authService) Login(ctx context.Context, username string, password []byte) (string, error) {
	defer common.WipeByteArray(password)

	if username == "" || len(password) == 0 {
		return "", ErrEmptyCredentials
	}

	res, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	if err := a.store.SetSession(ctx, res.Token, username); err != nil {
		return "", fmt.Errorf("session saving error: %w", err)
	}
	return res.Role, nil
}

// Logout always returns an error matching session.ErrSessionTerminated.
func (a *authService) Logout(ctx context.Context) error {
	return a.ender.Logout(ctx, session.ReasonNone)
}

func (a *authService) Status(ctx context.Context) (Status, error) {
	tok, err := a.store.GetToken(ctx)
	if err != nil {
		return Status{}, err
	}
	if tok == "" {
		return Status{}, nil
	}

	name, err := a.store.GetDisplayName(ctx)
	if err != nil {
		return Status{}, err
	}
	st := Status{LoggedIn: true, DisplayName: name}
	if exp, err := token.ExpiresAt(tok); err == nil {
		st.ExpiresAt = exp
	}
	return st, nil
}

func (a *authService) TakeNotice(ctx context.Context) (string, error) {
	reason, err := a.store.TakeLogoutReason(ctx)
	if err != nil {
		return "", err
	}
	switch reason {
	case session.ReasonExpired:
		return ExpiredNotice, nil
	default:
		return "", nil
	}
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
