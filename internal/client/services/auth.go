// Package services contains application services for the marketplace console.
// This file defines the authentication service: register, login, logout and
// the current user lookup, all backed by the session store.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nftconsole/internal/client/client"
	"github.com/dmitrijs2005/nftconsole/internal/client/models"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account and start a session for it.
//   - Login: authenticate and persist the returned session record.
//   - Logout: drop the persisted session.
//   - CurrentUser: read the persisted session, if any.
type AuthService interface {
	Register(ctx context.Context, in models.Registration) (session.Record, error)
	Login(ctx context.Context, in models.Credentials) (session.Record, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (session.Record, bool)
}

type authService struct {
	client   client.Client
	sessions *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and session store.
func NewAuthService(client client.Client, sessions *session.Store) AuthService {
	return &authService{client: client, sessions: sessions}
}

func (a *authService) Register(ctx context.Context, in models.Registration) (session.Record, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return session.Record{}, ErrMissingCredentials
	}
	rec, err := a.client.Register(ctx, in)
	if err != nil {
		return session.Record{}, fmt.Errorf("register error: %w", err)
	}
	if err := a.sessions.Save(ctx, rec); err != nil {
		return session.Record{}, fmt.Errorf("session saving error: %w", err)
	}
	return rec, nil
}

func (a *authService) Login(ctx context.Context, in models.Credentials) (session.Record, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return session.Record{}, ErrMissingCredentials
	}
	rec, err := a.client.Login(ctx, in)
	if err != nil {
		return session.Record{}, fmt.Errorf("login error: %w", err)
	}
	if err := a.sessions.Save(ctx, rec); err != nil {
		return session.Record{}, fmt.Errorf("session saving error: %w", err)
	}
	return rec, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.sessions.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (session.Record, bool) {
	return a.sessions.Current(ctx)
}
