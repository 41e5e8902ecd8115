// Package gate guards protected console screens behind a session role.
//
// Each time a protected screen is mounted a fresh Mount is created. It starts
// in StatusChecking, consults the session exactly once on Activate, and ends
// in StatusAuthorized or StatusDenied for the rest of its life. A denied mount
// navigates once to the safe destination and renders nothing; the placeholder
// is the only thing ever drawn before the verdict.
package gate

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/nftconsole/internal/client/session"
)

type Status int

const (
	StatusChecking Status = iota
	StatusAuthorized
	StatusDenied
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusAuthorized:
		return "authorized"
	case StatusDenied:
		return "denied"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

const DefaultSafeDestination = "home"

var ErrUnsafeDestination = errors.New("safe destination is protected")

// Sessions is the read side of the session store.
type Sessions interface {
	Current(ctx context.Context) (session.Record, bool)
}

// Navigator moves the host to another destination.
type Navigator interface {
	Navigate(ctx context.Context, destination string)
}

type NavigatorFunc func(ctx context.Context, destination string)

func (f NavigatorFunc) Navigate(ctx context.Context, destination string) { f(ctx, destination) }

// Content draws the protected screen.
type Content func(ctx context.Context) error

type Gate struct {
	sessions    Sessions
	role        string
	nav         Navigator
	safe        string
	protected   []string
	placeholder func(ctx context.Context)
}

type Option func(*Gate)

// WithSafeDestination sets where denied mounts are sent.
func WithSafeDestination(dest string) Option {
	return func(g *Gate) { g.safe = dest }
}

// WithProtected lists the destinations this gate guards. The safe
// destination may not be one of them.
func WithProtected(dests ...string) Option {
	return func(g *Gate) { g.protected = append(g.protected, dests...) }
}

// WithPlaceholder sets what is drawn while a mount is checking.
func WithPlaceholder(fn func(ctx context.Context)) Option {
	return func(g *Gate) { g.placeholder = fn }
}

func New(sessions Sessions, requiredRole string, nav Navigator, opts ...Option) (*Gate, error) {
	g := &Gate{
		sessions:    sessions,
		role:        requiredRole,
		nav:         nav,
		safe:        DefaultSafeDestination,
		placeholder: func(context.Context) {},
	}
	for _, opt := range opts {
		opt(g)
	}

	if sessions == nil || nav == nil {
		return nil, errors.New("gate: sessions and navigator are required")
	}
	if requiredRole == "" {
		return nil, errors.New("gate: required role is empty")
	}
	if g.safe == "" || slices.Contains(g.protected, g.safe) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafeDestination, g.safe)
	}
	return g, nil
}

func (g *Gate) RequiredRole() string { return g.role }

func (g *Gate) SafeDestination() string { return g.safe }

// Mount starts a new guarded view in StatusChecking.
func (g *Gate) Mount() *Mount {
	return &Mount{gate: g, status: StatusChecking}
}

// Guard mounts content: placeholder, one check, then either the content or
// a single redirect. It returns the verdict and any error from content.
func (g *Gate) Guard(ctx context.Context, content Content) (Status, error) {
	m := g.Mount()
	if err := m.Render(ctx, content); err != nil {
		return m.Status(), err
	}
	m.Activate(ctx)
	return m.Status(), m.Render(ctx, content)
}

// Mount is one activation of a gate. It is not safe for concurrent use.
type Mount struct {
	gate   *Gate
	status Status
}

func (m *Mount) Status() Status { return m.status }

// Activate decides the verdict. Only the first call reads the session;
// later calls return the settled status.
func (m *Mount) Activate(ctx context.Context) Status {
	if m.status != StatusChecking {
		return m.status
	}

	rec, ok := m.gate.sessions.Current(ctx)
	if ok && rec.HasRole(m.gate.role) {
		m.status = StatusAuthorized
		return m.status
	}

	m.status = StatusDenied
	m.gate.nav.Navigate(ctx, m.gate.safe)
	return m.status
}

// Render draws whatever the current status allows.
func (m *Mount) Render(ctx context.Context, content Content) error {
	switch m.status {
	case StatusChecking:
		m.gate.placeholder(ctx)
		return nil
	case StatusAuthorized:
		return content(ctx)
	default:
		return nil
	}
}
