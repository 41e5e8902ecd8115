package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/nftconsole/internal/client/config"
	"github.com/dmitrijs2005/nftconsole/internal/client/gate"
	"github.com/dmitrijs2005/nftconsole/internal/client/services"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
	"github.com/dmitrijs2005/nftconsole/internal/logging"
)

// Console destinations. The admin ones are guarded.
const (
	destHome    = gate.DefaultSafeDestination
	destListing = "listing"
	destAdmin   = "admin"
	destCreate  = "create"
	destEdit    = "edit"
	destDelete  = "delete"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	listings services.ListingService
	sessions *session.Store
	admin    *gate.Gate
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	location string
}

func NewApp(
	c *config.Config,
	auth services.AuthService,
	listings services.ListingService,
	sessions *session.Store,
	log logging.Logger,
	in io.Reader,
	out io.Writer,
) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}
	a := &App{
		config:   c,
		auth:     auth,
		listings: listings,
		sessions: sessions,
		log:      log.With("component", "cli"),
		reader:   bufio.NewReader(in),
		out:      out,
		location: destHome,
	}

	g, err := gate.New(sessions, session.RoleAdmin, a,
		gate.WithSafeDestination(destHome),
		gate.WithProtected(destAdmin, destCreate, destEdit, destDelete),
		gate.WithPlaceholder(func(context.Context) { fmt.Fprintln(a.out, "Checking access...") }),
	)
	if err != nil {
		return nil, fmt.Errorf("init admin gate: %w", err)
	}
	a.admin = g
	return a, nil
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "NFT marketplace console, API %s (type 'help' for commands)\n", a.config.APIBaseURL)
	if rec, ok := a.sessions.Current(ctx); ok {
		fmt.Fprintf(a.out, "Welcome back, %s\n", displayName(rec))
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// Navigate moves the console to dest. The gate calls it when it turns a
// user away from an admin screen.
func (a *App) Navigate(ctx context.Context, dest string) {
	from := a.location
	a.location = dest
	a.log.Info(ctx, "navigated", "from", from, "to", dest)
	if dest == destHome && from != destHome {
		fmt.Fprintf(a.out, "Access denied: the %s screen needs the %s role. Back to %s.\n",
			from, a.admin.RequiredRole(), dest)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.sessions.Current(ctx)
	return ok
}

func (a *App) isAdmin(ctx context.Context) bool {
	rec, ok := a.sessions.Current(ctx)
	return ok && rec.HasRole(session.RoleAdmin)
}

func displayName(rec session.Record) string {
	if rec.Username != "" {
		return rec.Username
	}
	return rec.Email
}

func (a *App) status(ctx context.Context) string {
	who := "guest"
	if rec, ok := a.sessions.Current(ctx); ok {
		who = fmt.Sprintf("%s(%s)", displayName(rec), rec.Role)
	}
	return fmt.Sprintf("%s@%s", who, a.location)
}

// guarded mounts an admin screen behind the gate.
func (a *App) guarded(ctx context.Context, dest string, content gate.Content) error {
	a.location = dest
	st, err := a.admin.Guard(ctx, content)
	a.log.Debug(ctx, "guarded screen", "screen", dest, "status", st.String())
	return err
}
