package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/nftconsole/internal/client/cli"
	"github.com/dmitrijs2005/nftconsole/internal/client/client"
	"github.com/dmitrijs2005/nftconsole/internal/client/config"
	"github.com/dmitrijs2005/nftconsole/internal/client/repositories/filestore"
	"github.com/dmitrijs2005/nftconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nftconsole/internal/client/services"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
	"github.com/dmitrijs2005/nftconsole/internal/client/transport"
	"github.com/dmitrijs2005/nftconsole/internal/filex"
	"github.com/dmitrijs2005/nftconsole/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	log := logging.New(stderr, cfg.LogLevel)

	medium, closeMedium, err := openMedium(ctx, cfg)
	if err != nil {
		// the console still works without persistence, sessions just
		// do not survive a restart
		log.Error(ctx, "session storage unavailable", "backend", cfg.SessionBackend, "error", err)
	}
	defer closeMedium()

	sessions := session.NewStore(medium, log)

	tr, err := transport.New(cfg.APIBaseURL,
		transport.WithTimeout(cfg.RequestTimeout),
		transport.WithLogger(log),
	)
	if err != nil {
		log.Error(ctx, "invalid api address", "error", err)
		return 1
	}
	api := client.NewHTTPClient(tr, sessions)

	app, err := cli.NewApp(cfg,
		services.NewAuthService(api, sessions),
		services.NewListingService(api),
		sessions,
		log,
		stdin,
		stdout,
	)
	if err != nil {
		log.Error(ctx, "init console", "error", err)
		return 1
	}

	app.Run(ctx)
	return 0
}

// openMedium returns the session medium selected by config. On error the
// medium is nil and the returned closer is still safe to call.
func openMedium(ctx context.Context, cfg *config.Config) (session.Medium, func(), error) {
	noop := func() {}

	switch cfg.SessionBackend {
	case config.BackendFile:
		return filestore.New(cfg.SessionDir), noop, nil
	default:
		if _, err := filex.EnsureParentDir(cfg.DataPath); err != nil {
			return nil, noop, err
		}
		db, err := client.InitDatabase(ctx, cfg.DataPath)
		if err != nil {
			return nil, noop, err
		}
		return metadata.NewStore(db), func() { _ = db.Close() }, nil
	}
}
