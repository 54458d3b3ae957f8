package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-profile-server/internal/config"
	fakeprofilerepo "github.com/jrsteele09/go-profile-server/profiles/repofake"
	"github.com/jrsteele09/go-profile-server/server"
	"github.com/jrsteele09/go-profile-server/storage/postgres"
	fakeuserrepo "github.com/jrsteele09/go-profile-server/users/repofake"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server. With DATABASE_URL set, profiles and users are
kept in PostgreSQL and pending migrations are applied first. Without it an
in-memory store is used.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	c := config.New()
	if err := config.Validate(c); err != nil {
		return err
	}

	repos, closeStore, err := openRepos(ctx, c)
	if err != nil {
		return err
	}
	defer closeStore()

	handler, err := server.New(c, repos)
	if err != nil {
		return err
	}

	displayAppname(c.GetAppName())
	srv := &http.Server{
		Addr:              c.GetPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listenAndServe(srv)
	}()

	select {
	case err := <-errCh:
		return err
	case <-waitForStopSignal():
	}
	if err := shutdown(srv, c.GetShutdownTimeout()); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// openRepos selects the store. An empty DATABASE_URL means the in-memory fakes.
func openRepos(ctx context.Context, c config.Config) (server.Repos, func(), error) {
	if c.GetDatabaseURL() == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
		return server.Repos{
			Users:    fakeuserrepo.NewFakeUserRepo(),
			Profiles: fakeprofilerepo.NewFakeProfileRepo(),
		}, func() {}, nil
	}

	store, err := postgres.Open(ctx, c.GetDatabaseURL(), c.GetDBConnectTimeout())
	if err != nil {
		return server.Repos{}, nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return server.Repos{}, nil, err
	}
	return server.Repos{
		Users:    store.Users,
		Profiles: store.Profiles,
		Ping:     store.Ping,
	}, store.Close, nil
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
