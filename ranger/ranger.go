package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// NOTE: loads a .env file, if present, before any env var is read
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/http/middleware"
	"github.com/xy-planning-network/reqarg/http/router"
	"github.com/xy-planning-network/reqarg/logger"
)

// A Ranger manages the web server and the components it routes requests with.
type Ranger struct {
	*router.Router

	ctx context.Context
	env reqarg.Environment
	l   logger.Logger
	mws []middleware.Adapter
	srv *http.Server
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	rng := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(rng)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", reqarg.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	rng.Router = router.New(rng.env, middleware.LogRequest(rng.l))
	rng.OnEveryRequest(
		middleware.ForceHTTPS(rng.env),
		middleware.InjectIPAddress(),
		middleware.RequestID(),
	)
	rng.OnEveryRequest(rng.mws...)
	rng.srv.Handler = rng.Router

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", reqarg.ErrBadConfig, err)
		}
	}

	rng.l.Debug(fmt.Sprintf("configured %s server for %s", rng.env, rng.srv.Addr), nil)

	return rng, nil
}

// Env returns the environment the *Ranger runs in.
func (rng *Ranger) Env() reqarg.Environment { return rng.env }

// Logger returns the logger.Logger the *Ranger logs with.
func (rng *Ranger) Logger() logger.Logger { return rng.l }

// Guide begins the web server.
//
// These, and [*Ranger.Shutdown], stop Guide:
//   - cancelling the context.Context set by WithContext
//   - os.Interrupt
//   - syscall.SIGHUP
//   - syscall.SIGQUIT
//   - syscall.SIGTERM
func (rng *Ranger) Guide() error {
	ctx, stop := signal.NotifyContext(rng.ctx, os.Interrupt, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		rng.l.Info(fmt.Sprintf("running web server at %s", rng.srv.Addr), nil)
		if err := rng.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			rng.l.Error(err.Error(), nil)
			return err
		}
		return nil

	case <-ctx.Done():
		return rng.Shutdown()
	}
}

// Shutdown gracefully shuts down the web server.
func (rng *Ranger) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	rng.l.Info("shutting down web server", nil)
	if err := rng.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	rng.l.Info("web server shutdown successfully", nil)
	return nil
}
