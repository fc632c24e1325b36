package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/cloudx/internal/module"
)

// InitModules registers every module's services, then boots them on the
// root route group. If a module fails to boot, the ones already booted are
// shut down.
func (s *Server) InitModules(ctx context.Context, modules []module.Module) error {
	for _, m := range modules {
		slog.Debug("Registering module", "module", m.Name())
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range modules {
		slog.Debug("Booting module", "module", m.Name())
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			if shutdownErr := s.shutdownModules(ctx); shutdownErr != nil {
				slog.Error("Failed to shut down booted modules", "error", shutdownErr)
			}
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		s.modules = append(s.modules, m)
	}
	return nil
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := s.Cfg.GetAddr()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("shutting down the server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
