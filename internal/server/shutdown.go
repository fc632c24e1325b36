package server

import (
	"context"
	"errors"
	"log/slog"
)

// Shutdown stops accepting requests and then shuts the modules down in
// reverse boot order. Later calls return the first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		slog.Info("Shutting down server...")
		var errs []error
		if err := s.E.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
		if err := s.shutdownModules(ctx); err != nil {
			errs = append(errs, err)
		}
		s.shutdownErr = errors.Join(errs...)
	})
	return s.shutdownErr
}

// shutdownModules shuts the booted modules down in reverse boot order and
// forgets them.
func (s *Server) shutdownModules(ctx context.Context) error {
	var errs []error
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", s.modules[i].Name(), "error", err)
			errs = append(errs, err)
		}
	}
	s.modules = nil
	return errors.Join(errs...)
}
