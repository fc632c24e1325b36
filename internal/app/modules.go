package app

import (
	"time"

	"github.com/nfrund/cloudx/internal/module"
	"github.com/nfrund/cloudx/internal/modules/landing"
)

// Dependencies holds what the application's modules need beyond the shared
// services published in the server registry.
type Dependencies struct {
	Now func() time.Time
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		landing.New(landing.Dependencies{Now: deps.Now}),
	}
}
