package registry

import (
	"github.com/nfrund/cloudx/internal/content"
	"github.com/nfrund/cloudx/internal/rendering"
	"github.com/nfrund/cloudx/internal/reveal"
)

// Shared services. Using typed keys prevents typos and type mismatches.
var (
	ContentStoreKey = Key[*content.Store]("content.store")
	RendererKey     = Key[rendering.Renderer]("core.renderer")
	ObserverKey     = Key[reveal.Observer]("landing.observer")
)
