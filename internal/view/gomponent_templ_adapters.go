// Package view bridges the two component models used by the page: gomponents
// nodes for markup and templ components for escaping-sensitive output such as
// JSON-LD.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// TemplNode renders a templ.Component inside a gomponents tree. Gomponents
// carries no context, so Ctx defaults to context.Background.
type TemplNode struct {
	Component templ.Component
	Ctx       context.Context
}

func (n TemplNode) Render(w io.Writer) error {
	ctx := n.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return n.Component.Render(ctx, w)
}

// AdaptTemplToGomponent exposes a templ.Component as a gomponents node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return TemplNode{Component: component}
}
