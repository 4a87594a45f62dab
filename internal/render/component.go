package render

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// Component adapts node trees to templ so pages and fragments can be served
// with templ.Handler
func Component(nodes ...*html.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := html.Render(w, n); err != nil {
				return fmt.Errorf("render component: %w", err)
			}
		}
		return nil
	})
}
