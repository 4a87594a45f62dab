package render

import (
	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/dom"
)

// Loading renders the placeholder shown while a fetch is in flight
func Loading(message string) *html.Node {
	return dom.El("div", dom.Class("loading"), dom.Children(
		dom.El("i", dom.Class("fas", "fa-spinner", "fa-spin")),
		dom.El("p", dom.Text(message)),
	))
}

// ErrorPanel renders a failed fetch with a retry control for the container
func ErrorPanel(message, container string) *html.Node {
	return dom.El("div", dom.Class("error-message"), dom.Children(
		dom.El("i", dom.Class("fas", "fa-exclamation-triangle")),
		dom.El("p", dom.Text(message)),
		dom.El("button",
			dom.Attr("type", "button"),
			dom.Class("retry-btn"),
			dom.Attr("data-action", "retry"),
			dom.Attr("data-container", container),
			dom.Text("Retry"),
		),
	))
}

// NoData renders an empty-state message
func NoData(message string) *html.Node {
	return dom.El("div", dom.Class("no-data"), dom.Text(message))
}
