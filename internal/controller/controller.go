// Package controller loads the clip listing into the editor page.
package controller

import (
	"context"
	"log"

	"github.com/conjunx/editor/internal/display"
	"github.com/conjunx/editor/internal/fetcher"
)

// Selector identifies the element that shows the clip listing.
const Selector = "#clip-browser"

// Result holds the outcome of one LoadContent call.
type Result struct {
	Name string
	Text string
	Err  error
}

// PageController fetches remote text and writes it into a display target.
type PageController struct {
	target  display.Target
	fetcher fetcher.Fetcher
}

// New binds a controller to target. The target is held, not owned; a nil
// target behaves like a missing page element. f must not be nil.
func New(target display.Target, f fetcher.Fetcher) *PageController {
	if f == nil {
		panic("controller: nil fetcher")
	}
	if target == nil {
		target = display.Discard
	}
	return &PageController{target: target, fetcher: f}
}

// LoadContent starts one fetch and returns immediately. When the fetch
// succeeds its body replaces the target's text; on failure the target is
// left as it was. Either way the outcome is sent on the returned channel,
// which is then closed.
//
// Concurrent calls are independent requests and the last one to complete
// determines what the target shows.
func (c *PageController) LoadContent(ctx context.Context) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		defer close(done)
		name := c.fetcher.Name()
		log.Printf("Fetching %s...", name)
		text, err := c.fetcher.Fetch(ctx)
		if err != nil {
			log.Printf("Error fetching %s: %v", name, err)
		} else {
			c.target.SetText(text)
			log.Printf("Fetched %s successfully", name)
		}
		done <- Result{Name: name, Text: text, Err: err}
	}()
	return done
}
