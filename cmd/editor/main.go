//go:build js && wasm

// Command editor is the browser side of the conjunx editor. Compiled to
// wasm and loaded by the editor page, it fills #clip-browser with the
// listing served at ./clip.
package main

import (
	"context"
	"log"
	"net/http"
	"syscall/js"

	"github.com/conjunx/editor/internal/controller"
	"github.com/conjunx/editor/internal/display"
	"github.com/conjunx/editor/internal/fetcher"
)

func main() {
	target := display.Lookup(controller.Selector)
	if !target.Found() {
		log.Printf("no %s element on this page", controller.Selector)
	}

	pageURL := js.Global().Get("location").Get("href").String()
	page := controller.New(target, fetcher.NewClip(http.DefaultClient, pageURL))

	if res := <-page.LoadContent(context.Background()); res.Err != nil {
		log.Printf("Failed to load %s: %v", res.Name, res.Err)
	}
}
