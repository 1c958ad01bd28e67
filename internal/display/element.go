//go:build js && wasm

package display

import "syscall/js"

// Element is a Target backed by a DOM element. The zero Element, and one
// returned by Lookup for a selector with no match, wraps null; writing to it
// does nothing.
type Element struct {
	v js.Value
}

// Lookup finds the first element matching selector in the current document.
func Lookup(selector string) Element {
	doc := js.Global().Get("document")
	return Element{v: doc.Call("querySelector", selector)}
}

// Found reports whether the element exists.
func (e Element) Found() bool {
	return e.v.Truthy()
}

// SetText replaces the element's content with text, which the browser
// renders literally.
func (e Element) SetText(text string) {
	if !e.v.Truthy() {
		return
	}
	e.v.Set("innerText", text)
}
