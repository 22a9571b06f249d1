//go:build js && wasm

package ui

import "syscall/js"

type domElement struct {
	value js.Value
}

func (e *domElement) AddClass(name string) {
	e.value.Get("classList").Call("add", name)
}

func (e *domElement) RemoveClass(name string) {
	e.value.Get("classList").Call("remove", name)
}

// DOM is the browser document
type DOM struct {
	document js.Value
}

func (d *DOM) ElementByID(id string) (Element, bool) {
	element := d.document.Call("getElementById", id)
	if !element.Truthy() {
		return nil, false
	}
	return &domElement{value: element}, true
}

// OnContentLoaded runs fn on DOMContentLoaded, or right away when the
// document has already been parsed.
func (d *DOM) OnContentLoaded(fn func()) {
	if d.document.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var listener js.Func
	listener = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer listener.Release()
		fn()
		return nil
	})
	d.document.Call("addEventListener", "DOMContentLoaded", listener)
}

func NewDOM() *DOM {
	return &DOM{document: js.Global().Get("document")}
}
