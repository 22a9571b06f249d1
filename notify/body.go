//go:build js && wasm

package notify

import (
	"github.com/viant/sitekit/internal/collection"
	"syscall/js"
)

// Body appends notifications to document.body as div elements.
type Body struct {
	document js.Value
	elements *collection.SyncMap[string, js.Value]
}

func (b *Body) Append(notification *Notification) {
	element := b.document.Call("createElement", "div")
	element.Set("className", notification.Class)
	element.Set("textContent", notification.Text)
	b.document.Get("body").Call("appendChild", element)
	b.elements.Put(notification.ID, element)
}

func (b *Body) Remove(notification *Notification) {
	element, ok := b.elements.Get(notification.ID)
	if !ok {
		return
	}
	b.elements.Delete(notification.ID)
	element.Call("remove")
}

func NewBody() *Body {
	return &Body{
		document: js.Global().Get("document"),
		elements: collection.NewSyncMap[string, js.Value](),
	}
}
