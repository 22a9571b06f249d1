package notify

import (
	"fmt"
	"github.com/viant/sitekit/format"
	"github.com/viant/sitekit/internal/collection"
	"io"
	"sync"
)

// MemoryBody keeps displayed notifications in memory
type MemoryBody struct {
	children *collection.SyncMap[string, *Notification]
}

func (b *MemoryBody) Append(notification *Notification) {
	b.children.Put(notification.ID, notification)
}

func (b *MemoryBody) Remove(notification *Notification) {
	b.children.Delete(notification.ID)
}

// Children returns displayed notifications in append order
func (b *MemoryBody) Children() []*Notification {
	return b.children.Values()
}

func NewMemoryBody() *MemoryBody {
	return &MemoryBody{children: collection.NewSyncMap[string, *Notification]()}
}

var kindColors = map[Kind]string{
	Info:    format.Cyan,
	Success: format.Green,
	Warning: format.Yellow,
	Error:   format.Red,
}

// Writer prints each notification as one line. Printed lines cannot be taken
// back, so Remove is a no-op.
type Writer struct {
	mu     sync.Mutex
	writer io.Writer
	color  bool
}

func (w *Writer) Append(notification *Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.color {
		_, _ = fmt.Fprintf(w.writer, "[%v] %v\n", notification.Kind, notification.Text)
		return
	}
	color, ok := kindColors[notification.Kind]
	if !ok {
		color = format.Gray
	}
	_, _ = fmt.Fprintf(w.writer, "%v[%v]%v %v\n", color, notification.Kind, format.ResetColor, notification.Text)
}

func (w *Writer) Remove(*Notification) {}

func NewWriter(writer io.Writer, color bool) *Writer {
	return &Writer{writer: writer, color: color}
}
