package navigation

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Printer reports the destination URL instead of opening it.
type Printer struct {
	BaseURL string
	Writer  io.Writer
}

func (p *Printer) Navigate(_ context.Context, path string) error {
	_, err := fmt.Fprintf(p.Writer, "open %v%v\n", strings.TrimRight(p.BaseURL, "/"), path)
	return err
}
