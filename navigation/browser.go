package navigation

import (
	"context"
	"fmt"
	"github.com/pkg/browser"
	"strings"
)

// Browser opens application paths in the system browser.
type Browser struct {
	BaseURL string
	// Open launches URL; defaults to browser.OpenURL.
	Open func(URL string) error
}

func (b *Browser) Navigate(_ context.Context, path string) error {
	URL := strings.TrimRight(b.BaseURL, "/") + path
	open := b.Open
	if open == nil {
		open = browser.OpenURL
	}
	if err := open(URL); err != nil {
		return fmt.Errorf("failed to open browser for %v: %w", URL, err)
	}
	return nil
}

func NewBrowser(baseURL string) *Browser {
	return &Browser{BaseURL: baseURL}
}
