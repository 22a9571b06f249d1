package navigation

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestRecorder(t *testing.T) {
	recorder := NewRecorder()
	assert.Empty(t, recorder.History())

	require.NoError(t, recorder.Navigate(context.Background(), LoginPath))
	require.NoError(t, recorder.Navigate(context.Background(), RootPath))
	assert.Equal(t, []string{"/login", "/"}, recorder.History())
}

func TestBrowser_Navigate(t *testing.T) {
	var opened string
	browser := &Browser{
		BaseURL: "https://analyzer.example.com/",
		Open: func(URL string) error {
			opened = URL
			return nil
		},
	}
	require.NoError(t, browser.Navigate(context.Background(), LoginPath))
	assert.Equal(t, "https://analyzer.example.com/login", opened)

	browser.Open = func(string) error { return errors.New("no display") }
	assert.Error(t, browser.Navigate(context.Background(), RootPath))
}

func TestPrinter_Navigate(t *testing.T) {
	buffer := &strings.Builder{}
	printer := &Printer{BaseURL: "http://localhost:8000/", Writer: buffer}
	require.NoError(t, printer.Navigate(context.Background(), LoginPath))
	assert.Equal(t, "open http://localhost:8000/login\n", buffer.String())
}
