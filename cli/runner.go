package cli

import (
	"context"
	"github.com/jessevdk/go-flags"
	"io"
	"os"
)

// App binds parsed options to the lazily built service
type App struct {
	ctx     context.Context
	options *Options
	stdout  io.Writer
	stderr  io.Writer
	service *Service
}

func (a *App) Service() (*Service, error) {
	if a.service != nil {
		return a.service, nil
	}
	srv, err := New(a.ctx, a.options, a.stdout, a.stderr)
	if err != nil {
		return nil, err
	}
	a.service = srv
	return srv, nil
}

// Run parses args and executes the selected command
func Run(args []string) error {
	return RunWith(context.Background(), args, os.Stdout, os.Stderr)
}

// RunWith runs with explicit output streams
func RunWith(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	options := &Options{}
	app := &App{ctx: ctx, options: options, stdout: stdout, stderr: stderr}
	options.Login.app = app
	options.Logout.app = app
	options.Status.app = app
	options.Whoami.app = app
	options.Token.app = app
	options.Request.app = app
	options.Score.app = app
	options.Date.app = app

	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}
