package cli

import (
	"errors"
	"fmt"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
	_ "github.com/viant/scy/kms/blowfish"
	"github.com/viant/sitekit/auth"
	"github.com/viant/sitekit/client"
	"github.com/viant/sitekit/format"
	"github.com/viant/sitekit/notify"
	"github.com/viant/sitekit/transport"
	"io"
	"net/http"
	"strings"
	"time"
)

const secretKey = "blowfish://default"

func (c *LoginCommand) Execute(_ []string) error {
	srv, err := c.app.Service()
	if err != nil {
		return err
	}
	email, password := c.Email, c.Password
	if c.Secret != "" {
		if email, password, err = c.loadSecret(); err != nil {
			return err
		}
	}
	if email == "" || password == "" {
		return errors.New("email and password are required (--email/--password or --secret)")
	}
	if _, err = srv.Client.Login(c.app.ctx, email, password); err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			srv.Notifier.Show("Incorrect email or password", notify.Error)
			return nil
		}
		return err
	}
	srv.Notifier.Show("Logged in as "+email, notify.Success)
	return nil
}

func (c *LoginCommand) loadSecret() (string, string, error) {
	resource := scy.NewResource(&cred.Basic{}, c.Secret, secretKey)
	secret, err := scy.New().Load(c.app.ctx, resource)
	if err != nil {
		return "", "", fmt.Errorf("failed to load secret %v: %w", c.Secret, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return "", "", fmt.Errorf("unsupported secret type %T at %v", secret.Target, c.Secret)
	}
	email := basic.Username
	if c.Email != "" {
		email = c.Email
	}
	return email, basic.Password, nil
}

func (c *LogoutCommand) Execute(_ []string) error {
	srv, err := c.app.Service()
	if err != nil {
		return err
	}
	return srv.Client.Logout(c.app.ctx)
}

func (c *StatusCommand) Execute(_ []string) error {
	srv, err := c.app.Service()
	if err != nil {
		return err
	}
	if srv.Session.IsAuthenticated() {
		_, err = fmt.Fprintln(srv.stdout, "authenticated")
		return err
	}
	_, err = fmt.Fprintln(srv.stdout, "anonymous")
	return err
}

func (c *WhoamiCommand) Execute(_ []string) error {
	srv, err := c.app.Service()
	if err != nil {
		return err
	}
	claims, err := srv.Session.Claims()
	if errors.Is(err, auth.ErrNoToken) {
		srv.Notifier.Show("Not logged in", notify.Warning)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(srv.stdout, "subject: %v\n", claims.Subject)
	fmt.Fprintf(srv.stdout, "email:   %v\n", claims.Email)
	fmt.Fprintf(srv.stdout, "plan:    %v\n", claims.Plan)
	if claims.ExpiresAt != nil {
		fmt.Fprintf(srv.stdout, "expires: %v\n", claims.ExpiresAt.Time.In(time.Local).Format(format.DateLayout))
	}
	return nil
}

func (c *TokenCommand) Execute(_ []string) error {
	srv, err := c.app.Service()
	if err != nil {
		return err
	}
	switch {
	case c.Clear:
		return srv.Session.RemoveToken()
	case c.Set != "":
		return srv.Session.SetToken(c.Set)
	}
	token, ok := srv.Session.Token()
	if !ok {
		srv.Notifier.Show("No access token stored", notify.Info)
		return nil
	}
	_, err = fmt.Fprintln(srv.stdout, token)
	return err
}

func (c *RequestCommand) Execute(_ []string) error {
	srv, err := c.app.Service()
	if err != nil {
		return err
	}
	options := []client.RequestOption{client.WithMethod(strings.ToUpper(c.Method))}
	if c.Data != "" {
		options = append(options, client.WithBody(strings.NewReader(c.Data)))
	}
	for _, header := range c.Headers {
		key, value, ok := strings.Cut(header, ":")
		if !ok {
			return fmt.Errorf("invalid header %q, expected 'Key: Value'", header)
		}
		options = append(options, client.WithHeader(strings.TrimSpace(key), strings.TrimSpace(value)))
	}
	resp, err := srv.Client.Request(c.app.ctx, c.Args.Endpoint, options...)
	if errors.Is(err, transport.ErrUnauthorized) {
		srv.Notifier.Show("Session expired, please log in again", notify.Warning)
		return nil
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		srv.Notifier.Show(resp.Status, notify.Error)
	}
	fmt.Fprintf(srv.stdout, "%v\n", resp.Status)
	_, err = io.Copy(srv.stdout, resp.Body)
	return err
}

func (c *ScoreCommand) Execute(_ []string) error {
	for _, score := range c.Args.Scores {
		value := fmt.Sprintf("%g", score)
		if !c.app.options.NoColor {
			value = format.Colorize(value, score)
		}
		fmt.Fprintf(c.app.stdout, "%v\t%v\t%v\t%v\n", value, format.GradeOf(score), format.ScoreColor(score), format.ScoreBgColor(score))
	}
	return nil
}

func (c *DateCommand) Execute(_ []string) error {
	for _, value := range c.Args.Values {
		fmt.Fprintln(c.app.stdout, format.Date(value))
	}
	return nil
}
