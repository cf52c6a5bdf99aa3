package labfolder

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"golang.org/x/term"
)

// PasswordPromptFunc supplies the login secret. The client zeroes the
// returned buffer as soon as the login request has been sent, so
// implementations must hand over a buffer they do not reuse.
type PasswordPromptFunc func() ([]byte, error)

// readPassword is swapped out in tests.
var readPassword = term.ReadPassword

// TerminalPasswordPrompt reads a password from the controlling terminal
// without echoing it. It is the default prompt for New.
func TerminalPasswordPrompt() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password from terminal: %w", err)
	}
	return password, nil
}

// StaticPassword returns a prompt that hands out a copy of the given secret.
// Use it to feed a password from the environment in non-interactive runs.
func StaticPassword(password string) PasswordPromptFunc {
	return func() ([]byte, error) {
		return []byte(password), nil
	}
}

// wipe zeroes a secret buffer in place.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

type loginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates as username, obtaining the password from the client's
// prompt. On success the session holds a bearer token and the user's
// profile; the password is discarded and never kept in session state.
func (c *Client) Login(ctx context.Context, username string) error {
	if c.me != nil {
		return ErrAlreadyLoggedIn
	}
	password, err := c.prompt()
	if err != nil {
		return fmt.Errorf("labfolder: obtaining password: %w", err)
	}
	return c.login(ctx, username, password)
}

// LoginWithPassword authenticates with a caller-supplied password buffer.
// The buffer is zeroed before LoginWithPassword returns.
func (c *Client) LoginWithPassword(ctx context.Context, username string, password []byte) error {
	if c.me != nil {
		wipe(password)
		return ErrAlreadyLoggedIn
	}
	return c.login(ctx, username, password)
}

func (c *Client) login(ctx context.Context, username string, password []byte) error {
	creds := loginRequest{
		User:     username,
		Password: string(password),
	}
	wipe(password)

	var res loginResponse
	err := c.do(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   creds,
		status: http.StatusOK,
		noAuth: true,
	}, &res)
	if err != nil {
		return err
	}

	c.token = res.Token
	c.userAgent = fmt.Sprintf("LabFolderApi; %s", username)

	me, err := c.fetchProfile(ctx)
	if err != nil {
		c.token = ""
		c.userAgent = ""
		return err
	}
	c.me = &me

	c.logger.Info("logged in", "user", me.String())
	return nil
}

// fetchProfile loads the authenticated user's profile. The expanded response
// wraps the user in an envelope whose outer id is not a group-membership id,
// so only the inner user is kept.
func (c *Client) fetchProfile(ctx context.Context) (User, error) {
	var payload userPayload
	err := c.do(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/me",
		query:  url.Values{"expand": {"user"}},
		status: http.StatusOK,
	}, &payload)
	if err != nil {
		return User{}, err
	}
	return payload.user(), nil
}

// Logout invalidates the session token on the server and clears all session
// state. After Logout the client can Login again, as a different user if
// desired.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.checkLoggedIn(); err != nil {
		return err
	}
	err := c.do(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/auth/logout",
		status: http.StatusNoContent,
	}, nil)
	if err != nil {
		return err
	}

	c.me = nil
	c.group = nil
	c.token = ""
	c.userAgent = ""

	c.logger.Info("logged out")
	return nil
}
