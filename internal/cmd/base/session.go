package base

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/eln-tools/labfolder-go/internal/config"
	"github.com/eln-tools/labfolder-go/pkg/labfolder"
)

// SessionFlags are the flags shared by every command that talks to the API.
type SessionFlags struct {
	Config   string
	Username string
	BaseURL  string
	Group    string
}

// Register adds the shared session flags to a flag set.
func (s *SessionFlags) Register(f *FlagSet) {
	f.StringVar(
		&s.Config, "config", "",
		"Path to a labfolder config file.",
	)
	f.StringVar(
		&s.Username, "username", "",
		"Account email used for login. Overrides the config file.",
	)
	f.StringVar(
		&s.BaseURL, "base-url", "",
		"API base URL, for self-hosted instances. Overrides the config file.",
	)
	f.StringVar(
		&s.Group, "group", "",
		"Group id for commands that operate on a group. Overrides the config file.",
	)
}

// Session is a logged-in client plus the configuration that produced it.
// Every successful OpenSession deserves a deferred Close.
type Session struct {
	Client *labfolder.Client
	Config *config.Config

	log hclog.Logger
}

// OpenSession loads configuration, builds a client, and logs in. The
// password comes from LABFOLDER_PASSWORD when set and from a no-echo
// terminal prompt otherwise; there is intentionally no password flag, since
// argv is visible to every process on the host.
func (c *Command) OpenSession(ctx context.Context, flags SessionFlags) (*Session, error) {
	cfg, err := config.NewConfig(flags.Config)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if flags.Username != "" {
		cfg.Username = flags.Username
	}
	if flags.BaseURL != "" {
		cfg.BaseURL = flags.BaseURL
	}
	if flags.Group != "" {
		cfg.GroupID = flags.Group
	}

	if cfg.LogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}

	if cfg.Username == "" {
		return nil, fmt.Errorf(
			"no username: set -username, the username config attribute, or LABFOLDER_USERNAME")
	}

	prompt := labfolder.PasswordPromptFunc(labfolder.TerminalPasswordPrompt)
	if cfg.Password != "" {
		prompt = labfolder.StaticPassword(cfg.Password)
	}

	client, err := labfolder.New(&labfolder.Config{
		BaseURL:        cfg.BaseURL,
		PageSize:       cfg.PageSize,
		Logger:         c.Log.Named("client"),
		PasswordPrompt: prompt,
	})
	if err != nil {
		return nil, err
	}

	if err := client.Login(ctx, cfg.Username); err != nil {
		return nil, fmt.Errorf("logging in as %s: %w", cfg.Username, err)
	}

	return &Session{
		Client: client,
		Config: cfg,
		log:    c.Log,
	}, nil
}

// Close logs the session out. Failures are logged rather than returned; a
// token the server already dropped is not a command failure.
func (s *Session) Close(ctx context.Context) {
	if err := s.Client.Logout(ctx); err != nil {
		s.log.Warn("logout failed", "error", err)
	}
}

// SelectGroup activates the group named by the -group flag or configuration.
func (s *Session) SelectGroup(ctx context.Context) (*labfolder.Group, error) {
	if s.Config.GroupID == "" {
		return nil, fmt.Errorf(
			"no group: set -group, the group_id config attribute, or LABFOLDER_GROUP_ID")
	}
	return s.Client.SelectGroup(ctx, s.Config.GroupID)
}

// Member finds a member of the active group by email. SelectGroup must have
// succeeded first.
func (s *Session) Member(email string) (labfolder.User, error) {
	g := s.Client.ActiveGroup()
	if g == nil {
		return labfolder.User{}, fmt.Errorf("no active group")
	}
	member, ok := g.MemberByEmail(email)
	if !ok {
		return labfolder.User{}, fmt.Errorf("no member with email %s in group %s", email, g.Name)
	}
	return member, nil
}
