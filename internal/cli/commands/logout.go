package commands

import (
	"Fabrika/internal/cli/api"
	"Fabrika/internal/cli/auth"
	"context"
	"fmt"
)

type logoutCmd struct{}

func init() { RegisterCmd(logoutCmd{}) }

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "revoke the current session" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, serverURL string, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	token, err := auth.LoadToken()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}

	c := api.New(serverURL, token)
	if err := c.Logout(ctx, token); err != nil {
		return err
	}
	// локальный файл чистим даже если сервер уже забыл сессию
	if err := auth.DeleteToken(); err != nil {
		return fmt.Errorf("removing token file: %w", err)
	}
	fmt.Fprintln(Out, "logged out")
	return nil
}
