package commands

import (
	"Fabrika/internal/cli/api"
	"Fabrika/internal/cli/auth"
	"context"
	"fmt"
)

type loginCmd struct{}

func init() { RegisterCmd(loginCmd{}) }

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "log in and store the bearer token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(ctx context.Context, serverURL string, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	c := api.New(serverURL, "")
	token, err := c.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err := auth.SaveToken(token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintln(Out, "logged in")
	return nil
}
