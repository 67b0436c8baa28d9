package commands

import (
	"Fabrika/internal/cli/api"
	"context"
	"fmt"
)

type registerCmd struct{}

func init() { RegisterCmd(registerCmd{}) }

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "create a new account" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, serverURL string, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	c := api.New(serverURL, "")
	u, err := c.Register(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "registered user %q (id=%d)\n", u.Username, u.ID)
	return nil
}
