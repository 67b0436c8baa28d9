package commands

import (
	"Fabrika/internal/cli/api"
	"Fabrika/internal/cli/auth"
	"context"
	"fmt"
)

type materialsCmd struct{}

func init() { RegisterCmd(materialsCmd{}) }

func (materialsCmd) Name() string        { return "materials" }
func (materialsCmd) Description() string { return "list materials or add one" }
func (materialsCmd) Usage() string       { return "materials [add <name> [description]]" }

func (materialsCmd) Run(ctx context.Context, serverURL string, args []string) error {
	token, _ := auth.LoadToken()
	c := api.New(serverURL, token)

	if len(args) == 0 {
		ms, err := c.ListMaterials(ctx)
		if err != nil {
			return err
		}
		for _, m := range ms {
			desc := ""
			if m.Description != nil {
				desc = *m.Description
			}
			fmt.Fprintf(Out, "%d\t%s\t%s\n", m.ID, m.Name, desc)
		}
		return nil
	}

	if args[0] != "add" || len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}

	var desc *string
	if len(args) == 3 {
		desc = &args[2]
	}
	m, err := c.CreateMaterial(ctx, args[1], desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "created material %q (id=%d)\n", m.Name, m.ID)
	return nil
}
