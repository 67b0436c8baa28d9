package commands

import (
	"Fabrika/internal/cli/api"
	"Fabrika/internal/cli/auth"
	"context"
	"fmt"
	"strconv"
)

type itemAddCmd struct{}

func init() { RegisterCmd(itemAddCmd{}) }

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "create an item and render its pdf" }
func (itemAddCmd) Usage() string {
	return "item-add <material_id> <product_type_id> <width> <height>"
}

func (itemAddCmd) Run(ctx context.Context, serverURL string, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}

	materialID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	productTypeID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return ErrUsage
	}
	width, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return ErrUsage
	}
	height, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return ErrUsage
	}

	token, _ := auth.LoadToken()
	c := api.New(serverURL, token)

	it, err := c.CreateItem(ctx, materialID, productTypeID, width, height)
	if err != nil {
		return err
	}
	pdfPath := "<pending>"
	if it.PDFPath != nil {
		pdfPath = *it.PDFPath
	}
	fmt.Fprintf(Out, "created item id=%d pdf=%s\n", it.ID, pdfPath)
	return nil
}

type itemGetCmd struct{}

func init() { RegisterCmd(itemGetCmd{}) }

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "show an item by id" }
func (itemGetCmd) Usage() string       { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, serverURL string, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}

	token, _ := auth.LoadToken()
	c := api.New(serverURL, token)

	it, err := c.GetItem(ctx, id)
	if err != nil {
		return err
	}
	pdfPath := "<pending>"
	if it.PDFPath != nil {
		pdfPath = *it.PDFPath
	}
	fmt.Fprintf(Out, "id=%d material=%d product_type=%d size=%.0fx%.0f pdf=%s\n",
		it.ID, it.MaterialID, it.ProductTypeID, it.Width, it.Height, pdfPath)
	return nil
}
