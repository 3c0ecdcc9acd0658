package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
)

func (a *App) ListProducts(ctx context.Context) error {
	if !a.gate(routes.ScreenProducts) {
		return nil
	}
	products, err := a.products.Products(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		printlnFn("No products yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSALES\tSTATUS")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, models.FormatCurrency(p.Price), models.FormatCurrency(p.SalesPrice), p.Status)
	}
	return w.Flush()
}

func (a *App) NewProduct(ctx context.Context) error {
	if !a.gate(routes.ScreenProducts) {
		return nil
	}
	input, err := a.promptProductInput(nil)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.products.Create(ctx, *input)
	return nil
}

func (a *App) EditProduct(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenProducts) {
		return nil
	}
	existing, err := a.products.ByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		printlnFn("Product not found:", id)
		return nil
	}
	input, err := a.promptProductInput(existing)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.products.Update(ctx, id, *input)
	return nil
}

func (a *App) DeleteProduct(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenProducts) {
		return nil
	}
	return a.products.Delete(ctx, id)
}

func (a *App) promptProductInput(existing *models.Product) (*models.ProductInput, error) {
	def := models.Product{Status: "Active"}
	if existing != nil {
		def = *existing
	}

	input := &models.ProductInput{}
	var err error

	if input.Name, err = textWithDefault(a.reader, "Product name", def.Name); err != nil {
		return nil, err
	}
	if input.Price, err = GetFloat(a.reader, fmt.Sprintf("Price (Enter for %.2f)", def.Price), def.Price, os.Stdout); err != nil {
		return nil, err
	}
	if input.SalesPrice, err = GetFloat(a.reader, fmt.Sprintf("Sales price (Enter for %.2f)", def.SalesPrice), def.SalesPrice, os.Stdout); err != nil {
		return nil, err
	}
	if input.ProductionPrice, err = GetFloat(a.reader, fmt.Sprintf("Production price (Enter for %.2f)", def.ProductionPrice), def.ProductionPrice, os.Stdout); err != nil {
		return nil, err
	}
	if input.DiscountPrice, err = GetFloat(a.reader, fmt.Sprintf("Discount price (Enter for %.2f)", def.DiscountPrice), def.DiscountPrice, os.Stdout); err != nil {
		return nil, err
	}
	if input.ManufacturerPrice, err = GetFloat(a.reader, fmt.Sprintf("Manufacturer price (Enter for %.2f)", def.ManufacturerPrice), def.ManufacturerPrice, os.Stdout); err != nil {
		return nil, err
	}

	status, err := GetChoice(a.reader, "Status", []string{"Active", "Inactive"}, def.Status, os.Stdout)
	if err != nil {
		return nil, err
	}
	input.Status = status

	if input.ImagePath, err = getSimpleText(a.reader, "Image file path (optional)", os.Stdout); err != nil {
		return nil, err
	}

	return input, nil
}
