package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
)

func (a *App) ListOrders(ctx context.Context) error {
	if !a.gate(routes.ScreenOrders) {
		return nil
	}
	orders, err := a.orders.Orders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		printlnFn("No orders yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tPHONE\tPRODUCT\tQTY\tSTATUS\tTOTAL")
	for i := range orders {
		o := &orders[i]
		productName := o.ProductID
		p, err := a.products.ByID(ctx, o.ProductID)
		if err == nil && p != nil {
			productName = p.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.CustomerName, models.FormatPhoneNumber(o.MobileNumber),
			productName, o.Quantity, o.Status, models.FormatCurrency(o.GrandTotal(p)))
	}
	return w.Flush()
}

func (a *App) NewOrder(ctx context.Context) error {
	if !a.gate(routes.ScreenOrders) {
		return nil
	}
	input, err := a.promptOrderInput(ctx, nil)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.orders.Create(ctx, *input)
	return nil
}

func (a *App) EditOrder(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenOrders) {
		return nil
	}
	existing, err := a.findOrder(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		printlnFn("Order not found:", id)
		return nil
	}
	input, err := a.promptOrderInput(ctx, existing)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.orders.Update(ctx, id, *input)
	return nil
}

func (a *App) DeleteOrder(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenOrders) {
		return nil
	}
	return a.orders.Delete(ctx, id)
}

func (a *App) DispatchOrder(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenOrders) {
		return nil
	}
	return a.orders.Dispatch(ctx, id)
}

func (a *App) findOrder(ctx context.Context, id string) (*models.Order, error) {
	orders, err := a.orders.Orders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// promptOrderInput walks the user through the order form. When existing is
// non-nil its values become the defaults, so pressing Enter keeps a field.
func (a *App) promptOrderInput(ctx context.Context, existing *models.Order) (*models.OrderInput, error) {
	def := models.Order{Quantity: 1, Status: models.StatusPending, OrderSource: models.SourceWebsite}
	if existing != nil {
		def = *existing
	}

	input := &models.OrderInput{}
	var err error

	if input.CustomerName, err = textWithDefault(a.reader, "Customer name", def.CustomerName); err != nil {
		return nil, err
	}
	if input.MobileNumber, err = textWithDefault(a.reader, "Mobile number (01XXXXXXXXX)", def.MobileNumber); err != nil {
		return nil, err
	}
	if input.Email, err = textWithDefault(a.reader, "Email (optional)", def.Email); err != nil {
		return nil, err
	}
	if input.Address, err = textWithDefault(a.reader, "Delivery address", def.Address); err != nil {
		return nil, err
	}

	if input.ProductID, err = a.chooseProduct(ctx, def.ProductID); err != nil {
		return nil, err
	}

	if input.Quantity, err = GetInt(a.reader, fmt.Sprintf("Quantity (Enter for %d)", def.Quantity), def.Quantity, os.Stdout); err != nil {
		return nil, err
	}
	if input.DeliveryCharge, err = GetFloat(a.reader, fmt.Sprintf("Delivery charge (Enter for %.0f)", def.DeliveryCharge), def.DeliveryCharge, os.Stdout); err != nil {
		return nil, err
	}

	sources := []string{string(models.SourceMessenger), string(models.SourceCall), string(models.SourceWhatsApp), string(models.SourceWebsite)}
	source, err := GetChoice(a.reader, "Order source", sources, string(def.OrderSource), os.Stdout)
	if err != nil {
		return nil, err
	}
	input.OrderSource = models.OrderSource(source)

	if input.Notes, err = textWithDefault(a.reader, "Notes (optional)", def.Notes); err != nil {
		return nil, err
	}

	statuses := make([]string, len(models.OrderStatuses))
	for i, s := range models.OrderStatuses {
		statuses[i] = string(s)
	}
	status, err := GetChoice(a.reader, "Status", statuses, string(def.Status), os.Stdout)
	if err != nil {
		return nil, err
	}
	input.Status = models.OrderStatus(status)

	return input, nil
}

// chooseProduct lists the catalogue and resolves the selection to an id.
func (a *App) chooseProduct(ctx context.Context, defID string) (string, error) {
	products, err := a.products.Products(ctx)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", fmt.Errorf("no products available, create one first")
	}

	names := make([]string, len(products))
	defName := ""
	for i, p := range products {
		names[i] = fmt.Sprintf("%s (%s)", p.Name, models.FormatCurrency(p.SalesPrice))
		if p.ID == defID {
			defName = names[i]
		}
	}
	if defName == "" {
		defName = names[0]
	}

	chosen, err := GetChoice(a.reader, "Product", names, defName, os.Stdout)
	if err != nil {
		return "", err
	}
	for i, n := range names {
		if n == chosen {
			return products[i].ID, nil
		}
	}
	return "", fmt.Errorf("invalid product choice")
}

// textWithDefault reads a line, keeping def when the user enters nothing.
func textWithDefault(reader *bufio.Reader, prompt, def string) (string, error) {
	p := prompt
	if def != "" {
		p = fmt.Sprintf("%s (Enter for %q)", prompt, def)
	}
	s, err := getSimpleText(reader, p, os.Stdout)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}
