package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
)

// Analytics breaks orders down per product: order count, units, and revenue
// from delivered orders. Revenue uses the same derivation as the order list,
// quantity times sales price plus delivery charge.
func (a *App) Analytics(ctx context.Context) error {
	if !a.gate(routes.ScreenAnalytics) {
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

	type row struct {
		name    string
		orders  int
		units   int
		revenue float64
	}
	byProduct := make(map[string]*row)
	for i := range orders {
		o := &orders[i]
		r := byProduct[o.ProductID]
		if r == nil {
			r = &row{name: o.ProductID}
			if p, err := a.products.ByID(ctx, o.ProductID); err == nil && p != nil {
				r.name = p.Name
			}
			byProduct[o.ProductID] = r
		}
		r.orders++
		r.units += o.Quantity
		if o.Status == models.StatusDelivered {
			p, _ := a.products.ByID(ctx, o.ProductID)
			r.revenue += o.GrandTotal(p)
		}
	}

	rows := make([]*row, 0, len(byProduct))
	for _, r := range byProduct {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].revenue > rows[j].revenue })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tORDERS\tUNITS\tDELIVERED REVENUE")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.name, r.orders, r.units, models.FormatCurrency(r.revenue))
	}
	return w.Flush()
}
