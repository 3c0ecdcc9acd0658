package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
)

// Dashboard summarizes the panel: orders per status, open follow-ups and
// tasks, and the SMS gateway balance. A failing balance read degrades to a
// dash instead of failing the whole screen.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.gate(routes.ScreenDashboard) {
		return nil
	}

	orders, err := a.orders.Orders(ctx)
	if err != nil {
		return err
	}

	counts := make(map[models.OrderStatus]int)
	var revenue float64
	for i := range orders {
		o := &orders[i]
		counts[o.Status]++
		if o.Status == models.StatusDelivered {
			p, err := a.products.ByID(ctx, o.ProductID)
			if err == nil {
				revenue += o.GrandTotal(p)
			}
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tORDERS")
	for _, s := range models.OrderStatuses {
		if counts[s] > 0 {
			fmt.Fprintf(w, "%s\t%d\n", s, counts[s])
		}
	}
	fmt.Fprintf(w, "Total\t%d\n", len(orders))
	if err := w.Flush(); err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Delivered revenue: %s", models.FormatCurrency(revenue)))

	if followUps, err := a.followUps.FollowUps(ctx); err == nil {
		open := 0
		for _, f := range followUps {
			if f.Status != models.FollowUpStatusCompleted {
				open++
			}
		}
		printlnFn(fmt.Sprintf("Open follow-ups: %d", open))
	}

	if tasks, err := a.tasks.Tasks(ctx); err == nil {
		open := 0
		for _, t := range tasks {
			if t.Status != "Completed" {
				open++
			}
		}
		printlnFn(fmt.Sprintf("Open tasks: %d", open))
	}

	balance := "-"
	if b, err := a.sms.Balance(ctx); err == nil {
		balance = models.FormatCurrency(b)
	}
	printlnFn("SMS balance:", balance)

	return nil
}
