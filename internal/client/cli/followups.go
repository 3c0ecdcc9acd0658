package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
)

func (a *App) ListFollowUps(ctx context.Context) error {
	if !a.gate(routes.ScreenFollowUps) {
		return nil
	}
	followUps, err := a.followUps.FollowUps(ctx)
	if err != nil {
		return err
	}
	if len(followUps) == 0 {
		printlnFn("No follow-ups yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tCUSTOMER\tDATE\tPRIORITY\tSTATUS")
	for _, f := range followUps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.FollowUpID, f.OrderID, f.CustomerName, f.FollowUpDate.Format(dateLayout), f.Priority, f.Status)
	}
	return w.Flush()
}

func (a *App) NewFollowUp(ctx context.Context) error {
	if !a.gate(routes.ScreenFollowUps) {
		return nil
	}
	input, err := a.promptFollowUpInput(nil)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.followUps.Create(ctx, *input)
	return nil
}

func (a *App) CompleteFollowUp(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenFollowUps) {
		return nil
	}
	existing, err := a.findFollowUp(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		printlnFn("Follow-up not found:", id)
		return nil
	}
	return a.followUps.Complete(ctx, existing)
}

func (a *App) DeleteFollowUp(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenFollowUps) {
		return nil
	}
	return a.followUps.Delete(ctx, id)
}

func (a *App) findFollowUp(ctx context.Context, id string) (*models.FollowUp, error) {
	followUps, err := a.followUps.FollowUps(ctx)
	if err != nil {
		return nil, err
	}
	for i := range followUps {
		if followUps[i].FollowUpID == id {
			return &followUps[i], nil
		}
	}
	return nil, nil
}

func (a *App) promptFollowUpInput(existing *models.FollowUp) (*models.FollowUpInput, error) {
	def := models.FollowUp{Priority: models.PriorityMedium, Status: "Pending"}
	if existing != nil {
		def = *existing
	}

	input := &models.FollowUpInput{Status: def.Status}
	var err error

	if input.OrderID, err = textWithDefault(a.reader, "Order id", def.OrderID); err != nil {
		return nil, err
	}

	defDate := ""
	if !def.FollowUpDate.IsZero() {
		defDate = def.FollowUpDate.Format(dateLayout)
	}
	dateRaw, err := textWithDefault(a.reader, "Follow-up date (YYYY-MM-DD)", defDate)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, dateRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateRaw)
	}
	input.FollowUpDate = date

	if input.Notes, err = textWithDefault(a.reader, "Notes (optional)", def.Notes); err != nil {
		return nil, err
	}

	priorities := []string{string(models.PriorityHigh), string(models.PriorityMedium), string(models.PriorityLow)}
	priority, err := GetChoice(a.reader, "Priority", priorities, string(def.Priority), os.Stdout)
	if err != nil {
		return nil, err
	}
	input.Priority = models.Priority(priority)

	return input, nil
}
