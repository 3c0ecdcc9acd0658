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

const dateLayout = "2006-01-02"

func (a *App) ListTasks(ctx context.Context) error {
	if !a.gate(routes.ScreenTasks) {
		return nil
	}
	tasks, err := a.tasks.Tasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		printlnFn("No tasks yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tASSIGNEE\tDUE\tSTATUS")
	for _, t := range tasks {
		due := ""
		if !t.DueDate.IsZero() {
			due = t.DueDate.Format(dateLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.AssigneeID, due, t.Status)
	}
	return w.Flush()
}

func (a *App) NewTask(ctx context.Context) error {
	if !a.gate(routes.ScreenTasks) {
		return nil
	}
	input, err := a.promptTaskInput(nil)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.tasks.Create(ctx, *input)
	return nil
}

func (a *App) EditTask(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenTasks) {
		return nil
	}
	tasks, err := a.tasks.Tasks(ctx)
	if err != nil {
		return err
	}
	var existing *models.Task
	for i := range tasks {
		if tasks[i].ID == id {
			existing = &tasks[i]
			break
		}
	}
	if existing == nil {
		printlnFn("Task not found:", id)
		return nil
	}
	input, err := a.promptTaskInput(existing)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.tasks.Update(ctx, id, *input)
	return nil
}

func (a *App) DeleteTask(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenTasks) {
		return nil
	}
	return a.tasks.Delete(ctx, id)
}

func (a *App) promptTaskInput(existing *models.Task) (*models.TaskInput, error) {
	def := models.Task{Status: "Pending"}
	if existing != nil {
		def = *existing
	}

	input := &models.TaskInput{}
	var err error

	if input.Title, err = textWithDefault(a.reader, "Title", def.Title); err != nil {
		return nil, err
	}
	if input.Description, err = textWithDefault(a.reader, "Description (optional)", def.Description); err != nil {
		return nil, err
	}
	if input.AssigneeID, err = textWithDefault(a.reader, "Assignee id", def.AssigneeID); err != nil {
		return nil, err
	}

	defDue := ""
	if !def.DueDate.IsZero() {
		defDue = def.DueDate.Format(dateLayout)
	}
	dueRaw, err := textWithDefault(a.reader, "Due date (YYYY-MM-DD, optional)", defDue)
	if err != nil {
		return nil, err
	}
	if dueRaw != "" {
		due, err := time.Parse(dateLayout, dueRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dueRaw)
		}
		input.DueDate = due
	}

	status, err := GetChoice(a.reader, "Status", []string{"Pending", "In Progress", "Completed"}, def.Status, os.Stdout)
	if err != nil {
		return nil, err
	}
	input.Status = status

	return input, nil
}
