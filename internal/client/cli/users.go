package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
)

func (a *App) ListUsers(ctx context.Context) error {
	if !a.gate(routes.ScreenUsers) {
		return nil
	}
	users, err := a.users.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		printlnFn("No users yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tPHONE\tSTATUS")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, u.Role, models.FormatPhoneNumber(u.MobileNumber), u.Status)
	}
	return w.Flush()
}

func (a *App) NewUser(ctx context.Context) error {
	if !a.gate(routes.ScreenUsers) {
		return nil
	}
	input, err := a.promptUserInput(nil, true)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.users.Create(ctx, *input)
	return nil
}

func (a *App) EditUser(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenUsers) {
		return nil
	}
	users, err := a.users.Users(ctx)
	if err != nil {
		return err
	}
	var existing *models.User
	for i := range users {
		if users[i].ID == id {
			existing = &users[i]
			break
		}
	}
	if existing == nil {
		printlnFn("User not found:", id)
		return nil
	}
	input, err := a.promptUserInput(existing, false)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.users.Update(ctx, id, *input)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, id string) error {
	if !a.gate(routes.ScreenUsers) {
		return nil
	}
	if me := a.auth.User(); me != nil && me.ID == id {
		a.notifier.Error("Error", "You cannot delete your own account")
		return nil
	}
	return a.users.Delete(ctx, id)
}

// promptUserInput reads the user form. The password is mandatory on create
// and optional on edit, where an empty entry keeps the current one.
func (a *App) promptUserInput(existing *models.User, create bool) (*models.UserInput, error) {
	def := models.User{Role: models.RoleModerator, Status: "Active"}
	if existing != nil {
		def = *existing
	}

	input := &models.UserInput{}
	var err error

	if input.Name, err = textWithDefault(a.reader, "Full name", def.Name); err != nil {
		return nil, err
	}
	if input.Email, err = textWithDefault(a.reader, "Email", def.Email); err != nil {
		return nil, err
	}
	if input.MobileNumber, err = textWithDefault(a.reader, "Mobile number (01XXXXXXXXX)", def.MobileNumber); err != nil {
		return nil, err
	}

	role, err := GetChoice(a.reader, "Role", []string{string(models.RoleAdmin), string(models.RoleModerator)}, string(def.Role), os.Stdout)
	if err != nil {
		return nil, err
	}
	input.Role = models.Role(role)

	status, err := GetChoice(a.reader, "Status", []string{"Active", "Inactive"}, def.Status, os.Stdout)
	if err != nil {
		return nil, err
	}
	input.Status = status

	prompt := "password"
	if !create {
		prompt = "new password (Enter to keep current)"
	}
	fmt.Printf("Set %s\n", prompt)
	password, err := getPassword(os.Stdout)
	if err != nil {
		return nil, err
	}
	input.Password = password

	return input, nil
}
