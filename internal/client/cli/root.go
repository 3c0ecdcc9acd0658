package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	u := a.auth.User()
	if u == nil {
		return ""
	}
	name := u.Name
	if name == "" {
		name = u.Email
	}
	return fmt.Sprintf("(%s %s) ", name, strings.ToLower(string(u.Role)))
}

// Root runs the interactive loop on stdin. It returns when the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("orderdesk admin panel (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
