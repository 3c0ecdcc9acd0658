package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Analytics(ctx context.Context) error

	ListOrders(ctx context.Context) error
	NewOrder(ctx context.Context) error
	EditOrder(ctx context.Context, id string) error
	DeleteOrder(ctx context.Context, id string) error
	DispatchOrder(ctx context.Context, id string) error

	ListProducts(ctx context.Context) error
	NewProduct(ctx context.Context) error
	EditProduct(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error

	ListUsers(ctx context.Context) error
	NewUser(ctx context.Context) error
	EditUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error

	ListTasks(ctx context.Context) error
	NewTask(ctx context.Context) error
	EditTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	ListFollowUps(ctx context.Context) error
	NewFollowUp(ctx context.Context) error
	CompleteFollowUp(ctx context.Context, id string) error
	DeleteFollowUp(ctx context.Context, id string) error

	SendSMS(ctx context.Context) error
	SMSBalance(ctx context.Context) error
}

const helpLoggedOut = "Available commands: login, exit"

const helpLoggedIn = `Available commands:
  dashboard                                     status counts and SMS balance
  analytics                                     per-product order breakdown
  orders | neworder | editorder <id>            manage orders
  deleteorder <id> | dispatch <id>
  products | newproduct | editproduct <id>      manage products
  deleteproduct <id>
  users | newuser | edituser <id>               manage panel users
  deleteuser <id>
  tasks | newtask | edittask <id>               manage tasks
  deletetask <id>
  followups | newfollowup | complete <id>       manage follow-ups
  deletefollowup <id>
  sms | smsbalance                              bulk SMS
  logout | exit`

// runREPL reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers surface
// their own failures through the notifier. This keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("orderdesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		idArg := func() (string, bool) {
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "<id>")
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)
		case "analytics":
			_ = a.Analytics(ctx)

		case "o", "orders":
			_ = a.ListOrders(ctx)
		case "neworder":
			_ = a.NewOrder(ctx)
		case "editorder":
			if id, ok := idArg(); ok {
				_ = a.EditOrder(ctx, id)
			}
		case "deleteorder":
			if id, ok := idArg(); ok {
				_ = a.DeleteOrder(ctx, id)
			}
		case "dispatch":
			if id, ok := idArg(); ok {
				_ = a.DispatchOrder(ctx, id)
			}

		case "p", "products":
			_ = a.ListProducts(ctx)
		case "newproduct":
			_ = a.NewProduct(ctx)
		case "editproduct":
			if id, ok := idArg(); ok {
				_ = a.EditProduct(ctx, id)
			}
		case "deleteproduct":
			if id, ok := idArg(); ok {
				_ = a.DeleteProduct(ctx, id)
			}

		case "users":
			_ = a.ListUsers(ctx)
		case "newuser":
			_ = a.NewUser(ctx)
		case "edituser":
			if id, ok := idArg(); ok {
				_ = a.EditUser(ctx, id)
			}
		case "deleteuser":
			if id, ok := idArg(); ok {
				_ = a.DeleteUser(ctx, id)
			}

		case "t", "tasks":
			_ = a.ListTasks(ctx)
		case "newtask":
			_ = a.NewTask(ctx)
		case "edittask":
			if id, ok := idArg(); ok {
				_ = a.EditTask(ctx, id)
			}
		case "deletetask":
			if id, ok := idArg(); ok {
				_ = a.DeleteTask(ctx, id)
			}

		case "f", "followups":
			_ = a.ListFollowUps(ctx)
		case "newfollowup":
			_ = a.NewFollowUp(ctx)
		case "complete":
			if id, ok := idArg(); ok {
				_ = a.CompleteFollowUp(ctx, id)
			}
		case "deletefollowup":
			if id, ok := idArg(); ok {
				_ = a.DeleteFollowUp(ctx, id)
			}

		case "sms":
			_ = a.SendSMS(ctx)
		case "smsbalance":
			_ = a.SMSBalance(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
