package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
)

// SendSMS prompts for recipients and a message and submits the batch.
// Entering "orders" pulls the distinct customer numbers from the order list
// instead of typing them by hand.
func (a *App) SendSMS(ctx context.Context) error {
	if !a.gate(routes.ScreenSMS) {
		return nil
	}

	numbers, err := GetCommaList(a.reader, "Recipient numbers, comma separated (or 'orders' for all order customers)", os.Stdout)
	if err != nil {
		return err
	}
	if len(numbers) == 1 && numbers[0] == "orders" {
		numbers, err = a.orderCustomerNumbers(ctx)
		if err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Collected %d distinct customer number(s)", len(numbers)))
	}

	message, err := getSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	a.sms.Send(ctx, models.SMSInput{Numbers: numbers, Message: message})
	return nil
}

func (a *App) SMSBalance(ctx context.Context) error {
	if !a.gate(routes.ScreenSMS) {
		return nil
	}
	balance, err := a.sms.Balance(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("SMS balance: %s", models.FormatCurrency(balance)))
	return nil
}

func (a *App) orderCustomerNumbers(ctx context.Context) ([]string, error) {
	orders, err := a.orders.Orders(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(orders))
	var numbers []string
	for _, o := range orders {
		if o.MobileNumber == "" || seen[o.MobileNumber] {
			continue
		}
		seen[o.MobileNumber] = true
		numbers = append(numbers, o.MobileNumber)
	}
	return numbers, nil
}
