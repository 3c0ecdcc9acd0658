package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// OrderStatus is the normalized status enumeration. The backend historically
// served both hyphenated and space-separated spellings ("Pending-Moderator"
// vs "Pending Moderator"); ParseOrderStatus accepts either and canonicalizes
// to the space-separated form.
type OrderStatus string

const (
	StatusPendingModerator      OrderStatus = "Pending Moderator"
	StatusPackageToConfirmation OrderStatus = "Package to Confirmation"
	StatusInReview              OrderStatus = "In Review"
	StatusPending               OrderStatus = "Pending"
	StatusDelivered             OrderStatus = "Delivered"
	StatusCancelled             OrderStatus = "Cancelled"
	StatusOfficeReceived        OrderStatus = "Office Received"
)

// OrderStatuses lists the canonical statuses in workflow order.
var OrderStatuses = []OrderStatus{
	StatusPendingModerator,
	StatusPackageToConfirmation,
	StatusInReview,
	StatusPending,
	StatusDelivered,
	StatusCancelled,
	StatusOfficeReceived,
}

var ErrUnknownStatus = errors.New("unknown order status")

// ParseOrderStatus normalizes s to a canonical OrderStatus.
// Hyphens are treated as spaces and matching is case-insensitive.
func ParseOrderStatus(s string) (OrderStatus, error) {
	norm := strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " ")
	for _, st := range OrderStatuses {
		if strings.EqualFold(norm, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// UnmarshalJSON normalizes the status spelling at the API boundary.
// Unknown values are kept verbatim rather than rejected: records are
// server-owned and a read must not fail because of a new status value.
func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if st, err := ParseOrderStatus(raw); err == nil {
		*s = st
		return nil
	}
	*s = OrderStatus(raw)
	return nil
}

// OrderSource is where the order came from.
type OrderSource string

const (
	SourceMessenger OrderSource = "Messenger"
	SourceCall      OrderSource = "Call"
	SourceWhatsApp  OrderSource = "WhatsApp"
	SourceWebsite   OrderSource = "Website"
)

// Order belongs to exactly one moderator and references exactly one product.
type Order struct {
	ID                string      `json:"id"`
	CustomerName      string      `json:"customer_name"`
	MobileNumber      string      `json:"mobile_number"`
	Email             string      `json:"email,omitempty"`
	Address           string      `json:"address"`
	ModeratorID       string      `json:"moderator_id"`
	ProductID         string      `json:"product_id"`
	Quantity          int         `json:"quantity"`
	OrderSource       OrderSource `json:"order_source"`
	DeliveryCharge    float64     `json:"delivery_charge"`
	Notes             string      `json:"notes,omitempty"`
	Status            OrderStatus `json:"status"`
	CourierTrackingID string      `json:"courier_tracking_id,omitempty"`
	CreatedDate       time.Time   `json:"created_date"`
	UpdatedDate       time.Time   `json:"updated_date"`
}

// GrandTotal derives the display total from the referenced product's sales
// price. Derived client-side; never authoritative.
func (o *Order) GrandTotal(p *Product) float64 {
	if p == nil {
		return o.DeliveryCharge
	}
	return float64(o.Quantity)*p.SalesPrice + o.DeliveryCharge
}

// OrderInput is the single create/update contract for orders:
// product reference plus quantity plus delivery charge. Totals are derived,
// never submitted.
type OrderInput struct {
	CustomerName   string      `json:"customer_name" validate:"required,min=2,max=100"`
	MobileNumber   string      `json:"mobile_number" validate:"required,bdphone"`
	Email          string      `json:"email,omitempty" validate:"omitempty,email"`
	Address        string      `json:"address" validate:"required,min=10,max=500"`
	ProductID      string      `json:"product_id" validate:"required,uuid4"`
	Quantity       int         `json:"quantity" validate:"required,min=1,max=999"`
	DeliveryCharge float64     `json:"delivery_charge" validate:"min=0,max=1000"`
	OrderSource    OrderSource `json:"order_source" validate:"required,oneof=Messenger Call WhatsApp Website"`
	Notes          string      `json:"notes,omitempty" validate:"max=1000"`
	Status         OrderStatus `json:"status" validate:"required,orderstatus"`
}
