package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// MaxTotal is the exclusive upper bound of an order total.
	MaxTotal = decimal.NewFromInt(1000)
)

// Order is the aggregate root for a placed order. It is created already priced:
// the caller supplies price-snapshotted items and the discount computed for them,
// and the order derives its total as max(subtotal - discount, 0).
//
// Order follows these invariants:
//   - at least one pizza line
//   - 0 <= discount <= subtotal and 0 <= total < 1000
//   - estimated and actual delivery times are not before createdAt
//   - status moves only along the Status state machine
//
// Every status change is recorded as a StatusChanged event that the unit of
// work publishes after a successful commit.
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	createdAt         time.Time
	items             []Item
	subtotal          decimal.Decimal
	discount          decimal.Decimal
	freeItems         []string
	status            Status
	courierID         *kernel.UUID
	estimatedDelivery *time.Time
	actualDelivery    *time.Time
	notes             string

	events        []StatusChanged
	isConstructed bool
}

// NewOrder creates a Pending order and raises its placement event.
//
// Example:
//
//	item, _ := order.NewItem(kernel.NewUUID(), order.KindPizza, pizzaID, 2, decimal.RequireFromString("9.16"))
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, now, []order.Item{item}, decimal.Zero, nil)
func NewOrder(
	id, customerID kernel.UUID,
	createdAt time.Time,
	items []Item,
	discount decimal.Decimal,
	freeItems []string,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		status:        Pending,
		freeItems:     slices.Clone(freeItems),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	if err := o.setDiscount(discount); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("order date")
	}
	if o.freeItems == nil {
		o.freeItems = make([]string, 0)
	}

	o.raise(Unknown, Pending, createdAt)
	return o, nil
}

// State is the persisted form of an order used by RestoreOrder.
type State struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	CreatedAt         time.Time
	Items             []Item
	Discount          decimal.Decimal
	FreeItems         []string
	Status            Status
	CourierID         *kernel.UUID
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string
}

// RestoreOrder rebuilds a stored order without raising events.
func RestoreOrder(state State) (*Order, error) {
	o, err := NewOrder(state.ID, state.CustomerID, state.CreatedAt, state.Items, state.Discount, state.FreeItems)
	if err != nil {
		return nil, err
	}
	if err = state.Status.Validate(); err != nil {
		return nil, err
	}
	if state.CourierID != nil {
		if err = state.CourierID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = state.Status
	o.courierID = state.CourierID
	o.estimatedDelivery = state.EstimatedDelivery
	o.actualDelivery = state.ActualDelivery
	o.notes = state.Notes
	o.events = nil
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

func (o *Order) Discount() decimal.Decimal {
	return o.discount
}

// Total is the final charge.
func (o *Order) Total() decimal.Decimal {
	return decimal.Max(o.subtotal.Sub(o.discount), decimal.Zero)
}

func (o *Order) FreeItems() []string {
	return slices.Clone(o.freeItems)
}

func (o *Order) Status() Status {
	return o.status
}

// Courier returns the bound courier's ID, nil when none is bound.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

func (o *Order) ActualDelivery() *time.Time {
	return o.actualDelivery
}

func (o *Order) Notes() string {
	return o.notes
}

// PizzaQuantity is the number of pizzas in the order.
func (o *Order) PizzaQuantity() int {
	return PizzaQuantity(o.items)
}

// CancellationDeadline is createdAt plus the five minute window.
func (o *Order) CancellationDeadline() time.Time {
	return CancellationDeadline(o.createdAt)
}

// CanBeCancelledBy reports whether actor could cancel the order at asOf.
func (o *Order) CanBeCancelledBy(actor Actor, asOf time.Time) bool {
	if err := o.status.CheckTransition(Cancelled); err != nil || o.status == Cancelled {
		return false
	}
	return ValidateCancellationWindow(o.createdAt, actor, asOf) == nil
}

// AssignCourier binds a courier with the coverage ETA. The estimated delivery
// becomes asOf + eta and a Pending order advances to Preparing.
func (o *Order) AssignCourier(courierID kernel.UUID, eta time.Duration, asOf time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status != Pending && o.status != Preparing {
		return errs.NewInvalidTransitionError(fmt.Sprintf("a courier cannot be assigned to a %s order", o.status))
	}
	if o.courierID != nil {
		return errs.NewInvalidTransitionError(fmt.Sprintf("order %s already has courier %s", o.id, o.courierID))
	}
	estimated := asOf.Add(eta)
	if estimated.Before(o.createdAt) {
		return errs.NewValueIsOutOfRangeError("estimated delivery time",
			estimated.Format(time.RFC3339), o.createdAt.Format(time.RFC3339), "unbounded")
	}

	o.courierID = &courierID
	o.estimatedDelivery = &estimated
	if o.status == Pending {
		o.changeStatus(Preparing, asOf)
	}
	return nil
}

// MoveTo drives the lifecycle towards target. It returns false without error
// when the order already is in target. Delivered stamps the actual delivery
// time. Cancellation carries an actor and goes through Cancel instead.
func (o *Order) MoveTo(target Status, at time.Time) (bool, error) {
	if err := o.status.CheckTransition(target); err != nil {
		return false, err
	}
	if o.status == target {
		return false, nil
	}
	if target == Cancelled {
		return false, errs.NewInvalidTransitionError("cancellation must name an actor, use cancel")
	}

	if target == Delivered {
		if at.Before(o.createdAt) {
			return false, errs.NewValueIsOutOfRangeError("actual delivery time",
				at.Format(time.RFC3339), o.createdAt.Format(time.RFC3339), "unbounded")
		}
		delivered := at
		o.actualDelivery = &delivered
	}

	o.changeStatus(target, at)
	return true, nil
}

// Cancel moves the order to Cancelled and returns the audit entry to append.
// Cancelling a cancelled order is a no-op and returns nil. Customers are bound
// to the cancellation window, staff are not.
func (o *Order) Cancel(actor Actor, reason string, at time.Time) (*Cancellation, error) {
	if o.status == Cancelled {
		return nil, nil //nolint:nilnil // no-op cancellation has no audit entry
	}
	if err := o.status.CheckTransition(Cancelled); err != nil {
		return nil, err
	}
	if err := ValidateCancellationWindow(o.createdAt, actor, at); err != nil {
		return nil, err
	}

	cancellation, err := NewCancellation(kernel.NewUUID(), o.id, actor, at, reason)
	if err != nil {
		return nil, err
	}
	o.changeStatus(Cancelled, at)
	return &cancellation, nil
}

// UpdateNotes replaces the delivery notes; nil keeps the current notes.
func (o *Order) UpdateNotes(notes *string) {
	if notes != nil {
		o.notes = strings.TrimSpace(*notes)
	}
}

// DomainEvents returns the events raised since the order was created or loaded.
func (o *Order) DomainEvents() []StatusChanged {
	return slices.Clone(o.events)
}

// ClearDomainEvents forgets raised events once they are published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) changeStatus(target Status, at time.Time) {
	from := o.status
	o.status = target
	o.raise(from, target, at)
}

func (o *Order) raise(from, to Status, at time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		CourierID:  o.courierID,
		From:       from,
		To:         to,
		At:         at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if err := ValidateComposition(items); err != nil {
		return err
	}
	subtotal := decimal.Zero
	for _, item := range items {
		if err := item.id.Validate(); err != nil {
			return err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.items = slices.Clone(items)
	o.subtotal = subtotal
	return nil
}

func (o *Order) setDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(o.subtotal) {
		return errs.NewValueIsOutOfRangeError("discount", discount.String(), 0, o.subtotal.String())
	}
	o.discount = discount
	return ValidateTotal(o.Total())
}

// ValidateTotal fails with a range violation unless 0 <= total < 1000.
func ValidateTotal(total decimal.Decimal) error {
	if total.IsNegative() || total.GreaterThanOrEqual(MaxTotal) {
		return errs.NewValueIsOutOfRangeError("order total", total.String(), 0, "< 1000")
	}
	return nil
}
