package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CancelOrderResult reports the refund. Cancelling an already cancelled
// order succeeds with AlreadyCancelled set and nothing refunded.
type CancelOrderResult struct {
	OrderID          kernel.UUID
	Refund           decimal.Decimal
	AlreadyCancelled bool
}

// CancelOrderCommandHandler cancels an order, releases its courier and
// appends the cancellation to the audit log in one transaction.
//
// Example:
//
//	cmd, _ := NewCancelOrderCommand(orderID, "customer", "changed my mind", time.Now())
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrWindowExpired) {
//	    // too late for the customer, staff can still cancel
//	}
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory DispatchUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}

	cancellation, err := o.Cancel(cmd.Actor(), cmd.Reason(), cmd.AsOf())
	if err != nil {
		return CancelOrderResult{}, err
	}
	if cancellation == nil {
		return CancelOrderResult{OrderID: o.ID(), Refund: decimal.Zero, AlreadyCancelled: true}, nil
	}

	if courierID := o.Courier(); courierID != nil {
		c, err := courierRepo.GetForUpdate(ctx, *courierID)
		if err != nil {
			return CancelOrderResult{}, err
		}
		c.Release(o.ID())
		if err = courierRepo.Update(ctx, c); err != nil {
			return CancelOrderResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CancelOrderResult{}, err
	}
	if err = orderRepo.AddCancellation(ctx, *cancellation); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	return CancelOrderResult{OrderID: o.ID(), Refund: o.Total()}, nil
}
