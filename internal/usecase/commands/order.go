package commands

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commandsmock

import (
	"context"
	"log/slog"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/domain/product"
	reqdto "order-fulfillment/internal/handler/dto/request"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/shared"
)

type OrderCommands interface {
	Process(ctx context.Context, req reqdto.CreateOrderRequest) (*order.Order, error)
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	orderFactory *order.Factory
	logger       *slog.Logger
}

func NewOrderCommands(uow shared.UnitOfWork, orderFactory *order.Factory, logger *slog.Logger) OrderCommands {
	return &orderCommandsImpl{
		uow:          uow,
		orderFactory: orderFactory,
		logger:       logger,
	}
}

// Process resolves the product, then either records a reservation or
// fulfills from stock. Every step runs inside the product's exclusive
// section, so the stock check and the decrement cannot interleave with
// another order for the same code.
func (c *orderCommandsImpl) Process(ctx context.Context, req reqdto.CreateOrderRequest) (*order.Order, error) {
	req = req.Normalized()
	if req.ProductCode == "" {
		return nil, errs.Mark(errs.New("product code is required"), errs.ErrInvalidOrder)
	}
	if req.Quantity <= 0 {
		return nil, errs.Mark(errs.Newf("quantity must be at least 1, got %d", req.Quantity), errs.ErrInvalidOrder)
	}

	var created *order.Order
	err := c.uow.WithinProduct(ctx, req.ProductCode, func(ctx context.Context, tx shared.Tx) error {
		p := tx.Product()

		if p.IsReservation() {
			o, err := c.orderFactory.CreateOrder(p, req.Quantity)
			if err != nil {
				return errs.Mark(err, errs.ErrInvalidOrder)
			}
			if err := tx.AppendOrder(ctx, o); err != nil {
				return errs.Mark(err, errs.ErrProcessingFailed)
			}
			created = o
			return nil
		}

		o, err := c.fulfill(ctx, tx, p, req.Quantity)
		if err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, c.translateError(req, err)
	}

	c.logger.Info("order processed",
		slog.String("order_id", created.ID()),
		slog.String("product_code", created.ProductCode()),
		slog.Int("quantity", created.Quantity()),
		slog.String("type", created.Type().String()),
		slog.String("amount", created.Amount().String()))
	return created, nil
}

// fulfill decrements stock before staging the order; the unit of work restores
// the stock if the order cannot be committed.
func (c *orderCommandsImpl) fulfill(ctx context.Context, tx shared.Tx, p product.Product, quantity int) (*order.Order, error) {
	if !p.CanFulfill(quantity) {
		c.logger.Warn("insufficient stock",
			slog.String("product_code", p.Code()),
			slog.Int("quantity", quantity),
			slog.Int("stock", p.Stock()))
		return nil, errs.Mark(
			errs.Newf("insufficient stock for product %s: requested %d, available %d", p.Code(), quantity, p.Stock()),
			errs.ErrInsufficientStock,
		)
	}

	o, err := c.orderFactory.CreateOrder(p, quantity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidOrder)
	}

	updated, err := p.Decrease(quantity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProcessingFailed)
	}

	if err := tx.UpdateProduct(ctx, updated); err != nil {
		c.logger.Error("stock update failed",
			slog.String("product_code", p.Code()),
			slog.String("error", err.Error()))
		return nil, errs.Mark(err, errs.ErrProcessingFailed)
	}

	if err := tx.AppendOrder(ctx, o); err != nil {
		return nil, errs.Mark(err, errs.ErrProcessingFailed)
	}
	return o, nil
}

func (c *orderCommandsImpl) translateError(req reqdto.CreateOrderRequest, err error) error {
	switch {
	case errs.IsAny(err, errs.ErrInvalidOrder, errs.ErrInsufficientStock, errs.ErrProcessingFailed):
		return err
	case errs.Is(err, shared.ErrTxCommit):
		c.logger.Error("order commit failed",
			slog.String("product_code", req.ProductCode),
			slog.String("error", err.Error()))
		return errs.Mark(err, errs.ErrProcessingFailed)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Newf("product code %s does not exist", req.ProductCode), errs.ErrInvalidOrder)
	default:
		c.logger.Error("order processing failed",
			slog.String("product_code", req.ProductCode),
			slog.String("error", err.Error()))
		return errs.Mark(err, errs.ErrProcessingFailed)
	}
}
