package service

import (
	"context"
	"errors"
	"strings"

	"toy-store-backend/internal/model"
	"toy-store-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// StockLedger aplica y revierte el efecto de una orden sobre el stock de los
// productos. Cada producto se persiste por separado, no hay transacción que
// abarque orden + productos: un corte a mitad del loop deja efectos parciales.
// Brecha de consistencia conocida, no es una feature.
type StockLedger struct {
	orders   OrderRepository
	products ProductRepository
	history  StockHistoryRepository
	logger   *zap.Logger
}

func NewStockLedger(orders OrderRepository, products ProductRepository, history StockHistoryRepository, logger *zap.Logger) *StockLedger {
	return &StockLedger{orders: orders, products: products, history: history, logger: logger}
}

// resolve busca el producto referido por un item. Los items con referencia
// inválida o producto inexistente se saltean, no hacen fallar la orden.
func (l *StockLedger) resolve(ctx context.Context, ref string) (*model.Product, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, nil
	}
	product, err := l.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeductOnPayment descuenta el stock de cada item de la orden. No hace nada
// si ya fue descontado o si la orden no tiene items. Los items sin stock
// suficiente se saltean; la orden queda igual marcada como descontada.
func (l *StockLedger) DeductOnPayment(ctx context.Context, order *model.Order) error {
	if order.StockDeducted {
		return nil
	}
	if len(order.OrderItems) == 0 {
		return nil
	}

	for _, item := range order.OrderItems {
		product, err := l.resolve(ctx, item.Product)
		if err != nil {
			return err
		}
		if product == nil {
			continue
		}

		if product.Stock < item.Qty {
			l.logger.Warn("stock insuficiente, se saltea el item",
				zap.String("order_id", order.ID.Hex()),
				zap.String("product_id", product.ID.Hex()),
				zap.Int("stock", product.Stock),
				zap.Int("qty", item.Qty))
			continue
		}

		product.Stock -= item.Qty
		if err := l.products.Save(ctx, product); err != nil {
			return err
		}
		l.record(ctx, product, model.StockOut, item.Qty, "Descuento por pago de orden", order)
	}

	order.StockDeducted = true
	return l.orders.Save(ctx, order)
}

// Restore repone el stock de cada item. No hace nada si el stock de esta
// orden no estaba descontado. La reposición es incondicional (suma).
func (l *StockLedger) Restore(ctx context.Context, order *model.Order) error {
	if !order.StockDeducted {
		return nil
	}
	if len(order.OrderItems) == 0 {
		return nil
	}

	for _, item := range order.OrderItems {
		product, err := l.resolve(ctx, item.Product)
		if err != nil {
			return err
		}
		if product == nil {
			continue
		}

		product.Stock += item.Qty
		if err := l.products.Save(ctx, product); err != nil {
			return err
		}
		l.record(ctx, product, model.StockIn, item.Qty, "Reposición por cancelación o devolución", order)
	}

	order.StockDeducted = false
	return l.orders.Save(ctx, order)
}

// record deja el rastro en el historial de stock. Es best-effort: si falla
// solo se loguea, el movimiento de stock ya quedó aplicado.
func (l *StockLedger) record(ctx context.Context, product *model.Product, typ model.StockMovement, qty int, reason string, order *model.Order) {
	h := &model.StockHistory{
		Product:  product.ID,
		Type:     typ,
		Quantity: qty,
		Reason:   reason,
	}
	if order != nil {
		orderID := order.ID
		h.Order = &orderID
	}
	if err := l.history.Create(ctx, h); err != nil {
		l.logger.Error("no se pudo registrar el movimiento de stock",
			zap.String("product_id", product.ID.Hex()),
			zap.Error(err))
	}
}
