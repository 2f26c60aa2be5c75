package service

import (
	"context"
	"math"
	"regexp"
	"strings"
	"time"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Ventana para pedir la devolución de una orden entregada.
const returnWindowHours = 24

var bankAccountRegex = regexp.MustCompile(`^\d{8,20}$`)

type OrderService struct {
	orders   OrderRepository
	products ProductRepository
	ledger   *StockLedger
	events   EventPublisher
	logger   *zap.Logger
}

func NewOrderService(orders OrderRepository, products ProductRepository, ledger *StockLedger, events EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		ledger:   ledger,
		events:   events,
		logger:   logger,
	}
}

// CreateOrder da de alta la orden del checkout. Con pago por tarjeta la orden
// nace paga y se descuenta el stock en el momento.
func (s *OrderService) CreateOrder(ctx context.Context, actor model.Principal, req dto.CreateOrderRequest) (*model.Order, error) {
	userID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, ruleErr("Usuario inválido")
	}

	if len(req.OrderItems) == 0 {
		return nil, ruleErr("La orden debe tener al menos un item")
	}

	items := make([]model.OrderItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, model.OrderItem{
			Name:    it.Name,
			Qty:     it.Qty,
			Image:   it.Image,
			Price:   it.Price,
			Product: strings.TrimSpace(it.Product),
		})
	}

	// Verificación previa de stock, solo sobre referencias resolubles.
	for _, it := range items {
		id, err := primitive.ObjectIDFromHex(it.Product)
		if err != nil {
			continue
		}
		product, err := s.products.FindByID(ctx, id)
		if isNotFound(err) {
			return nil, ruleErr("El producto no existe: %s", it.Name)
		}
		if err != nil {
			return nil, err
		}
		if product.Stock < it.Qty {
			return nil, ruleErr("No hay stock suficiente para: %s", it.Name)
		}
	}

	isPaid := req.PaymentMethod == "CARD"

	order := &model.Order{
		User:            userID,
		OrderItems:      items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentResult:   req.PaymentResult,
		ItemsPrice:      req.ItemsPrice,
		ShippingPrice:   req.ShippingPrice,
		TaxPrice:        req.TaxPrice,
		CouponCode:      req.CouponCode,
		CouponDiscount:  req.CouponDiscount,
		TotalPrice:      req.TotalPrice,
		IsPaid:          isPaid,
		StockDeducted:   false,
		DeliveryStatus:  model.StatusPending,
	}
	if isPaid {
		now := time.Now()
		order.PaidAt = &now
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if isPaid {
		if err := s.ledger.DeductOnPayment(ctx, order); err != nil {
			return nil, err
		}
	}

	s.events.PublishOrderEvent("order.created", order)
	return order, nil
}

func (s *OrderService) GetMyOrders(ctx context.Context, actor model.Principal) ([]*model.Order, error) {
	userID, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, ruleErr("Usuario inválido")
	}
	return s.orders.FindByUserID(ctx, userID)
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ruleErr("Id de orden inválido")
	}
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orders.FindAll(ctx)
}

// RequestCancel registra el pedido de cancelación del cliente y repone el
// stock de inmediato, antes de que el admin confirme. Si el admin después
// rechaza una orden paga, el stock se vuelve a descontar.
func (s *OrderService) RequestCancel(ctx context.Context, actor model.Principal, orderID, reason string) (*model.Order, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.User.Hex() != actor.ID {
		s.logger.Warn("intento de cancelar una orden ajena",
			zap.String("order_id", orderID),
			zap.String("order_user", order.User.Hex()),
			zap.String("actor", actor.ID))
		return nil, ErrForbidden
	}

	if order.IsDelivered {
		return nil, ruleErr("No se puede cancelar una orden ya entregada")
	}
	if order.IsCancelled {
		return nil, ruleErr("La orden ya fue cancelada")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ruleErr("Ingresá el motivo de la cancelación")
	}

	now := time.Now()
	order.IsCancelled = true
	order.CancelReason = reason
	order.CancelRequestedAt = &now
	order.CancelStatus = model.RequestPending

	if err := s.ledger.Restore(ctx, order); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.events.PublishOrderEvent("order.cancel_requested", order)
	return order, nil
}

// RequestReturn registra el pedido de devolución. Solo dentro de las 24 horas
// posteriores a la entrega. El stock no se toca acá: recién se repone cuando
// el admin aprueba.
func (s *OrderService) RequestReturn(ctx context.Context, actor model.Principal, orderID, reason, bankAccount string) (*model.Order, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.User.Hex() != actor.ID {
		s.logger.Warn("intento de devolver una orden ajena",
			zap.String("order_id", orderID),
			zap.String("order_user", order.User.Hex()),
			zap.String("actor", actor.ID))
		return nil, ErrForbidden
	}

	if !order.IsDelivered && order.DeliveryStatus != model.StatusDelivered {
		return nil, ruleErr("Solo se pueden devolver órdenes ya entregadas")
	}
	if order.DeliveredAt == nil {
		return nil, ruleErr("No se puede determinar la fecha de entrega")
	}

	hoursSinceDelivery := time.Since(*order.DeliveredAt).Hours()
	if hoursSinceDelivery > returnWindowHours {
		return nil, ruleErr(
			"Solo se puede devolver una orden dentro de las 24 horas posteriores a la entrega. La orden fue entregada hace %d horas.",
			int(math.Floor(hoursSinceDelivery)),
		)
	}

	if order.IsReturnRequested {
		return nil, ruleErr("El pedido de devolución ya fue enviado")
	}
	if order.IsCancelled && order.CancelStatus == model.RequestApproved {
		return nil, ruleErr("No se puede devolver una orden cancelada")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ruleErr("Ingresá el motivo de la devolución")
	}

	bankAccount = strings.TrimSpace(bankAccount)
	if bankAccount == "" {
		return nil, ruleErr("Ingresá el número de cuenta bancaria para el reintegro")
	}
	if !bankAccountRegex.MatchString(bankAccount) {
		return nil, ruleErr("Número de cuenta bancaria no válido (debe tener entre 8 y 20 dígitos)")
	}

	now := time.Now()
	order.IsReturnRequested = true
	order.ReturnReason = reason
	order.ReturnBankAccount = bankAccount
	order.ReturnRequestedAt = &now
	order.ReturnStatus = model.RequestPending

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.events.PublishOrderEvent("order.return_requested", order)
	return order, nil
}

// UpdateOrderStatus es la operación de back-office: pago, estado de entrega,
// resolución de cancelaciones y devoluciones, y cancelación forzada. Todas
// las validaciones corren antes de persistir la orden.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, actor model.Principal, orderID string, req dto.UpdateOrderStatusRequest) (*model.Order, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Una cancelación aprobada es terminal.
	if order.IsCancelled && order.CancelStatus == model.RequestApproved {
		if req.CancelStatus != nil && model.RequestStatus(*req.CancelStatus).IsResolution() {
			return nil, ruleErr("La orden ya fue cancelada, no se puede repetir la operación")
		}
		return nil, ruleErr("La orden ya fue cancelada, no se puede actualizar su estado")
	}

	// Resolución de la devolución. Aprobar fuerza el retiro, anula el pago
	// y repone el stock; rechazar solo registra el estado.
	returnJustApproved := false
	if req.ReturnStatus != nil && model.RequestStatus(*req.ReturnStatus).IsResolution() && order.IsReturnRequested {
		previous := order.ReturnStatus
		order.ReturnStatus = model.RequestStatus(*req.ReturnStatus)

		if order.ReturnStatus == model.RequestApproved && previous != model.RequestApproved {
			now := time.Now()
			order.ReturnProcessedAt = &now
			order.DeliveryStatus = model.StatusReturningPickup
			order.IsPaid = false
			order.PaidAt = nil
			if err := s.ledger.Restore(ctx, order); err != nil {
				return nil, err
			}
			returnJustApproved = true
		}
	}

	// Cambio directo del estado de pago, con efecto simétrico sobre el stock.
	if req.IsPaid != nil {
		wasPaid := order.IsPaid
		order.IsPaid = *req.IsPaid
		if order.IsPaid {
			now := time.Now()
			order.PaidAt = &now
		} else {
			order.PaidAt = nil
		}

		if order.IsPaid && !wasPaid && !order.StockDeducted {
			if err := s.ledger.DeductOnPayment(ctx, order); err != nil {
				return nil, err
			}
		}
		if !order.IsPaid && wasPaid && order.StockDeducted {
			if err := s.ledger.Restore(ctx, order); err != nil {
				return nil, err
			}
		}
	}

	// Transición de estado de entrega, aplicada una sola vez. Si la
	// aprobación de la devolución ya forzó returning_pickup en este mismo
	// request, el deliveryStatus del body se ignora.
	if req.DeliveryStatus != nil && !returnJustApproved {
		next, err := NextDeliveryStatus(order.DeliveryStatus, model.DeliveryStatus(*req.DeliveryStatus))
		if err != nil {
			return nil, err
		}
		order.DeliveryStatus = next
		if next == model.StatusDelivered {
			now := time.Now()
			order.IsDelivered = true
			order.DeliveredAt = &now
		}
	}

	// Soporte legacy: isDelivered sin deliveryStatus.
	if req.IsDelivered != nil && req.DeliveryStatus == nil {
		if *req.IsDelivered && order.DeliveryStatus != model.StatusDelivered {
			now := time.Now()
			order.DeliveryStatus = model.StatusDelivered
			order.DeliveredAt = &now
		}
		order.IsDelivered = *req.IsDelivered
		if !order.IsDelivered {
			order.DeliveredAt = nil
		}
	}

	// Resolución de la cancelación pedida por el cliente.
	if req.CancelStatus != nil && model.RequestStatus(*req.CancelStatus).IsResolution() && order.IsCancelled {
		previous := order.CancelStatus
		order.CancelStatus = model.RequestStatus(*req.CancelStatus)

		if order.CancelStatus == model.RequestApproved && previous != model.RequestApproved {
			if err := s.ledger.Restore(ctx, order); err != nil {
				return nil, err
			}
		}

		// Rechazo de una orden paga: retoma el circuito normal, se vuelve
		// a descontar el stock que la solicitud había repuesto.
		if order.CancelStatus == model.RequestRejected && previous == model.RequestPending && order.IsPaid && !order.StockDeducted {
			if err := s.ledger.DeductOnPayment(ctx, order); err != nil {
				return nil, err
			}
		}
	}

	// Cancelación forzada por el admin: queda aprobada de entrada.
	if strings.TrimSpace(req.CancelReason) != "" && actor.IsAdmin {
		wasAlreadyCancelled := order.IsCancelled
		now := time.Now()
		order.IsCancelled = true
		order.CancelReason = strings.TrimSpace(req.CancelReason)
		order.CancelRequestedAt = &now
		order.CancelStatus = model.RequestApproved

		if !wasAlreadyCancelled {
			if err := s.ledger.Restore(ctx, order); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.events.PublishOrderEvent("order.status_updated", order)
	return order, nil
}
