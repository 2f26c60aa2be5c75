package service

import (
	"context"
	"testing"

	"toy-store-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ledgerFixture struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
	history  *fakeHistoryRepo
	ledger   *StockLedger
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		orders:   newFakeOrderRepo(),
		products: newFakeProductRepo(),
		history:  newFakeHistoryRepo(),
	}
	f.ledger = NewStockLedger(f.orders, f.products, f.history, zap.NewNop())
	return f
}

func (f *ledgerFixture) seedProduct(t *testing.T, name string, stock int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Stock: stock}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *ledgerFixture) seedOrder(t *testing.T, items ...model.OrderItem) *model.Order {
	t.Helper()
	o := &model.Order{OrderItems: items, DeliveryStatus: model.StatusPending}
	require.NoError(t, f.orders.Create(context.Background(), o))
	return o
}

func TestStockLedger_DeductOnPayment(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	p := f.seedProduct(t, "RX-78-2", 10)
	order := f.seedOrder(t, model.OrderItem{Name: p.Name, Qty: 3, Product: p.ID.Hex()})

	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))

	assert.Equal(t, 7, f.products.stock(p.ID))
	assert.True(t, order.StockDeducted)

	saved, err := f.orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, saved.StockDeducted, "la marca de descuento tiene que quedar persistida")

	moves, err := f.history.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, model.StockOut, moves[0].Type)
	assert.Equal(t, 3, moves[0].Quantity)
	require.NotNil(t, moves[0].Order)
	assert.Equal(t, order.ID, *moves[0].Order)
}

func TestStockLedger_DeductEsIdempotente(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	p := f.seedProduct(t, "Zaku II", 5)
	order := f.seedOrder(t, model.OrderItem{Name: p.Name, Qty: 2, Product: p.ID.Hex()})

	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))
	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))
	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))

	assert.Equal(t, 3, f.products.stock(p.ID), "el segundo descuento no debe aplicar")

	moves, err := f.history.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}

func TestStockLedger_DeductSalteaItemsSinStock(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	scarce := f.seedProduct(t, "Escaso", 1)
	plenty := f.seedProduct(t, "Abundante", 10)
	order := f.seedOrder(t,
		model.OrderItem{Name: scarce.Name, Qty: 5, Product: scarce.ID.Hex()},
		model.OrderItem{Name: plenty.Name, Qty: 2, Product: plenty.ID.Hex()},
	)

	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))

	assert.Equal(t, 1, f.products.stock(scarce.ID), "el item sin stock se saltea")
	assert.Equal(t, 8, f.products.stock(plenty.ID))
	assert.True(t, order.StockDeducted, "la orden queda marcada igual")
}

func TestStockLedger_DeductSalteaReferenciasIrresolubles(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	p := f.seedProduct(t, "Real", 4)
	order := f.seedOrder(t,
		model.OrderItem{Name: "ref inválida", Qty: 1, Product: "no-es-un-objectid"},
		model.OrderItem{Name: "borrado", Qty: 1, Product: "ffffffffffffffffffffffff"},
		model.OrderItem{Name: p.Name, Qty: 1, Product: p.ID.Hex()},
	)

	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))

	assert.Equal(t, 3, f.products.stock(p.ID))
	assert.True(t, order.StockDeducted)
}

func TestStockLedger_DeductSinItemsNoHaceNada(t *testing.T) {
	f := newLedgerFixture()
	order := f.seedOrder(t)

	require.NoError(t, f.ledger.DeductOnPayment(context.Background(), order))
	assert.False(t, order.StockDeducted)
}

func TestStockLedger_RestoreSinDescuentoPrevioNoHaceNada(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	p := f.seedProduct(t, "Intacto", 6)
	order := f.seedOrder(t, model.OrderItem{Name: p.Name, Qty: 2, Product: p.ID.Hex()})

	require.NoError(t, f.ledger.Restore(ctx, order))

	assert.Equal(t, 6, f.products.stock(p.ID))

	moves, err := f.history.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestStockLedger_RoundTripBalanceado(t *testing.T) {
	f := newLedgerFixture()
	ctx := context.Background()

	p := f.seedProduct(t, "Ciclo", 10)
	order := f.seedOrder(t, model.OrderItem{Name: p.Name, Qty: 4, Product: p.ID.Hex()})

	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))
	assert.Equal(t, 6, f.products.stock(p.ID))

	require.NoError(t, f.ledger.Restore(ctx, order))
	assert.Equal(t, 10, f.products.stock(p.ID))
	assert.False(t, order.StockDeducted)

	// Un nuevo descuento vuelve a aplicar: la marca quedó en false.
	require.NoError(t, f.ledger.DeductOnPayment(ctx, order))
	assert.Equal(t, 6, f.products.stock(p.ID))

	moves, err := f.history.FindByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, moves, 3)
}
