package service

import (
	"context"
	"sync"
	"time"

	"toy-store-backend/internal/model"
	"toy-store-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fakes en memoria de los repositorios. Guardan copias, como haría la base:
// una mutación que no pasó por Save no se ve en la siguiente lectura.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[primitive.ObjectID]model.Order{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) Save(ctx context.Context, o *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[o.ID]; !ok {
		return repository.ErrNotFound
	}
	o.UpdatedAt = time.Now().UTC()
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOrderRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Order
	for _, o := range f.orders {
		if o.User == userID {
			v := o
			out = append(out, &v)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Order
	for _, o := range f.orders {
		v := o
		out = append(out, &v)
	}
	return out, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[primitive.ObjectID]model.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) Save(ctx context.Context, p *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) FindPage(ctx context.Context, page, limit int) ([]*model.Product, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Product
	for _, p := range f.products {
		v := p
		out = append(out, &v)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) stock(id primitive.ObjectID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products[id].Stock
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Save(ctx context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			v := u
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			v := u
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.User
	for _, u := range f.users {
		v := u
		out = append(out, &v)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	records []model.StockHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo { return &fakeHistoryRepo{} }

func (f *fakeHistoryRepo) Create(ctx context.Context, h *model.StockHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	h.ID = primitive.NewObjectID()
	h.CreatedAt = time.Now().UTC()
	f.records = append(f.records, *h)
	return nil
}

func (f *fakeHistoryRepo) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]*model.StockHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.StockHistory
	for _, h := range f.records {
		if h.Product == productID {
			v := h
			out = append(out, &v)
		}
	}
	return out, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (f *fakePublisher) PublishOrderEvent(event string, o *model.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakePublisher) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}
