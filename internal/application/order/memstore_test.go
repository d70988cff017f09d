package order

import (
	"context"
	"errors"
	"sync"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/repository"
)

// memStore is a transactional in-memory OrderRepository. Each transaction
// works on a copy of the state that replaces it only on success.
type memStore struct {
	mu      sync.Mutex
	state   *memState
	failOn  map[string]error
	txCount int
}

type memState struct {
	products    map[int64]catalog.Product
	clients     map[int64]catalog.Client
	insurances  map[int64]catalog.Insurance
	carriers    map[int64]catalog.Carrier
	taxRates    map[int64]catalog.TaxRate
	borderCosts []catalog.BorderCost
	orders      map[int64]domain.Order
	items       map[int64][]domain.LineItem
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		state: &memState{
			products:   map[int64]catalog.Product{},
			clients:    map[int64]catalog.Client{},
			insurances: map[int64]catalog.Insurance{},
			carriers:   map[int64]catalog.Carrier{},
			taxRates:   map[int64]catalog.TaxRate{},
			orders:     map[int64]domain.Order{},
			items:      map[int64][]domain.LineItem{},
			nextID:     1000,
		},
		failOn: map[string]error{},
	}
}

func (s *memState) clone() *memState {
	c := &memState{
		products:    make(map[int64]catalog.Product, len(s.products)),
		clients:     make(map[int64]catalog.Client, len(s.clients)),
		insurances:  make(map[int64]catalog.Insurance, len(s.insurances)),
		carriers:    make(map[int64]catalog.Carrier, len(s.carriers)),
		taxRates:    make(map[int64]catalog.TaxRate, len(s.taxRates)),
		borderCosts: append([]catalog.BorderCost(nil), s.borderCosts...),
		orders:      make(map[int64]domain.Order, len(s.orders)),
		items:       make(map[int64][]domain.LineItem, len(s.items)),
		nextID:      s.nextID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.insurances {
		c.insurances[k] = v
	}
	for k, v := range s.carriers {
		c.carriers[k] = v
	}
	for k, v := range s.taxRates {
		c.taxRates[k] = v
	}
	for k, v := range s.orders {
		if v.BorderCostID != nil {
			id := *v.BorderCostID
			v.BorderCostID = &id
		}
		c.orders[k] = v
	}
	for k, v := range s.items {
		c.items[k] = append([]domain.LineItem(nil), v...)
	}
	return c
}

func (s *memState) id() int64 {
	s.nextID++
	return s.nextID
}

// expand builds the relational view the postgres reader returns.
func (s *memState) expand(id int64) *domain.Order {
	o, ok := s.orders[id]
	if !ok {
		return nil
	}
	client := s.clients[o.ClientID]
	insurance := s.insurances[o.InsuranceID]
	carrier := s.carriers[o.CarrierID]
	taxRate := s.taxRates[o.TaxRateID]
	o.Client, o.Insurance, o.Carrier, o.TaxRate = &client, &insurance, &carrier, &taxRate
	o.BorderCost = nil
	if o.BorderCostID != nil {
		for _, bc := range s.borderCosts {
			if bc.ID == *o.BorderCostID {
				bc := bc
				o.BorderCost = &bc
			}
		}
	}
	o.Items = []domain.LineItem{}
	for _, it := range s.items[id] {
		p := s.products[it.ProductID]
		it.Product = &p
		o.Items = append(o.Items, it)
	}
	return &o
}

func (m *memStore) WithinTx(ctx context.Context, fn func(tx repository.OrderTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.txCount++
	work := m.state.clone()
	if err := fn(&memTx{s: work, failOn: m.failOn}); err != nil {
		return err
	}
	m.state = work
	return nil
}

func (m *memStore) List(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failOn["List"]; err != nil {
		return nil, err
	}
	out := []domain.Order{}
	for id := range m.state.orders {
		out = append(out, *m.state.expand(id))
	}
	return out, nil
}

func (m *memStore) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.expand(id), nil
}

func (m *memStore) addProduct(p catalog.Product) catalog.Product {
	p.ID = m.state.id()
	m.state.products[p.ID] = p
	return p
}

func (m *memStore) addBorderCost(b catalog.BorderCost) catalog.BorderCost {
	b.ID = m.state.id()
	m.state.borderCosts = append(m.state.borderCosts, b)
	return b
}

func (m *memStore) order(id int64) *domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.expand(id)
}

type memTx struct {
	s      *memState
	failOn map[string]error
}

func (t *memTx) fail(op string) error {
	return t.failOn[op]
}

func (t *memTx) ProductsByID(ctx context.Context, ids []int64) (map[int64]catalog.Product, error) {
	if err := t.fail("ProductsByID"); err != nil {
		return nil, err
	}
	out := map[int64]catalog.Product{}
	for _, id := range ids {
		if p, ok := t.s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (t *memTx) FindClient(ctx context.Context, id int64) (*catalog.Client, error) {
	if c, ok := t.s.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (t *memTx) FindInsurance(ctx context.Context, id int64) (*catalog.Insurance, error) {
	if i, ok := t.s.insurances[id]; ok {
		return &i, nil
	}
	return nil, nil
}

func (t *memTx) FindCarrier(ctx context.Context, id int64) (*catalog.Carrier, error) {
	if c, ok := t.s.carriers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (t *memTx) FindTaxRate(ctx context.Context, id int64) (*catalog.TaxRate, error) {
	if r, ok := t.s.taxRates[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (t *memTx) ListBorderCosts(ctx context.Context) ([]catalog.BorderCost, error) {
	return append([]catalog.BorderCost(nil), t.s.borderCosts...), nil
}

func (t *memTx) LockOrder(ctx context.Context, id int64) (bool, error) {
	_, ok := t.s.orders[id]
	return ok, nil
}

func (t *memTx) InsertOrder(ctx context.Context, o *domain.Order) (int64, error) {
	if err := t.fail("InsertOrder"); err != nil {
		return 0, err
	}
	for _, existing := range t.s.orders {
		if existing.Code == o.Code {
			return 0, errors.New("duplicate order code")
		}
	}
	rec := *o
	rec.ID = t.s.id()
	t.s.orders[rec.ID] = rec
	return rec.ID, nil
}

func (t *memTx) UpdateOrder(ctx context.Context, o *domain.Order) error {
	if err := t.fail("UpdateOrder"); err != nil {
		return err
	}
	t.s.orders[o.ID] = *o
	return nil
}

func (t *memTx) DeleteLineItems(ctx context.Context, orderID int64) (int64, error) {
	n := int64(len(t.s.items[orderID]))
	delete(t.s.items, orderID)
	return n, nil
}

func (t *memTx) InsertLineItems(ctx context.Context, orderID int64, items []domain.LineItem) error {
	if err := t.fail("InsertLineItems"); err != nil {
		return err
	}
	for _, it := range items {
		it.ID = t.s.id()
		it.OrderID = orderID
		t.s.items[orderID] = append(t.s.items[orderID], it)
	}
	return nil
}

func (t *memTx) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	if _, ok := t.s.orders[id]; !ok {
		return false, nil
	}
	delete(t.s.orders, id)
	return true, nil
}

func (t *memTx) FindOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return t.s.expand(id), nil
}
