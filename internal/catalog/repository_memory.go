package catalog

import (
	"errors"
	"strconv"
	"sync"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/money"
)

var ErrProductNotFound = errors.New("product not found")

type InMemoryRepository struct {
	mu       sync.RWMutex
	order    []string
	products map[string]*Product
}

func NewInMemoryRepository(products []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		products: make(map[string]*Product, len(products)),
	}
	for i := range products {
		p := products[i]
		r.order = append(r.order, p.ID)
		r.products[p.ID] = &p
	}
	return r
}

// DefaultProducts is the fixed Magic Coffee drink list.
func DefaultProducts() []Product {
	base := money.MustParse("3.00")
	names := []string{"Americano", "Cappuccino", "Latte", "Flat White", "Raf", "Espresso"}
	products := make([]Product, 0, len(names))
	for i, name := range names {
		products = append(products, Product{
			ID:        strconv.Itoa(i + 1),
			Name:      name,
			BasePrice: base,
		})
	}
	return products
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.products[id])
	}
	return out
}

func (r *InMemoryRepository) FindByID(id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryRepository) SetImageURL(id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.ImageURL = url
	return nil
}
