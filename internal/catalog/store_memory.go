package catalog

import "sync"

// MemStore keeps products in insertion order. mu guards both the slice and
// nextID; they must never be split across locks.
type MemStore struct {
	mu       sync.Mutex
	products []Product
	nextID   int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		products: make([]Product, 0, 16),
		nextID:   1,
	}
}

func (s *MemStore) List() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemStore) Create(f ProductFields) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.products = append(s.products, f.product(id))
	s.nextID++
	return id
}

func (s *MemStore) Update(id int64, f ProductFields) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products[i] = f.product(id)
	return true
}

func (s *MemStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return true
}

func (s *MemStore) Get(id int64) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, false
	}
	return s.products[i], true
}

func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.products)
}

// indexOf is a linear scan by id. Callers hold mu.
func (s *MemStore) indexOf(id int64) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
