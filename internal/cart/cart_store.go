package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Item is one line in the cart. Quantity is always >= 1 while the item
// is present; an item that would reach 0 is removed instead.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	ImageURL string          `json:"imageUrl,omitempty"`
}

// NewItem is the caller-supplied part of a line item; quantity is owned
// by the store.
type NewItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	ImageURL string
}

// Subscriber receives the full post-mutation item list.
type Subscriber func(items []Item)

// Store holds one cart as an ordered list of items (insertion order is
// what the storefront displays) and notifies subscribers after every
// mutation. Mutation and notification run under the same lock, so a
// subscriber always observes a fully applied state and notifications
// arrive in mutation order.
type Store struct {
	mu     sync.Mutex
	items  []Item
	subs   map[int]Subscriber
	nextID int
}

func NewStore() *Store {
	return &Store{
		items: []Item{},
		subs:  make(map[int]Subscriber),
	}
}

// Subscribe registers fn and returns its unsubscribe handle. fn must not
// call back into the store; it runs inside the store's critical section.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Add merges by item id: an existing line gains quantity 1 and keeps its
// stored name and price, a new line is appended with quantity 1. Always
// succeeds.
func (s *Store) Add(item NewItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			s.notify()
			return
		}
	}

	s.items = append(s.items, Item{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		ImageURL: item.ImageURL,
	})
	s.notify()
}

// Remove deletes the line with the given id. Removing an absent id is
// not an error.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.notify()
}

// SetQuantity sets the line's quantity to an absolute value. A quantity
// of zero or less removes the line. An absent id leaves the list
// unchanged but still notifies.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
		s.notify()
		return
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.notify()
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Item{}
	s.notify()
}

// Items returns a copy of the current lines.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Total is the sum of price*quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Len reports the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// notify runs with s.mu held. Each subscriber gets its own copy so a
// misbehaving callback cannot corrupt the backing slice.
func (s *Store) notify() {
	for _, fn := range s.subs {
		fn(s.snapshot())
	}
}

func (s *Store) snapshot() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}
