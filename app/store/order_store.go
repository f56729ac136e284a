package store

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/velleta/heritage/app/models"
)

// OrderStore owns the local cache of the remote order collection. Same
// contract as the product store: confirmed operations only, failures
// leave the cache unchanged, searches live in their own collection.
type OrderStore struct {
	mu            sync.RWMutex
	client        *Client
	orders        []models.Order
	searchResults []models.Order
	searching     bool
}

func NewOrderStore(client *Client) *OrderStore {
	return &OrderStore{client: client}
}

func (s *OrderStore) Fetch(ctx context.Context) error {
	var docs []orderDoc
	if err := s.client.get(ctx, "/orders", &docs, nil); err != nil {
		log.Printf("OrderStore.Fetch: %v", err)
		return err
	}

	s.mu.Lock()
	s.orders = toModels(docs)
	s.mu.Unlock()
	return nil
}

func (s *OrderStore) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	order.ID = ""
	var created orderDoc
	if err := s.client.post(ctx, "/orders", toOrderDoc(order), &created); err != nil {
		log.Printf("OrderStore.Create: %v", err)
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: create response missing record id", ErrRemote)
	}

	confirmed := created.toModel()
	s.mu.Lock()
	s.orders = append(s.orders, confirmed)
	s.mu.Unlock()
	return &confirmed, nil
}

func (s *OrderStore) Update(ctx context.Context, order models.Order) (*models.Order, error) {
	var updated orderDoc
	if err := s.client.put(ctx, "/orders/"+order.ID, toOrderDoc(order), &updated); err != nil {
		log.Printf("OrderStore.Update: %v", err)
		return nil, err
	}

	confirmed := updated.toModel()
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == confirmed.ID {
			s.orders[i] = confirmed
			break
		}
	}
	s.mu.Unlock()
	return &confirmed, nil
}

func (s *OrderStore) Delete(ctx context.Context, id string) error {
	if err := s.client.delete(ctx, "/orders/"+id); err != nil {
		log.Printf("OrderStore.Delete: %v", err)
		return err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *OrderStore) Search(ctx context.Context, query string) error {
	var docs []orderDoc
	if err := s.client.get(ctx, "/orders/search", &docs, map[string]string{"q": query}); err != nil {
		log.Printf("OrderStore.Search: %v", err)
		return err
	}

	s.mu.Lock()
	s.searchResults = toModels(docs)
	s.searching = true
	s.mu.Unlock()
	return nil
}

func (s *OrderStore) ClearSearch() {
	s.mu.Lock()
	s.searchResults = nil
	s.searching = false
	s.mu.Unlock()
}

func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

func (s *OrderStore) Visible() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	source := s.orders
	if s.searching {
		source = s.searchResults
	}
	visible := make([]models.Order, len(source))
	copy(visible, source)
	return visible
}

func (s *OrderStore) FindByID(id string) (*models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == id {
			o := order
			return &o, true
		}
	}
	return nil, false
}

func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
