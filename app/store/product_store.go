package store

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/velleta/heritage/app/models"
)

// ProductStore owns the local cache of the remote product catalog. The
// cache only changes after a confirmed remote operation; failures leave
// it exactly as it was.
type ProductStore struct {
	mu            sync.RWMutex
	client        *Client
	products      []models.Product
	searchResults []models.Product
	searching     bool
}

func NewProductStore(client *Client) *ProductStore {
	return &ProductStore{client: client}
}

// Fetch replaces the whole cache with the remote collection. No merge.
func (s *ProductStore) Fetch(ctx context.Context) error {
	var products []models.Product
	if err := s.client.get(ctx, "/products", &products, nil); err != nil {
		log.Printf("ProductStore.Fetch: %v", err)
		return err
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

// Create sends the record without an id and appends the confirmed
// server copy. The cache is never touched before confirmation.
func (s *ProductStore) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	product.ID = ""
	var created models.Product
	if err := s.client.post(ctx, "/products", product, &created); err != nil {
		log.Printf("ProductStore.Create: %v", err)
		return nil, err
	}
	if created.ID == "" {
		return nil, fmt.Errorf("%w: create response missing record id", ErrRemote)
	}

	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()
	return &created, nil
}

// Update sends the full record and patches the matching cache entry by
// id. Two racing updates resolve last-write-wins; there is no version
// token to detect the conflict.
func (s *ProductStore) Update(ctx context.Context, product models.Product) (*models.Product, error) {
	var updated models.Product
	if err := s.client.put(ctx, "/products/"+product.ID, product, &updated); err != nil {
		log.Printf("ProductStore.Update: %v", err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return &updated, nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	if err := s.client.delete(ctx, "/products/"+id); err != nil {
		log.Printf("ProductStore.Delete: %v", err)
		return err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Search fills the separate search-results collection; the full cache
// stays loaded so clearing the term reverts without a refetch.
func (s *ProductStore) Search(ctx context.Context, query string) error {
	var results []models.Product
	if err := s.client.get(ctx, "/products/search", &results, map[string]string{"q": query}); err != nil {
		log.Printf("ProductStore.Search: %v", err)
		return err
	}

	s.mu.Lock()
	s.searchResults = results
	s.searching = true
	s.mu.Unlock()
	return nil
}

func (s *ProductStore) ClearSearch() {
	s.mu.Lock()
	s.searchResults = nil
	s.searching = false
	s.mu.Unlock()
}

// Products returns a snapshot of the cached catalog.
func (s *ProductStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Visible is what a listing view shows: search results while a term is
// active, the full collection otherwise.
func (s *ProductStore) Visible() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	source := s.products
	if s.searching {
		source = s.searchResults
	}
	visible := make([]models.Product, len(source))
	copy(visible, source)
	return visible
}

func (s *ProductStore) FindByDesignNo(designNo string) (*models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, product := range s.products {
		if product.DesignNo == designNo {
			p := product
			return &p, true
		}
	}
	return nil, false
}

func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
