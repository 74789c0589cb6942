// Package cart implements the shopping cart: an ordered list of line items
// kept consistent with a single persisted blob across every mutation.
package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"swastik-storefront/models"
	"swastik-storefront/pricing"
)

// StorageKey is the key the serialized cart lives under. It is kept stable
// so previously stored carts survive upgrades.
const StorageKey = "swastik_cart"

// Backend is the persisted blob the cart is serialized into. Load's second
// result is false when nothing has ever been stored.
type Backend interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Delete(key string) error
}

// Totals is the cart summary rendered in the cart view and the checkout
// message.
type Totals struct {
	TotalQuantity int     `json:"total_quantity"`
	TotalPrice    float64 `json:"total_price"`
}

// Store holds the cart lines and keeps the backend consistent with memory
// before any mutating call returns. All operations are safe for concurrent
// use; the mutex serializes every read-modify-write cycle.
type Store struct {
	mu      sync.Mutex
	backend Backend
	lines   []models.CartLine
	subs    []func()
}

// NewStore loads the persisted cart. A missing or malformed blob is an
// empty cart, never an error.
func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}
	s.lines = s.load()
	return s
}

func (s *Store) load() []models.CartLine {
	blob, ok, err := s.backend.Load(StorageKey)
	if err != nil {
		log.Printf("cart: load failed, starting empty: %v", err)
		return nil
	}
	if !ok || blob == "" {
		return nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(blob), &lines); err != nil {
		log.Printf("cart: discarding malformed stored cart: %v", err)
		return nil
	}
	// Old blobs may predate line ids or carry zero quantities; repair on
	// the way in so every line is addressable and >= 1.
	kept := lines[:0]
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		if line.LineID == uuid.Nil {
			line.LineID = uuid.New()
		}
		kept = append(kept, line)
	}
	return kept
}

// Add folds a product into the cart: an existing line for the same product
// id gains one unit, otherwise a new line with quantity 1 and the given
// snapshot is appended.
func (s *Store) Add(productID models.ProductID, snap models.CartSnapshot) (models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity++
			if err := s.persist(); err != nil {
				s.lines[i].Quantity--
				return models.CartLine{}, err
			}
			line := s.lines[i]
			s.notify()
			return line, nil
		}
	}

	line := models.CartLine{
		LineID:    uuid.New(),
		ProductID: productID,
		Quantity:  1,
		Name:      snap.Name,
		Price:     snap.Price,
		Image:     snap.Image,
	}
	s.lines = append(s.lines, line)
	if err := s.persist(); err != nil {
		s.lines = s.lines[:len(s.lines)-1]
		return models.CartLine{}, err
	}
	s.notify()
	return line, nil
}

// Increase adds one unit to the identified line. Unknown ids are no-ops.
func (s *Store) Increase(lineID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(lineID)
	if i < 0 {
		return nil
	}
	s.lines[i].Quantity++
	if err := s.persist(); err != nil {
		s.lines[i].Quantity--
		return err
	}
	s.notify()
	return nil
}

// Decrease removes one unit; a line at quantity 1 is deleted rather than
// ever being stored at zero. Unknown ids are no-ops.
func (s *Store) Decrease(lineID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(lineID)
	if i < 0 {
		return nil
	}
	if s.lines[i].Quantity <= 1 {
		return s.removeAt(i)
	}
	s.lines[i].Quantity--
	if err := s.persist(); err != nil {
		s.lines[i].Quantity++
		return err
	}
	s.notify()
	return nil
}

// Remove deletes the identified line. Removing an already-removed line is a
// no-op and never disturbs the remaining lines.
func (s *Store) Remove(lineID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(lineID)
	if i < 0 {
		return nil
	}
	return s.removeAt(i)
}

func (s *Store) removeAt(i int) error {
	removed := s.lines[i]
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	if err := s.persist(); err != nil {
		s.lines = append(s.lines[:i], append([]models.CartLine{removed}, s.lines[i:]...)...)
		return err
	}
	s.notify()
	return nil
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.lines...)
}

// Len reports how many distinct lines the cart holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Totals sums quantities and parsed line prices. Price accumulation runs on
// decimals so quantity multiples of paise-precise amounts never drift.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var qty int
	total := decimal.Zero
	for _, line := range s.lines {
		qty += line.Quantity
		price := decimal.NewFromFloat(pricing.ParseAmount(line.Price))
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	price, _ := total.Float64()
	return Totals{TotalQuantity: qty, TotalPrice: price}
}

// Reload rereads the persisted blob, dropping in-memory state. Another
// process may have rewritten the blob in the meantime; reconciliation is
// opportunistic, last writer wins.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = s.load()
	s.notify()
}

// Subscribe registers a callback invoked after every successful mutation,
// so badges and summaries can refresh without polling. Callbacks must not
// call back into the store.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) index(lineID uuid.UUID) int {
	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			return i
		}
	}
	return -1
}

// persist writes the full line list before the mutating call returns, so
// the stored blob is never ahead of or behind memory.
func (s *Store) persist() error {
	if len(s.lines) == 0 {
		return s.backend.Delete(StorageKey)
	}
	blob, err := json.Marshal(s.lines)
	if err != nil {
		return err
	}
	return s.backend.Save(StorageKey, string(blob))
}

// notify runs with the store mutex held; subscribers get a consistent view
// but must not call back into the store.
func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}
