package repository

import (
	"sync"

	"github.com/advisorhub/agentcrm/models"
	"github.com/advisorhub/agentcrm/utils"
)

// CustomerStore owns the in-memory, ordered customer book. All state is
// volatile for the process lifetime; records are read as copies and written
// back by whole-record replacement only.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []models.Customer
}

// NewCustomerStore creates a store over the given seed records.
func NewCustomerStore(seed []models.Customer) *CustomerStore {
	customers := make([]models.Customer, 0, len(seed))
	for _, c := range seed {
		customers = append(customers, c.Clone())
	}
	return &CustomerStore{customers: customers}
}

// List returns the customers in insertion order as deep copies.
func (s *CustomerStore) List() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c.Clone())
	}
	return out
}

// Get returns the customer with the given id.
func (s *CustomerStore) Get(id int) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return models.Customer{}, false
}

// Replace commits an updated record over the existing one with the same id,
// keeping its position. Returns false when the id is not present.
func (s *CustomerStore) Replace(customer models.Customer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.customers {
		if c.ID == customer.ID {
			s.customers[i] = customer.Clone()
			return true
		}
	}
	return false
}

// Prepend inserts a new record at the front of the book, matching the
// creation flow where the newest customer lists first.
func (s *CustomerStore) Prepend(customer models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append([]models.Customer{customer.Clone()}, s.customers...)
}

// MaxID returns the highest customer id, 0 for an empty book.
func (s *CustomerStore) MaxID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	max := 0
	for _, c := range s.customers {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}

// Len returns the number of customers.
func (s *CustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// AgentStore holds the single advisor profile.
type AgentStore struct {
	mu    sync.RWMutex
	agent models.Agent
}

// NewAgentStore creates a store over the seeded advisor profile.
func NewAgentStore(agent models.Agent) *AgentStore {
	return &AgentStore{agent: agent}
}

// Get returns the advisor profile.
func (s *AgentStore) Get() models.Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agent
}

// Update replaces the advisor profile.
func (s *AgentStore) Update(agent models.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agent = agent
}

var (
	customerStore *CustomerStore
	agentStore    *AgentStore
)

// InitStores seeds the in-memory stores. seedFile may override the embedded
// book, mainly for local experiments.
func InitStores(seedFile string) error {
	seed, err := LoadSeed(seedFile)
	if err != nil {
		return err
	}

	customerStore = NewCustomerStore(seed.Customers)
	agentStore = NewAgentStore(seed.Agent)

	utils.Logger.Info().
		Int("customers", customerStore.Len()).
		Str("advisor", seed.Agent.Name).
		Msg("stores seeded")
	return nil
}

// Customers returns the process-wide customer store.
func Customers() *CustomerStore {
	return customerStore
}

// AgentProfile returns the process-wide advisor store.
func AgentProfile() *AgentStore {
	return agentStore
}
