package catalog

import (
	"context"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/garage-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/garage-scheduler/internal/domain/ident"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/notify"
)

// ======================================================
// STORE
// ======================================================

// Store owns services, categories and clients. It knows nothing about
// appointments; the scheduler only reads durations through it.
type Store struct {
	mu sync.RWMutex

	services   []models.Service
	categories []models.ServiceCategory
	clients    []models.Client

	repo     catalog.Repository
	notify   notify.Sink
	ids      *ident.Generator
	collator *collate.Collator
}

func NewStore(
	repo catalog.Repository,
	sink notify.Sink,
	ids *ident.Generator,
	seed Seed,
) *Store {
	if sink == nil {
		sink = notify.Log{}
	}
	if ids == nil {
		ids = ident.NewGenerator(nil)
	}

	s := &Store{
		categories: slices.Clone(seed.Categories),
		clients:    slices.Clone(seed.Clients),
		repo:       repo,
		notify:     sink,
		ids:        ids,
		collator:   collate.New(language.Und, collate.IgnoreCase),
	}
	s.replaceServices(seed.Services)
	return s
}

// Load replaces the seeded services with the persisted list, when there
// is one. On a read error the seed stays in place and the error is
// returned for the caller to report.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	services, found, err := s.repo.LoadServices(ctx)
	if err != nil {
		log.Printf("catalog: failed to load services, keeping defaults: %v", err)
		return err
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceServices(services)
	return nil
}

// Save writes the current service list, e.g. after a migration.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.repo == nil {
		return nil
	}
	return s.repo.SaveServices(ctx, slices.Clone(s.services))
}

func (s *Store) replaceServices(services []models.Service) {
	s.services = slices.Clone(services)
	for _, svc := range s.services {
		s.ids.Observe(svc.ID)
	}
}

// ======================================================
// SERVICE MUTATIONS
// ======================================================

func (s *Store) AddService(ctx context.Context, in catalog.NewService) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc := in.Build(s.ids.Next())
	s.services = append(s.services, svc)
	s.sortByName()
	s.persist(ctx)

	s.notify.Notify("Service added.")
	return svc, nil
}

func (s *Store) UpdateService(ctx context.Context, in catalog.ExistingService) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(in.ID)
	if i < 0 {
		return models.Service{}, catalog.ErrServiceNotFound
	}

	svc := in.Build(in.ID)
	s.services[i] = svc
	s.sortByName()
	s.persist(ctx)

	s.notify.Notify("Service updated.")
	return svc, nil
}

// SaveService adds or updates depending on the variant.
func (s *Store) SaveService(ctx context.Context, change catalog.ServiceChange) (models.Service, error) {
	switch ch := change.(type) {
	case catalog.NewService:
		return s.AddService(ctx, ch)
	case catalog.ExistingService:
		return s.UpdateService(ctx, ch)
	default:
		return models.Service{}, catalog.ErrServiceNotFound
	}
}

// DeleteService removes the service. Appointments that reference it keep
// their ids untouched.
func (s *Store) DeleteService(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}

	s.services = slices.Delete(s.services, i, i+1)
	s.persist(ctx)

	s.notify.Notify("Service deleted.")
	return true
}

// saveTimeout bounds a write once the mutation is already in memory.
const saveTimeout = 10 * time.Second

// persist outlives the caller's cancellation: the in-memory change has
// already been made and reported.
func (s *Store) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()

	if err := s.repo.SaveServices(ctx, slices.Clone(s.services)); err != nil {
		log.Printf("catalog: failed to save services: %v", err)
	}
}

func (s *Store) sortByName() {
	slices.SortStableFunc(s.services, func(a, b models.Service) int {
		return s.collator.CompareString(a.Name, b.Name)
	})
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.services, func(svc models.Service) bool {
		return svc.ID == id
	})
}

// ======================================================
// DURATIONS
// ======================================================

// LookupDurations sums the durations of the services found among ids.
// Unknown ids are skipped.
func (s *Store) LookupDurations(ids []int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, svc := range s.services {
		if slices.Contains(ids, svc.ID) {
			total += svc.Duration
		}
	}
	return total
}

// ResolveServices returns the services for ids in request order. Any
// unknown id fails the whole lookup; repeated ids resolve once.
func (s *Store) ResolveServices(ids []int64) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		i := s.index(id)
		if i < 0 {
			return nil, catalog.ErrUnknownService
		}
		out = append(out, s.services[i])
	}
	return out, nil
}

// ======================================================
// READS
// ======================================================

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.services)
}

func (s *Store) Service(id int64) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.services[i], true
	}
	return models.Service{}, false
}

// FilterServices narrows by category slug and by a case-insensitive
// match on name or description. Empty arguments do not filter.
func (s *Store) FilterServices(categorySlug, query string) []models.Service {
	categorySlug = strings.ToLower(strings.TrimSpace(categorySlug))
	query = strings.ToLower(strings.TrimSpace(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var categoryID int64
	if categorySlug != "" {
		i := slices.IndexFunc(s.categories, func(c models.ServiceCategory) bool {
			return c.Slug == categorySlug
		})
		if i < 0 {
			return []models.Service{}
		}
		categoryID = s.categories[i].ID
	}

	out := []models.Service{}
	for _, svc := range s.services {
		if categoryID != 0 && (svc.CategoryID == nil || *svc.CategoryID != categoryID) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(svc.Name), query) &&
			!strings.Contains(strings.ToLower(svc.Description), query) {
			continue
		}
		out = append(out, svc)
	}
	return out
}

type CategoryGroup struct {
	Category models.ServiceCategory `json:"category"`
	Services []models.Service      `json:"services"`
}

// ServicesByCategory groups services under their category, in category
// order. Services without a known category are left out.
func (s *Store) ServicesByCategory() []CategoryGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]CategoryGroup, 0, len(s.categories))
	for _, c := range s.categories {
		g := CategoryGroup{Category: c, Services: []models.Service{}}
		for _, svc := range s.services {
			if svc.CategoryID != nil && *svc.CategoryID == c.ID {
				g.Services = append(g.Services, svc)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func (s *Store) Categories() []models.ServiceCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.clients)
}

// SearchClients matches name case-insensitively or phone verbatim.
func (s *Store) SearchClients(query string) []models.Client {
	query = strings.TrimSpace(query)
	lower := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Client{}
	for _, c := range s.clients {
		if query == "" ||
			strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out
}
