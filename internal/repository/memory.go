package repository

import (
	"context"
	"sync"

	"github.com/CSCI-GA-2820-FA25-003/recommendations/internal/models"
)

// MemoryStore keeps recommendations in process memory. It backs the test
// suites and local runs without Postgres, and preserves insertion order so
// that List matches the creation-order contract of the SQL repository.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	recs   []*models.Recommendation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (m *MemoryStore) Create(_ context.Context, rec *models.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.nextID
	m.nextID++
	m.recs = append(m.recs, cloneRecommendation(rec))
	return nil
}

func (m *MemoryStore) GetByID(_ context.Context, id int64) (*models.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.recs {
		if rec.ID == id {
			return cloneRecommendation(rec), nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MemoryStore) List(_ context.Context, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*models.Recommendation
	for _, rec := range m.recs {
		if !filter.Matches(rec) {
			continue
		}
		matched = append(matched, cloneRecommendation(rec))
		if filter.Limit > 0 && len(matched) == filter.Limit {
			break
		}
	}
	return matched, nil
}

func (m *MemoryStore) Update(_ context.Context, rec *models.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.recs {
		if existing.ID == rec.ID {
			m.recs[i] = cloneRecommendation(rec)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *MemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.recs {
		if rec.ID == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return nil
		}
	}
	return nil
}

// cloneRecommendation copies rec so callers never alias stored state.
func cloneRecommendation(rec *models.Recommendation) *models.Recommendation {
	clone := *rec
	if rec.BaseProductPrice != nil {
		price := *rec.BaseProductPrice
		clone.BaseProductPrice = &price
	}
	if rec.RecommendedProductPrice != nil {
		price := *rec.RecommendedProductPrice
		clone.RecommendedProductPrice = &price
	}
	if rec.BaseProductDescription != nil {
		desc := *rec.BaseProductDescription
		clone.BaseProductDescription = &desc
	}
	if rec.RecommendedProductDescription != nil {
		desc := *rec.RecommendedProductDescription
		clone.RecommendedProductDescription = &desc
	}
	return &clone
}
