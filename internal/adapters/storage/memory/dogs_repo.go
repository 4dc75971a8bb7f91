package memory

import (
	"context"
	"sort"
	"sync"

	"dogs-api/internal/domain/dogs"
)

type dogRepo struct {
	mu     sync.RWMutex
	byID   map[int64]dogs.Dog
	nextID int64
}

// NewDogRepo crea un store en memoria. Los ids empiezan en 1 y nunca se
// reutilizan, aunque se borre el último registro.
func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[int64]dogs.Dog),
	}
}

func (r *dogRepo) FindMany(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}

	// Orden estable por id asc, igual que el default de postgres/gorm
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *dogRepo) FindUnique(ctx context.Context, id int64) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return d, nil
}

func (r *dogRepo) Create(ctx context.Context, in dogs.CreateInput) (dogs.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	d := dogs.Dog{
		ID:          r.nextID,
		Name:        in.Name,
		Breed:       in.Breed,
		Age:         in.Age,
		Description: in.Description,
	}
	r.byID[d.ID] = d
	return d, nil
}

func (r *dogRepo) Update(ctx context.Context, id int64, p dogs.Patch) (dogs.Dog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	updated := p.Apply(current)
	r.byID[id] = updated
	return updated, nil
}

func (r *dogRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return dogs.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *dogRepo) Close() error { return nil }
