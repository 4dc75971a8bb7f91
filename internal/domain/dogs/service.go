package dogs

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("dog not found")
	ErrRejected = errors.New("store rejected the write")
)

// FailureReason clasifica por qué falló una escritura.
type FailureReason string

const (
	ReasonNotFound    FailureReason = "not_found"
	ReasonRejected    FailureReason = "rejected"
	ReasonUnavailable FailureReason = "unavailable"
)

// WriteResult es el resultado explícito de create/update:
// Dog != nil si la escritura se aplicó; si no, Reason y Err dicen por qué.
type WriteResult struct {
	Dog    *Dog
	Reason FailureReason
	Err    error
}

func (r WriteResult) OK() bool { return r.Err == nil && r.Dog != nil }

func succeeded(d Dog) WriteResult {
	return WriteResult{Dog: &d}
}

// Failed construye un WriteResult fallido clasificando err.
func Failed(err error) WriteResult {
	switch {
	case errors.Is(err, ErrNotFound):
		return WriteResult{Reason: ReasonNotFound, Err: err}
	case errors.Is(err, ErrRejected):
		return WriteResult{Reason: ReasonRejected, Err: err}
	default:
		return WriteResult{Reason: ReasonUnavailable, Err: err}
	}
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	items, err := s.repo.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	if items == nil {
		items = []Dog{}
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Dog, error) {
	return s.repo.FindUnique(ctx, id)
}

// Delete borra el registro y devuelve el snapshot leído antes de borrar.
func (s *Service) Delete(ctx context.Context, id int64) (Dog, error) {
	d, err := s.repo.FindUnique(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Dog{}, fmt.Errorf("delete dog %d: %w", id, err)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) WriteResult {
	d, err := s.repo.Create(ctx, in)
	if err != nil {
		return Failed(fmt.Errorf("create dog: %w", err))
	}
	return succeeded(d)
}

func (s *Service) Update(ctx context.Context, id int64, p Patch) WriteResult {
	d, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return Failed(fmt.Errorf("update dog %d: %w", id, err))
	}
	return succeeded(d)
}
