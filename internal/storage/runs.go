package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaumene/syscallnoise/internal/domain"
	"github.com/timshannon/bolthold"
)

type runRepository struct {
	store *bolthold.Store
}

func NewRunRepository(store *bolthold.Store) domain.RunRepository {
	return &runRepository{store: store}
}

func (r *runRepository) Insert(ctx context.Context, run *domain.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.store.Insert(run.ID, run)
	if errors.Is(err, bolthold.ErrKeyExists) {
		return domain.ErrDuplicateRun
	}
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

func (r *runRepository) Get(ctx context.Context, id string) (*domain.RunSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var run domain.RunSummary
	err := r.store.Get(id, &run)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return &run, nil
}

func (r *runRepository) List(ctx context.Context) ([]domain.RunSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var runs []domain.RunSummary
	if err := r.store.Find(&runs, (&bolthold.Query{}).SortBy("StartedAt")); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

func (r *runRepository) FindByLabel(ctx context.Context, label string) ([]domain.RunSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var runs []domain.RunSummary
	err := r.store.Find(&runs, bolthold.Where("Label").Eq(label).SortBy("StartedAt"))
	if err != nil {
		return nil, fmt.Errorf("finding runs by label: %w", err)
	}
	return runs, nil
}

func (r *runRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.store.Delete(id, &domain.RunSummary{})
	if errors.Is(err, bolthold.ErrNotFound) {
		return domain.ErrRunNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	return nil
}

func (r *runRepository) Close() error {
	return r.store.Close()
}

