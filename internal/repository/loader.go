package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"golang.org/x/sync/errgroup"
)

// LoadInputs loads every repository concurrently and assembles the analysis inputs.
// The first failure cancels the remaining loads.
func LoadInputs(ctx context.Context, repos ...domain.TableRepository) (domain.Inputs, error) {
	var (
		mu     sync.Mutex
		inputs domain.Inputs
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		repo := repo
		g.Go(func() error {
			table, err := repo.Load(ctx)
			if err != nil {
				return fmt.Errorf("loading %s: %w", repo.Role(), err)
			}

			mu.Lock()
			inputs.Set(repo.Role(), &table)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Inputs{}, err
	}

	return inputs, nil
}

// NewRepositories builds one CSV repository per supplied path, skipping empty paths
func NewRepositories(paths map[domain.Role]string, opts ...Option) []domain.TableRepository {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var repos []domain.TableRepository
	for _, role := range append(append([]domain.Role(nil), domain.MandatoryRoles...), domain.RoleConversion) {
		path := paths[role]
		if path == "" {
			continue
		}
		repos = append(repos, NewCSVTableRepository(path, role, o.logger))
	}
	return repos
}
