package study

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// GetDashboard returns the active lists and the caller's progress rollup.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	principal, ok := domain.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	var (
		lists []domain.VocabList
		rows  []domain.UserProgress
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if lists, err = s.lists.ListActive(gctx); err != nil {
			return fmt.Errorf("list active vocab lists: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if rows, err = s.progress.ListByUser(gctx, principal.UserID); err != nil {
			return fmt.Errorf("list progress: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}

	return domain.NewDashboard(lists, rows), nil
}
