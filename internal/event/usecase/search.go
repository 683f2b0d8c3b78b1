package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"event-planner/internal/model"
)

// subQuery is one place search inside a lookup-backed task.
type subQuery struct {
	label    string
	query    string
	location string
}

// searchGroups runs every sub-query and returns one group per sub-query in input order.
// A failed sub-query degrades to an empty group; it never fails the task.
func (uc *implUseCase) searchGroups(ctx context.Context, task string, queries []subQuery) []model.PlaceGroup {
	groups := make([]model.PlaceGroup, len(queries))

	g := new(errgroup.Group)
	g.SetLimit(subQueryConcurrency)
	for i, q := range queries {
		g.Go(func() error {
			groups[i] = model.PlaceGroup{Type: q.label, Query: q.query, Options: uc.searchOne(ctx, task, q)}
			return nil
		})
	}
	_ = g.Wait()

	return groups
}

func (uc *implUseCase) searchOne(ctx context.Context, task string, q subQuery) []model.Place {
	callCtx, cancel := uc.callCtx(ctx)
	defer cancel()

	found, err := uc.search.Search(callCtx, q.query, q.location, uc.cfg.SearchLimit)
	if err != nil {
		uc.l.Warnf(ctx, "%s: search %q near %q failed, keeping empty options: %v", task, q.query, q.location, err)
		return []model.Place{}
	}
	if found == nil {
		return []model.Place{}
	}
	return found
}

// uniqueLabels trims, drops blanks and removes case-insensitive duplicates, keeping first-seen order.
func uniqueLabels(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
