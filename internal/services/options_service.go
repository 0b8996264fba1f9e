package services

import (
	"context"
	"fmt"
	"strings"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/pagination"
	"finance-dashboard/internal/repositories"
)

const (
	defaultOptionsLimit = 20
	maxOptionsLimit     = 100
)

type optionsService struct {
	repo repositories.OptionsRepositoryInterface
}

func NewOptionsService(repo repositories.OptionsRepositoryInterface) OptionsServiceInterface {
	return &optionsService{repo: repo}
}

// ListOptions returns one keyset page of active lookup values; the cursor carries the last row's (name, id)
func (s *optionsService) ListOptions(ctx context.Context, dimension, search, cursor string, limit int) (*dto.OptionsResponse, error) {
	if !contains(repositories.OptionDimensions(), dimension) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptionsDimension, dimension)
	}

	if limit <= 0 {
		limit = defaultOptionsLimit
	}
	if limit > maxOptionsLimit {
		limit = maxOptionsLimit
	}

	var after *pagination.Cursor
	if cursor != "" {
		decoded, err := pagination.Decode(cursor)
		if err != nil {
			return nil, err
		}
		after = &decoded
	}

	items, err := s.repo.ListOptions(ctx, dimension, strings.TrimSpace(search), after, limit+1)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s options: %w", dimension, err)
	}

	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	response := &dto.OptionsResponse{
		Dimension: dimension,
		Items:     toOptionEntries(items),
		HasMore:   hasMore,
	}
	if hasMore {
		last := items[len(items)-1]
		response.NextCursor = pagination.Encode(pagination.Cursor{ID: last.ID, SortValue: last.Name})
	}
	return response, nil
}

func toOptionEntries(items []models.OptionItem) []dto.OptionEntry {
	entries := make([]dto.OptionEntry, len(items))
	for i, item := range items {
		entries[i] = dto.OptionEntry{ID: item.ID, Name: item.Name}
	}
	return entries
}
