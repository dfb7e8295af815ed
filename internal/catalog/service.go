package catalog

import (
	"fmt"
	"iter"
	"log/slog"

	"librarycatalog/internal/item"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Add(it item.Item) {
	s.repo.Add(it)
	s.logger.Debug("item added", "id", it.ID, "kind", it.Kind.String(), "size", s.repo.Len())
}

func (s *Service) FindByID(id int) (item.Item, error) {
	it, err := s.repo.FindByID(id)
	if err != nil {
		return item.Item{}, fmt.Errorf("find item %d: %w", id, err)
	}
	return it, nil
}

func (s *Service) Remove(id int) (item.Item, error) {
	it, err := s.repo.Remove(id)
	if err != nil {
		return item.Item{}, fmt.Errorf("remove item %d: %w", id, err)
	}
	s.logger.Debug("item removed", "id", it.ID, "kind", it.Kind.String(), "size", s.repo.Len())
	return it, nil
}

func (s *Service) ListByKind(kind item.Kind) iter.Seq[item.Item] {
	return s.repo.ListByKind(kind)
}
