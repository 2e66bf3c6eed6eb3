package services

import (
	"context"
	"slices"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
	"github.com/stylocoin/dashboard/internal/logging"
)

type MiningService struct {
	api      client.MiningPackagesAPI
	log      logging.Logger
	pageSize int
	cache    pageCache[models.MiningPackage]
}

func NewMiningService(api client.MiningPackagesAPI, pageSize int, log logging.Logger) *MiningService {
	return &MiningService{api: api, pageSize: pageSize, log: log.With("component", "mining")}
}

func (s *MiningService) List(ctx context.Context, q ListQuery) (models.Page[models.MiningPackage], error) {
	q = q.normalize(s.pageSize)
	page, err := s.api.ListMiningPackages(ctx, q.request())
	if err != nil {
		return models.Page[models.MiningPackage]{}, err
	}
	page = refine(page, q)
	s.cache.set(page)
	return page, nil
}

func (s *MiningService) Create(ctx context.Context, p models.MiningPackage) (*models.MiningPackage, error) {
	p.ID = 0
	if err := p.Validate(); err != nil {
		return nil, err
	}
	created, err := s.api.CreateMiningPackage(ctx, p)
	if err != nil {
		return nil, err
	}
	s.cache.update(func(items []models.MiningPackage) ([]models.MiningPackage, bool) {
		return append(items, *created), true
	})
	s.log.Info(ctx, "mining package created", "id", created.ID, "name", created.Name)
	return created, nil
}

func (s *MiningService) Update(ctx context.Context, p models.MiningPackage) (*models.MiningPackage, error) {
	if p.ID == 0 {
		return nil, client.ErrNotFound
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	prev, cached := s.cache.update(func(items []models.MiningPackage) ([]models.MiningPackage, bool) {
		return replaceWhere(items,
			func(x models.MiningPackage) bool { return x.ID == p.ID },
			func(models.MiningPackage) models.MiningPackage { return p })
	})
	updated, err := s.api.UpdateMiningPackage(ctx, p)
	if err != nil {
		if cached {
			s.cache.restore(prev)
		}
		return nil, err
	}
	if updated == nil {
		updated = &p
	} else {
		s.cache.update(func(items []models.MiningPackage) ([]models.MiningPackage, bool) {
			return replaceWhere(items,
				func(x models.MiningPackage) bool { return x.ID == p.ID },
				func(models.MiningPackage) models.MiningPackage { return *updated })
		})
	}
	s.log.Info(ctx, "mining package updated", "id", p.ID)
	return updated, nil
}

// Delete removes the package from the cached page first and restores it if
// the backend call fails.
func (s *MiningService) Delete(ctx context.Context, id int64) error {
	prev, cached := s.cache.update(func(items []models.MiningPackage) ([]models.MiningPackage, bool) {
		i := slices.IndexFunc(items, func(x models.MiningPackage) bool { return x.ID == id })
		if i < 0 {
			return items, false
		}
		return slices.Delete(items, i, i+1), true
	})
	if err := s.api.DeleteMiningPackage(ctx, id); err != nil {
		if cached {
			s.cache.restore(prev)
		}
		return err
	}
	s.log.Info(ctx, "mining package deleted", "id", id)
	return nil
}

func (s *MiningService) Cached() models.Page[models.MiningPackage] { return s.cache.get() }
