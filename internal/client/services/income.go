package services

import (
	"context"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
)

type IncomeService struct {
	api      client.IncomeAPI
	auth     AuthService
	pageSize int
}

func NewIncomeService(api client.IncomeAPI, auth AuthService, pageSize int) *IncomeService {
	return &IncomeService{api: api, auth: auth, pageSize: pageSize}
}

// Summary returns the signed-in user's income breakdown.
func (s *IncomeService) Summary(ctx context.Context) (*models.IncomeSummary, error) {
	me, err := currentUser(s.auth)
	if err != nil {
		return nil, err
	}
	return s.api.GetIndividualIncomeSummary(ctx, me.ID)
}

// List is the admin report over all users.
func (s *IncomeService) List(ctx context.Context, q ListQuery) (models.Page[models.IncomeSummary], error) {
	q = q.normalize(s.pageSize)
	page, err := s.api.ListIncomeSummaries(ctx, q.request())
	if err != nil {
		return models.Page[models.IncomeSummary]{}, err
	}
	return refine(page, q), nil
}
