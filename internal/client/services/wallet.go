package services

import (
	"context"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/models"
)

type WalletService struct {
	wallets  client.WalletsAPI
	txs      client.TransactionsAPI
	auth     AuthService
	pageSize int
}

func NewWalletService(wallets client.WalletsAPI, txs client.TransactionsAPI, auth AuthService, pageSize int) *WalletService {
	return &WalletService{wallets: wallets, txs: txs, auth: auth, pageSize: pageSize}
}

// Summary returns the signed-in user's wallet.
func (s *WalletService) Summary(ctx context.Context) (*models.Wallet, error) {
	me, err := currentUser(s.auth)
	if err != nil {
		return nil, err
	}
	return s.wallets.GetWalletData(ctx, me.ID)
}

// List is the admin view over every wallet.
func (s *WalletService) List(ctx context.Context, q ListQuery) (models.Page[models.Wallet], error) {
	q = q.normalize(s.pageSize)
	page, err := s.wallets.ListWallets(ctx, q.request())
	if err != nil {
		return models.Page[models.Wallet]{}, err
	}
	return refine(page, q), nil
}

// Transactions lists the signed-in user's wallet history.
func (s *WalletService) Transactions(ctx context.Context, q ListQuery) (models.Page[models.WalletTransaction], error) {
	me, err := currentUser(s.auth)
	if err != nil {
		return models.Page[models.WalletTransaction]{}, err
	}
	q = q.normalize(s.pageSize)
	q.UserID = me.ID
	page, err := s.txs.ListWalletTransactions(ctx, q.request())
	if err != nil {
		return models.Page[models.WalletTransaction]{}, err
	}
	return refine(page, q), nil
}
