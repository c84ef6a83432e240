package rpc

import (
	"context"

	"github.com/daniilsolovey/my-site/internal/ledger"
	"github.com/vmkteam/zenrpc/v2"
)

// LedgerService exposes the portfolio valuation.
type LedgerService struct {
	zenrpc.Service
	manager *ledger.Manager
}

func NewLedgerService(manager *ledger.Manager) *LedgerService {
	return &LedgerService{manager: manager}
}

// Dashboard values every cash and stock row with the live exchange rate and prices.
//
//zenrpc:return ledger valuation
//zenrpc:500 internal server error
func (s *LedgerService) Dashboard(ctx context.Context) (*ledger.Dashboard, error) {
	return s.manager.Dashboard(ctx)
}
