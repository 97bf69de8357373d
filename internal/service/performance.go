package service

import (
	"context"

	"github.com/iagocanalejas/richjet/internal/model"
)

// ComputeMetrics aggregates positions, savings accounts and cash dividends
// into portfolio-level figures expressed in the reporting currency.
//
// Invested capital and current value only count open positions (quantity
// above zero). Fully sold positions contribute through the closed-positions
// figure instead: proceeds minus the capital that had been committed to them,
// so it reads as realized profit. BANK account balances count toward current
// value but never toward invested capital.
func (s *PortfolioService) ComputeMetrics(ctx context.Context, positions []model.Position, accounts []model.Account, cashDividends float64, scope string) model.PortfolioMetrics {
	var m model.PortfolioMetrics

	for _, p := range positions {
		if p.Closed() {
			m.ClosedPositions += s.converter.Convert(ctx, p.TotalRetrieved-closedCommitted(p), p.Currency)
			continue
		}
		// CurrentPrice was already converted at resolution time; only the
		// amounts carried over from transactions still need converting.
		m.PortfolioCurrentValue += p.CurrentPrice * p.Quantity
		m.TotalInvested += s.converter.Convert(ctx, p.CurrentInvested+p.Commission, p.Currency)
		m.ClosedPositions += s.converter.Convert(ctx, p.TotalRetrieved-openCommitted(p), p.Currency)
	}

	for _, a := range accounts {
		if a.AccountType != model.AccountTypeBank {
			continue
		}
		if scope != model.ScopeAll && a.ID != scope {
			continue
		}
		balance := s.converter.Convert(ctx, a.Balance, a.Currency)
		m.SavingAccountsValue += balance
		m.PortfolioCurrentValue += balance
	}

	m.CashDividends = cashDividends
	m.ClosedPositions = round(m.ClosedPositions)
	m.TotalInvested = round(m.TotalInvested)
	m.PortfolioCurrentValue = round(m.PortfolioCurrentValue)
	m.SavingAccountsValue = round(m.SavingAccountsValue)

	if m.TotalInvested > 0 {
		profit := m.PortfolioCurrentValue + m.ClosedPositions + m.CashDividends - m.TotalInvested
		m.Rentability = round(profit / m.TotalInvested * 100)
	}
	return m
}

// closedCommitted is the capital that was tied up in a position now fully
// sold: everything ever invested plus the commissions paid along the way.
func closedCommitted(p model.Position) float64 {
	return p.TotalInvested + p.Commission
}

// openCommitted is the realized slice of a still-open position: the invested
// capital already recovered through sells, plus commissions.
func openCommitted(p model.Position) float64 {
	return (p.TotalInvested - p.CurrentInvested) + p.Commission
}
