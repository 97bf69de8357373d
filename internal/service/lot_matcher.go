package service

import (
	"fmt"

	"github.com/iagocanalejas/richjet/internal/apperrors"
	"github.com/iagocanalejas/richjet/internal/model"
)

// MatchResult aggregates the outcome of replaying one symbol's transaction
// history within a single account scope. All monetary values are plain
// quantity-times-price sums in the transaction currency; rounding belongs to
// presentation.
type MatchResult struct {
	Quantity        float64
	CurrentInvested float64
	TotalInvested   float64
	TotalRetrieved  float64
	Commission      float64
	Oversold        bool
	Lots            []model.Lot
	Sells           []model.RealizedSale
}

// MatchLots replays a chronologically ordered transaction sequence for a
// single symbol and produces the remaining open lots plus the realized cost
// basis of every sell.
//
// The sequence must be sorted ascending by date with ties broken by insertion
// order, and its first entry must be a BUY; the caller proves that
// precondition before invoking, the matcher only defends against it.
//
// Processing rules:
//   - BUY appends a lot and grows quantity, current/total invested and commission.
//   - DIVIDEND appends a zero-price lot (free shares) and grows quantity only.
//   - SELL consumes lots front-first (FIFO), accumulating the consumed cost
//     basis. A partially consumed lot keeps its place with a reduced quantity.
//     If the lots run out before the sell is satisfied, the remainder carries
//     zero cost basis and the result is flagged Oversold instead of failing.
//   - DIVIDEND-CASH entries are filtered out by the caller; one slipping
//     through is ignored here since it has no quantity effect.
func MatchLots(transactions []model.Transaction) (MatchResult, error) {
	var res MatchResult
	if len(transactions) == 0 {
		return res, nil
	}
	if transactions[0].Type != model.TransactionBuy {
		return res, fmt.Errorf("%w: %s", apperrors.ErrNoBuyTransaction, transactions[0].Symbol.Ticker)
	}

	for _, t := range transactions {
		switch t.Type {
		case model.TransactionBuy:
			res.Lots = append(res.Lots, model.Lot{
				TransactionID: t.ID,
				Date:          t.Date,
				Quantity:      t.Quantity,
				Price:         t.Price,
			})
			res.Quantity += t.Quantity
			res.CurrentInvested += t.Quantity * t.Price
			res.TotalInvested += t.Quantity * t.Price
			res.Commission += t.Commission

		case model.TransactionDividend:
			res.Lots = append(res.Lots, model.Lot{
				TransactionID: t.ID,
				Date:          t.Date,
				Quantity:      t.Quantity,
			})
			res.Quantity += t.Quantity

		case model.TransactionSell:
			remaining := t.Quantity
			var costBasis float64

			// FIFO: consume from the earliest lots first.
			for remaining > 0 && len(res.Lots) > 0 {
				lot := &res.Lots[0]
				if lot.Quantity <= remaining {
					costBasis += lot.Quantity * lot.Price
					remaining -= lot.Quantity
					res.Lots = res.Lots[1:]
				} else {
					costBasis += remaining * lot.Price
					lot.Quantity -= remaining
					remaining = 0
				}
			}
			if remaining > 0 {
				// Lots exhausted: the unmatched remainder is booked with zero
				// cost basis and the condition is surfaced as a diagnostic.
				res.Oversold = true
			}

			res.Quantity -= t.Quantity
			res.CurrentInvested -= costBasis
			res.TotalRetrieved += t.Quantity * t.Price
			res.Commission += t.Commission
			res.Sells = append(res.Sells, model.RealizedSale{
				TransactionID: t.ID,
				Date:          t.Date,
				Quantity:      t.Quantity,
				Price:         t.Price,
				Commission:    t.Commission,
				CostBasis:     costBasis,
			})

		case model.TransactionDividendCash:
			// no quantity effect; accumulated separately by the aggregator
		}
	}

	return res, nil
}
