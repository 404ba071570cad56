package assessment

import (
	"context"
)

// Service defines the assessment engine interface: fee quoting, total-due
// aggregation, and penalty accrual.
type Service interface {
	// Fees itemizes the annual fees for a registered shop.
	Fees(ctx context.Context, shopID uint) (*FeeBreakdown, error)

	// TotalDue computes the amount a shop owes for an assessment year:
	// annual fees minus recorded payments plus accrued overdue penalties.
	// Read-only; nothing is persisted.
	TotalDue(ctx context.Context, shopID uint, year int) (*TotalDueResult, error)

	// ApplyPenalties recomputes penalties for the shop's overdue and
	// partially paid assessments of the year and writes them back to the
	// payment records. Returns the number of records updated. Concurrent
	// calls race last-write-wins; callers needing stronger guarantees must
	// wrap the call in their own transaction.
	ApplyPenalties(ctx context.Context, shopID uint, year int) (int, error)

	// Calculator exposes the underlying fee calculator for callers that
	// quote individual fees (permit issuance, fee previews).
	Calculator() *Calculator
}
