/*
Package assessment implements the council's fee, penalty and total-due
computations.

The engine has three layers:
  - Calculator: pure fee formulas over an injected RateSchedule
    (registration fee, annual permit fee, signage fee, environmental levy,
    premises tax, overdue penalty).
  - Service.TotalDue: aggregates a shop's annual fees, recorded payments
    and accrued penalties into a single figure for an assessment year.
  - Service.ApplyPenalties: writes recomputed penalties back to overdue
    payment records.

Usage:

	calc := assessment.NewCalculator(assessment.DefaultRateSchedule())
	svc := assessment.NewService(shopRepo, paymentRepo, revenueTypeRepo,
	    calc, clockwork.NewRealClock(), assessment.NewPrometheusMetrics())

	result, err := svc.TotalDue(ctx, shopID, 2025)

Determinism:

Every calculator method is a pure function of its arguments. TotalDue and
ApplyPenalties additionally depend on the injected clock, never on the
system clock directly, so tests pin "now" with clockwork.NewFakeClockAt.

Error Handling:

Invalid categorical input (unknown shop size, missing business type,
negative amounts) fails with the ErrInvalid or ErrMissing sentinels and is
never defaulted. A missing shop surfaces the repository's not-found error.
There is no partial-result mode: if any calculator or read fails, the whole
computation fails.
*/
package assessment
