package jobs

import (
	"context"

	"github.com/Charan908515/book-credit-exchange/internal/logger"
)

// CleanupExpiredRegistrations removes pending signups whose OTP window has
// lapsed so abandoned email addresses can be reused.
func (jr *JobRunner) CleanupExpiredRegistrations() {
	jr.runWithRecovery("CleanupExpiredRegistrations", func() {
		ctx := context.Background()

		deleted, err := jr.store.UserRepository.DeleteExpiredPendingRegistrations(ctx)
		if err != nil {
			logger.Error("Failed to delete expired pending registrations", "error", err)
			return
		}

		logger.Info("Deleted expired pending registrations", "count", deleted)
	})
}

// AuditLedgerBalances recomputes each user's ledger sum and reports any user
// whose stored balance disagrees with it. Detection only, nothing is mutated:
// drift means a balance was changed outside a settlement transaction and
// needs investigation, not silent repair.
func (jr *JobRunner) AuditLedgerBalances() {
	jr.runWithRecovery("AuditLedgerBalances", func() {
		ctx := context.Background()

		drifts, err := jr.store.LedgerRepository.ListBalanceDrift(ctx)
		if err != nil {
			logger.Error("Failed to audit ledger balances", "error", err)
			return
		}

		if len(drifts) == 0 {
			logger.Info("Ledger balance audit passed, no drift detected")
			return
		}

		for _, d := range drifts {
			logger.Error("Ledger balance drift detected",
				"user_id", d.UserID,
				"stored_credits", d.Credits,
				"ledger_sum", d.LedgerSum,
			)
		}
		logger.Error("Ledger balance audit found drifted users", "count", len(drifts))
	})
}
