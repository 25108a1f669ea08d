package jobs

import (
	"context"

	"car-rental-backend/internal/logger"
)

// MarkOverdueContracts flags contracts still renting past their end date.
// The cars stay in Renting status until the contract actually completes.
func (jr *JobRunner) MarkOverdueContracts() {
	jr.runWithRecovery("MarkOverdueContracts", func() {
		ctx := context.Background()

		query := `
			UPDATE contract
			SET status = 'Overdue'
			WHERE LOWER(status) = 'renting'
			  AND enddate IS NOT NULL
			  AND enddate < CURRENT_DATE
			RETURNING contractid, customerid, enddate
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to mark overdue contracts", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var contractID, customerID int32
			var endDate string
			if err := rows.Scan(&contractID, &customerID, &endDate); err != nil {
				logger.Error("Failed to scan overdue contract", "error", err)
				continue
			}
			logger.Debug("Marked contract as overdue",
				"contract_id", contractID,
				"customer_id", customerID,
				"end_date", endDate)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue contracts", "error", err)
			return
		}

		logger.Info("Marked contracts as overdue", "count", count)
	})
}

// ReconcileReturnedContracts completes any contract that has a return receipt
// but never got its status flipped. Same correction the list endpoint applies,
// run nightly so drift never accumulates.
func (jr *JobRunner) ReconcileReturnedContracts() {
	jr.runWithRecovery("ReconcileReturnedContracts", func() {
		ctx := context.Background()

		query := `
			UPDATE contract c
			SET status = 'Completed'
			WHERE LOWER(COALESCE(c.status, '')) <> 'completed'
			  AND EXISTS (
				SELECT 1 FROM returnreceipt rr WHERE rr.contractid = c.contractid
			  )
			RETURNING c.contractid
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to reconcile returned contracts", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var contractID int32
			if err := rows.Scan(&contractID); err != nil {
				logger.Error("Failed to scan reconciled contract", "error", err)
				continue
			}
			logger.Debug("Reconciled contract with return receipt", "contract_id", contractID)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reconciled contracts", "error", err)
			return
		}

		logger.Info("Reconciled returned contracts", "count", count)
	})
}
