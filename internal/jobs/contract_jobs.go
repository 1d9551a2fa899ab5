package jobs

import (
	"context"
	"fmt"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/service"
)

// MarkOverdueContracts marks active contracts as overdue once their end date has passed
// and mails the list to the company mailbox
func (jr *JobRunner) MarkOverdueContracts() {
	jr.runWithRecovery("MarkOverdueContracts", func() error {
		ctx := context.Background()
		overdue, err := jr.markOverdueContracts(ctx, jr.today())
		if err != nil {
			return err
		}
		return jr.notifyOverdue(ctx, overdue)
	})
}

func (jr *JobRunner) markOverdueContracts(ctx context.Context, today domain.Date) ([]service.OverdueContract, error) {
	query := `
		UPDATE contracts
		SET status = 'overdue',
		    updated_at = NOW()
		WHERE status = 'active'
		  AND end_date < $1
		RETURNING id, contract_number, car_id, customer_id, end_date
	`

	logger.DatabaseCall("UPDATE", "contracts", "operation", "mark_overdue", "today", today)
	rows, err := jr.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("failed to mark overdue contracts: %w", err)
	}
	defer rows.Close()

	var overdue []service.OverdueContract
	for rows.Next() {
		var c service.OverdueContract
		if err := rows.Scan(&c.ContractID, &c.ContractNumber, &c.CarID, &c.CustomerID, &c.EndDate); err != nil {
			logger.Error("Failed to scan overdue contract", "error", err)
			continue
		}
		overdue = append(overdue, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating overdue contracts: %w", err)
	}
	logger.DatabaseResult("UPDATE", int64(len(overdue)), nil, "operation", "mark_overdue")

	logger.Info("Marked contracts as overdue", "count", len(overdue))
	for _, c := range overdue {
		logger.Debug("Marked contract as overdue",
			"contract_id", c.ContractID,
			"contract_number", c.ContractNumber,
			"car_id", c.CarID,
			"end_date", c.EndDate)
	}
	return overdue, nil
}

func (jr *JobRunner) notifyOverdue(ctx context.Context, overdue []service.OverdueContract) error {
	if len(overdue) == 0 {
		return nil
	}
	to, err := jr.companyMailbox(ctx)
	if err != nil {
		return fmt.Errorf("failed to load company details: %w", err)
	}
	if to == "" {
		logger.Warn("No company email configured, skipping overdue notice", "count", len(overdue))
		return nil
	}
	return jr.services.Email.SendOverdueNotice(ctx, to, overdue)
}
