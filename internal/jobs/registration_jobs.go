package jobs

import (
	"context"
	"fmt"

	"rentdesk-backoffice/internal/logger"
)

// SendRegistrationExpiryReminders mails the vehicle documents that expire within the
// reminder window, or already have, to the company mailbox
func (jr *JobRunner) SendRegistrationExpiryReminders() {
	jr.runWithRecovery("SendRegistrationExpiryReminders", func() error {
		_, err := jr.sendRegistrationExpiryReminders(context.Background())
		return err
	})
}

func (jr *JobRunner) sendRegistrationExpiryReminders(ctx context.Context) (int, error) {
	window := jr.config.Reminders.ExpiryWindowDays
	items, err := jr.services.Registrations.ListExpiring(ctx, jr.today(), window)
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring registrations: %w", err)
	}
	if len(items) == 0 {
		logger.Info("No registration documents due", "window_days", window)
		return 0, nil
	}

	to, err := jr.companyMailbox(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load company details: %w", err)
	}
	if to == "" {
		logger.Warn("No company email configured, skipping registration reminder", "count", len(items))
		return 0, nil
	}

	if err := jr.services.Email.SendRegistrationExpiryReminder(ctx, to, items); err != nil {
		return 0, err
	}
	logger.Info("Sent registration expiry reminder", "to", to, "items", len(items))
	return len(items), nil
}
