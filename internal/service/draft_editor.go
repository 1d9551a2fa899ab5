package service

import (
	"context"
	"sync"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/logger"
)

// DraftEditor holds one open contract form. Each car selection starts a new fetch generation;
// results from an older generation are discarded and its fetch is cancelled.
type DraftEditor struct {
	contracts ContractService
	cars      CarService

	mu         sync.Mutex
	draft      domain.ContractDraft
	generation uint64
	cancel     context.CancelFunc
	submitting bool
}

func NewDraftEditor(contracts ContractService, cars CarService, draft domain.ContractDraft) *DraftEditor {
	return &DraftEditor{
		contracts: contracts,
		cars:      cars,
		draft:     Recalculate(draft),
	}
}

// Draft returns the current draft
func (e *DraftEditor) Draft() domain.ContractDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// Apply edits the non-car fields of the draft and returns the recalculated result
func (e *DraftEditor) Apply(in DraftInput) domain.ContractDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = Reduce(e.draft, in.Changes()...)
	return e.draft
}

// SelectCar switches the draft to carID. In create mode the car's bookings are fetched;
// a failed fetch is recorded as a warning and leaves availability unknown.
// ErrSuperseded is returned when a later SelectCar started before this one finished.
func (e *DraftEditor) SelectCar(ctx context.Context, carID string) (domain.ContractDraft, error) {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	e.generation++
	gen := e.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	createMode := e.draft.Mode == domain.DraftModeCreate
	e.mu.Unlock()
	defer cancel()

	car, err := e.cars.GetCar(fetchCtx, carID)
	if err != nil {
		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.generation {
			return e.draft, ErrSuperseded
		}
		e.cancel = nil
		return e.draft, err
	}

	var (
		ranges   []domain.BookingPeriod
		fetchErr error
	)
	if createMode {
		ranges, fetchErr = e.contracts.BookedRanges(fetchCtx, carID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation {
		logger.Debug("Dropping stale booked ranges", "car_id", carID, "generation", gen)
		return e.draft, ErrSuperseded
	}
	e.cancel = nil

	changes := []DraftChange{WithCar(car)}
	switch {
	case !createMode:
	case fetchErr != nil:
		logger.WarnContext(ctx, "Failed to load booked ranges, availability unknown", "car_id", carID, "error", fetchErr)
		changes = append(changes, WithBookingsUnknown(bookingsUnknownWarning))
	default:
		changes = append(changes, WithBookedRanges(ranges))
	}
	e.draft = Reduce(e.draft, changes...)
	return e.draft, nil
}

// Submit persists the draft. On failure the draft is left as it was so the user can retry.
// After a successful create the editor continues in edit mode on the saved contract.
// Only one submit runs per editor; a second one gets ErrSubmitInFlight.
func (e *DraftEditor) Submit(ctx context.Context) (*domain.Contract, error) {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if e.cancel != nil {
		e.mu.Unlock()
		return nil, ErrBookingsPending
	}
	e.submitting = true
	d := e.draft
	e.mu.Unlock()

	c, err := e.contracts.SubmitDraft(ctx, d)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.submitting = false
	if err != nil {
		return nil, err
	}
	e.draft = Recalculate(domain.DraftFromContract(c))
	e.draft.ID = d.ID
	return c, nil
}

// Close cancels any fetch still in flight
func (e *DraftEditor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.generation++
}
