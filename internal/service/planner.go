package service

import (
	"context"
	"sort"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"
	"rentdesk-backoffice/internal/utils"
)

// PlannerQuery narrows the calendar. Zero From/To leave that side of the window open.
type PlannerQuery struct {
	CarID string
	From  domain.Date
	To    domain.Date
}

// PlannerEvent is one contract on the calendar, dates inclusive
type PlannerEvent struct {
	ContractID     string                `json:"contract_id"`
	ContractNumber string                `json:"contract_number"`
	CarID          string                `json:"car_id"`
	CarLabel       string                `json:"car_label"`
	CustomerID     string                `json:"customer_id"`
	CustomerName   string                `json:"customer_name"`
	Status         domain.ContractStatus `json:"status"`
	Start          domain.Date           `json:"start"`
	End            domain.Date           `json:"end"`
}

type plannerService struct {
	contractRepo repository.ContractRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
}

func NewPlannerService(contractRepo repository.ContractRepository, carRepo repository.CarRepository, customerRepo repository.CustomerRepository) PlannerService {
	return &plannerService{
		contractRepo: contractRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
	}
}

func (s *plannerService) Events(ctx context.Context, q PlannerQuery) ([]PlannerEvent, error) {
	var (
		contracts []domain.Contract
		err       error
	)
	if q.CarID != "" {
		contracts, err = s.contractRepo.ListByCar(ctx, q.CarID)
	} else {
		contracts, err = s.contractRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	carLabels := make(map[string]string, len(cars))
	for i := range cars {
		carLabels[cars[i].ID] = cars[i].Label()
	}
	customerNames := make(map[string]string, len(customers))
	for i := range customers {
		customerNames[customers[i].ID] = customers[i].FullName()
	}

	window, bounded := plannerWindow(q)
	events := make([]PlannerEvent, 0, len(contracts))
	for _, c := range contracts {
		if bounded && !utils.Overlaps(window, c.Period()) {
			continue
		}
		events = append(events, PlannerEvent{
			ContractID:     c.ID,
			ContractNumber: c.ContractNumber,
			CarID:          c.CarID,
			CarLabel:       labelOr(carLabels, c.CarID, unknownCar),
			CustomerID:     c.CustomerID,
			CustomerName:   labelOr(customerNames, c.CustomerID, unknownCustomer),
			Status:         c.Status,
			Start:          c.StartDate,
			End:            c.EndDate,
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events, nil
}

// plannerWindow turns the query bounds into a period; an open side extends to the far past or future
func plannerWindow(q PlannerQuery) (domain.BookingPeriod, bool) {
	if q.From.IsZero() && q.To.IsZero() {
		return domain.BookingPeriod{}, false
	}
	w := domain.BookingPeriod{Start: q.From, End: q.To}
	if w.Start.IsZero() {
		w.Start = domain.NewDate(1, 1, 1)
	}
	if w.End.IsZero() {
		w.End = domain.NewDate(9999, 12, 31)
	}
	return w, true
}
