package service

import (
	"context"
	"sort"
	"time"

	"rentdesk-backoffice/internal/domain"
	"rentdesk-backoffice/internal/repository"

	"github.com/shopspring/decimal"
)

type SummaryReport struct {
	PeriodDays           int             `json:"period_days"`
	From                 domain.Date     `json:"from"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TotalContracts       int             `json:"total_contracts"`
	AverageContractValue decimal.Decimal `json:"average_contract_value"`
	TotalCars            int             `json:"total_cars"`
	UtilizationRate      decimal.Decimal `json:"utilization_rate"`
	TotalCustomers       int             `json:"total_customers"`
	RepeatCustomers      int             `json:"repeat_customers"`
}

type RevenueRow struct {
	ContractID     string                `json:"contract_id"`
	ContractNumber string                `json:"contract_number"`
	CustomerName   string                `json:"customer_name"`
	CarName        string                `json:"car_name"`
	Date           domain.Date           `json:"date"`
	Status         domain.ContractStatus `json:"status"`
	Total          decimal.Decimal       `json:"total"`
}

type RevenueReport struct {
	PeriodDays int             `json:"period_days"`
	From       domain.Date     `json:"from"`
	Rows       []RevenueRow    `json:"rows"`
	Total      decimal.Decimal `json:"total"`
}

type CarReportRow struct {
	CarID          string          `json:"car_id"`
	CarName        string          `json:"car_name"`
	PlateNumber    string          `json:"plate_number"`
	TotalContracts int             `json:"total_contracts"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalDays      int             `json:"total_days"`
	Utilization    decimal.Decimal `json:"utilization"`
}

type CustomerReportRow struct {
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	Email          string          `json:"email"`
	TotalContracts int             `json:"total_contracts"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	AverageSpent   decimal.Decimal `json:"average_spent"`
}

var hundred = decimal.NewFromInt(100)

type reportService struct {
	contractRepo repository.ContractRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
}

func NewReportService(contractRepo repository.ContractRepository, carRepo repository.CarRepository, customerRepo repository.CustomerRepository) ReportService {
	return &reportService{
		contractRepo: contractRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
	}
}

// inPeriod keeps contracts whose activity date is on or after the cutoff
func inPeriod(contracts []domain.Contract, from domain.Date) []domain.Contract {
	var out []domain.Contract
	for _, c := range contracts {
		if !c.ActivityDate().Before(from) {
			out = append(out, c)
		}
	}
	return out
}

func periodStart(periodDays int, now time.Time) domain.Date {
	return domain.DateOf(now.UTC()).AddDays(-periodDays)
}

func (s *reportService) Summary(ctx context.Context, periodDays int, now time.Time) (*SummaryReport, error) {
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totalCars, err := s.carRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	from := periodStart(periodDays, now)
	period := inPeriod(contracts, from)
	revenue := decimal.Zero
	for _, c := range period {
		if c.Status.CountsAsRevenue() {
			revenue = revenue.Add(c.Total)
		}
	}
	average := decimal.Zero
	if len(period) > 0 {
		average = revenue.Div(decimal.NewFromInt(int64(len(period)))).Round(2)
	}

	activeCars := make(map[string]struct{})
	perCustomer := make(map[string]int)
	for _, c := range contracts {
		if c.Status == domain.ContractStatusActive {
			activeCars[c.CarID] = struct{}{}
		}
		perCustomer[c.CustomerID]++
	}
	utilization := decimal.Zero
	if totalCars > 0 {
		utilization = decimal.NewFromInt(int64(len(activeCars))).Mul(hundred).Div(decimal.NewFromInt(int64(totalCars))).Round(1)
	}
	repeat := 0
	for _, n := range perCustomer {
		if n > 1 {
			repeat++
		}
	}

	return &SummaryReport{
		PeriodDays:           periodDays,
		From:                 from,
		TotalRevenue:         revenue,
		TotalContracts:       len(period),
		AverageContractValue: average,
		TotalCars:            totalCars,
		UtilizationRate:      utilization,
		TotalCustomers:       len(customers),
		RepeatCustomers:      repeat,
	}, nil
}

func (s *reportService) Revenue(ctx context.Context, periodDays int, now time.Time) (*RevenueReport, error) {
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	carNames, err := s.carLabels(ctx)
	if err != nil {
		return nil, err
	}
	customerNames, err := s.customerNames(ctx)
	if err != nil {
		return nil, err
	}

	from := periodStart(periodDays, now)
	report := &RevenueReport{PeriodDays: periodDays, From: from, Rows: []RevenueRow{}, Total: decimal.Zero}
	for _, c := range inPeriod(contracts, from) {
		if !c.Status.CountsAsRevenue() {
			continue
		}
		report.Rows = append(report.Rows, RevenueRow{
			ContractID:     c.ID,
			ContractNumber: c.ContractNumber,
			CustomerName:   labelOr(customerNames, c.CustomerID, unknownCustomer),
			CarName:        labelOr(carNames, c.CarID, unknownCar),
			Date:           c.ActivityDate(),
			Status:         c.Status,
			Total:          c.Total,
		})
		report.Total = report.Total.Add(c.Total)
	}
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].Date.After(report.Rows[j].Date)
	})
	return report, nil
}

func (s *reportService) Cars(ctx context.Context) ([]CarReportRow, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byCar := make(map[string][]domain.Contract)
	for _, c := range contracts {
		byCar[c.CarID] = append(byCar[c.CarID], c)
	}

	rows := make([]CarReportRow, 0, len(cars))
	for i := range cars {
		car := &cars[i]
		row := CarReportRow{
			CarID:          car.ID,
			CarName:        car.Name,
			PlateNumber:    car.PlateNumber,
			TotalContracts: len(byCar[car.ID]),
			TotalRevenue:   decimal.Zero,
			Utilization:    decimal.Zero,
		}
		for _, c := range byCar[car.ID] {
			if c.Status.CountsAsRevenue() {
				row.TotalRevenue = row.TotalRevenue.Add(c.Total)
				row.TotalDays += c.Days
			}
		}
		if row.TotalDays > 0 {
			row.Utilization = decimal.NewFromInt(int64(row.TotalDays)).Mul(hundred).Div(decimal.NewFromInt(365)).Round(1)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	return rows, nil
}

func (s *reportService) Customers(ctx context.Context) ([]CustomerReportRow, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byCustomer := make(map[string][]domain.Contract)
	for _, c := range contracts {
		byCustomer[c.CustomerID] = append(byCustomer[c.CustomerID], c)
	}

	rows := make([]CustomerReportRow, 0, len(customers))
	for i := range customers {
		cu := &customers[i]
		row := CustomerReportRow{
			CustomerID:     cu.ID,
			CustomerName:   cu.FullName(),
			Email:          cu.Email,
			TotalContracts: len(byCustomer[cu.ID]),
			TotalSpent:     decimal.Zero,
			AverageSpent:   decimal.Zero,
		}
		paid := 0
		for _, c := range byCustomer[cu.ID] {
			if c.Status.CountsAsRevenue() {
				row.TotalSpent = row.TotalSpent.Add(c.Total)
				paid++
			}
		}
		if paid > 0 {
			row.AverageSpent = row.TotalSpent.Div(decimal.NewFromInt(int64(paid))).Round(2)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSpent.GreaterThan(rows[j].TotalSpent)
	})
	return rows, nil
}

const (
	unknownCar      = "Unknown car"
	unknownCustomer = "Unknown customer"
)

func (s *reportService) carLabels(ctx context.Context) (map[string]string, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(cars))
	for i := range cars {
		labels[cars[i].ID] = cars[i].Label()
	}
	return labels, nil
}

func (s *reportService) customerNames(ctx context.Context) (map[string]string, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for i := range customers {
		names[customers[i].ID] = customers[i].FullName()
	}
	return names, nil
}

func labelOr(labels map[string]string, id, fallback string) string {
	if l, ok := labels[id]; ok && l != "" {
		return l
	}
	return fallback
}
