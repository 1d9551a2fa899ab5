package domain

import "time"

type VehicleRegistration struct {
	ID                 string    `json:"id"`
	PlateNo            string    `json:"plate_no"`
	VehicleName        string    `json:"vehicle_name,omitempty"`
	Model              string    `json:"model,omitempty"`
	Color              string    `json:"color,omitempty"`
	PSVLicenseNo       string    `json:"psv_license_no,omitempty"`
	PSVExpiry          *Date     `json:"psv_expiry,omitempty"`
	FitnessExpiry      *Date     `json:"fitness_expiry,omitempty"`
	DiscNo             string    `json:"disc_no,omitempty"`
	MVLExpiry          *Date     `json:"mvl_expiry,omitempty"`
	InsurancePolicyNo  string    `json:"insurance_policy_no,omitempty"`
	InsuranceStartDate *Date     `json:"insurance_start_date,omitempty"`
	InsuranceEndDate   *Date     `json:"insurance_end_date,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ExpiryItem is one registration document that expires soon or already has
type ExpiryItem struct {
	PlateNo     string `json:"plate_no"`
	VehicleName string `json:"vehicle_name,omitempty"`
	Document    string `json:"document"`
	ExpiresOn   Date   `json:"expires_on"`
	DaysLeft    int    `json:"days_left"`
}

// ExpiringWithin lists the documents of r expiring on or before today+window days
func (r *VehicleRegistration) ExpiringWithin(today Date, window int) []ExpiryItem {
	docs := []struct {
		name string
		date *Date
	}{
		{"PSV licence", r.PSVExpiry},
		{"Fitness", r.FitnessExpiry},
		{"MVL", r.MVLExpiry},
		{"Insurance", r.InsuranceEndDate},
	}
	limit := today.AddDays(window)
	var items []ExpiryItem
	for _, doc := range docs {
		if doc.date == nil || doc.date.IsZero() || doc.date.After(limit) {
			continue
		}
		items = append(items, ExpiryItem{
			PlateNo:     r.PlateNo,
			VehicleName: r.VehicleName,
			Document:    doc.name,
			ExpiresOn:   *doc.date,
			DaysLeft:    today.DaysUntil(*doc.date),
		})
	}
	return items
}
