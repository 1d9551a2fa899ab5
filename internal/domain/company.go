package domain

import "time"

// CompanyDetails is the single row printed on contracts and used as the notice mailbox
type CompanyDetails struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	BRN         string    `json:"brn"`
	WhatsappNum string    `json:"whatsapp_num,omitempty"`
	Tel         string    `json:"tel,omitempty"`
	Terms       string    `json:"terms,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
