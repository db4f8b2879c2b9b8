package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketStatusNew              TicketStatus = "NEW"
	TicketStatusInProgress       TicketStatus = "IN_PROGRESS"
	TicketStatusAwaitingParts    TicketStatus = "AWAITING_PARTS"
	TicketStatusAwaitingCustomer TicketStatus = "AWAITING_CUSTOMER"
	TicketStatusDone             TicketStatus = "DONE"
	TicketStatusCancelled        TicketStatus = "CANCELLED"
)

type Ticket struct {
	ID           string
	TicketNumber string
	CustomerID   *string
	StaffID      *string
	LocationID   *string
	Status       TicketStatus
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Devices      []RepairDevice
}

// RepairDevice é um aparelho dentro de um ticket, com a marca e as opções de reparo escolhidas
type RepairDevice struct {
	ID            string
	TicketID      string
	Model         string
	BrandName     *string
	RepairOptions []RepairOption
}

type RepairOption struct {
	ID             string
	RepairDeviceID string
	Name           string
	Price          decimal.Decimal
	RepairTypeName *string
}

type Quote struct {
	ID                string
	CustomerID        *string
	Amount            decimal.Decimal
	ConvertedToTicket bool
	ExpiresAt         time.Time
	CreatedAt         time.Time
}

type DiagnosticStatus string

const (
	DiagnosticStatusPending   DiagnosticStatus = "PENDING"
	DiagnosticStatusCompleted DiagnosticStatus = "COMPLETED"
)

type Diagnostic struct {
	ID                string
	CustomerID        *string
	Status            DiagnosticStatus
	Fee               decimal.Decimal
	ConvertedToTicket bool
	CreatedAt         time.Time
}
