package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillStatusPaid    BillStatus = "PAID"
	BillStatusUnpaid  BillStatus = "UNPAID"
	BillStatusOverdue BillStatus = "OVERDUE"
)

type Bill struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Status    BillStatus
	DueDate   time.Time
	CreatedAt time.Time
}

type PayrollStatus string

const (
	PayrollStatusPaid    PayrollStatus = "PAID"
	PayrollStatusPending PayrollStatus = "PENDING"
)

type Payroll struct {
	ID        string
	StaffID   string
	Amount    decimal.Decimal
	Status    PayrollStatus
	PaidAt    *time.Time
	CreatedAt time.Time
}

type Goal struct {
	ID           string
	Name         string
	Target       decimal.Decimal
	Current      decimal.Decimal
	CategoryName *string
	CreatedAt    time.Time
}
