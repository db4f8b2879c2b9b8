package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        string
	Name      string
	Email     *string
	CreatedAt time.Time
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

type Booking struct {
	ID                string
	CustomerID        *string
	Status            BookingStatus
	ConvertedToTicket bool
	CreatedAt         time.Time
}

// MailIn é um pedido de reparo recebido pelo correio
type MailIn struct {
	ID                string
	CustomerID        *string
	Status            string
	ConvertedToTicket bool
	CreatedAt         time.Time
}

type StoreCreditType string

const (
	StoreCreditIssued   StoreCreditType = "ISSUED"
	StoreCreditRedeemed StoreCreditType = "REDEEMED"
)

type StoreCreditTransaction struct {
	ID         string
	CustomerID string
	Type       StoreCreditType
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

type LoyaltyActivityType string

const (
	LoyaltyEarn   LoyaltyActivityType = "EARN"
	LoyaltyRedeem LoyaltyActivityType = "REDEEM"
)

type LoyaltyActivity struct {
	ID         string
	CustomerID string
	Type       LoyaltyActivityType
	Points     int
	CreatedAt  time.Time
}

type Review struct {
	ID         string
	CustomerID *string
	Rating     int
	CreatedAt  time.Time
}
