package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold é o limite fixo de estoque baixo (stock <= 5) usado no inventário.
// A contagem por loja usa o mesmo número com comparação estrita (< 5).
const LowStockThreshold = 5

type InventoryItem struct {
	ID         string
	Name       string
	Categories []string
	Variations []Variation
	CreatedAt  time.Time
}

type Variation struct {
	ID     string
	ItemID string
	Name   string
	SKU    *string
	Price  decimal.Decimal
	Stock  int
}

type AdjustmentType string

const (
	AdjustmentIncrease AdjustmentType = "INCREASE"
	AdjustmentDecrease AdjustmentType = "DECREASE"
)

type InventoryAdjustment struct {
	ID          string
	VariationID string
	Type        AdjustmentType
	Quantity    int
	Reason      *string
	CreatedAt   time.Time
}

type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "PENDING"
	AuditStatusCompleted AuditStatus = "COMPLETED"
)

type InventoryAudit struct {
	ID            string
	Status        AuditStatus
	Discrepancies int
	CreatedAt     time.Time
}

type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderOrdered   PurchaseOrderStatus = "ORDERED"
	PurchaseOrderReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderCancelled PurchaseOrderStatus = "CANCELLED"
)

type PurchaseOrder struct {
	ID         string
	SupplierID *string
	Status     PurchaseOrderStatus
	Total      decimal.Decimal
	CreatedAt  time.Time
}

type Supplier struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
}

type ReturnStatus string

const (
	ReturnStatusPending   ReturnStatus = "PENDING"
	ReturnStatusApproved  ReturnStatus = "APPROVED"
	ReturnStatusRejected  ReturnStatus = "REJECTED"
	ReturnStatusCompleted ReturnStatus = "COMPLETED"
)

type ProductReturn struct {
	ID           string
	OrderID      *string
	Status       ReturnStatus
	RefundAmount decimal.Decimal
	CreatedAt    time.Time
}

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "PENDING"
	TransferStatusInTransit TransferStatus = "IN_TRANSIT"
	TransferStatusCompleted TransferStatus = "COMPLETED"
	TransferStatusCancelled TransferStatus = "CANCELLED"
)

type StockTransfer struct {
	ID             string
	FromLocationID string
	ToLocationID   string
	Status         TransferStatus
	Quantity       int
	CreatedAt      time.Time
}

type ExchangeStatus string

const (
	ExchangeStatusPending   ExchangeStatus = "PENDING"
	ExchangeStatusCompleted ExchangeStatus = "COMPLETED"
)

type Exchange struct {
	ID              string
	Status          ExchangeStatus
	PriceDifference decimal.Decimal
	CreatedAt       time.Time
}

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "ACTIVE"
	RentalStatusReturned RentalStatus = "RETURNED"
	RentalStatusOverdue  RentalStatus = "OVERDUE"
)

type Rental struct {
	ID        string
	Status    RentalStatus
	Fee       decimal.Decimal
	CreatedAt time.Time
}

type SpecialPartStatus string

const (
	SpecialPartRequested SpecialPartStatus = "REQUESTED"
	SpecialPartOrdered   SpecialPartStatus = "ORDERED"
	SpecialPartReceived  SpecialPartStatus = "RECEIVED"
	SpecialPartInstalled SpecialPartStatus = "INSTALLED"
	SpecialPartCancelled SpecialPartStatus = "CANCELLED"
)

type SpecialPart struct {
	ID        string
	Status    SpecialPartStatus
	Cost      decimal.Decimal
	CreatedAt time.Time
}

type ClaimStatus string

const (
	ClaimStatusSubmitted ClaimStatus = "SUBMITTED"
	ClaimStatusApproved  ClaimStatus = "APPROVED"
	ClaimStatusDenied    ClaimStatus = "DENIED"
	ClaimStatusPaid      ClaimStatus = "PAID"
)

// WarrantyClaim cobre tanto garantia quanto seguro do aparelho
type WarrantyClaim struct {
	ID          string
	Status      ClaimStatus
	ClaimAmount decimal.Decimal
	CreatedAt   time.Time
}

// StockLevel é o estoque de uma variação em uma loja específica
type StockLevel struct {
	LocationID  string
	VariationID string
	Quantity    int
	Price       decimal.Decimal
}
