package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// ItemType identifica a divisão de negócio de uma linha de pedido
type ItemType string

const (
	ItemTypeRepair  ItemType = "repair"
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
	ItemTypeCustom  ItemType = "custom"
)

type Order struct {
	ID         string
	CustomerID *string
	LocationID *string
	Status     OrderStatus
	Total      decimal.Decimal
	CreatedAt  time.Time
	Items      []OrderItem
}

type OrderItem struct {
	ID       string
	OrderID  string
	Name     string
	ItemType *string
	Price    decimal.Decimal
	Quantity int
}

// Type normaliza o tipo do item; ausente ou desconhecido vira "product"
func (i OrderItem) Type() ItemType {
	if i.ItemType == nil {
		return ItemTypeProduct
	}

	switch t := ItemType(*i.ItemType); t {
	case ItemTypeRepair, ItemTypeService, ItemTypeProduct, ItemTypeCustom:
		return t
	default:
		return ItemTypeProduct
	}
}

func (i OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusCompleted RefundStatus = "COMPLETED"
	RefundStatusRejected  RefundStatus = "REJECTED"
)

type Refund struct {
	ID        string
	OrderID   *string
	Amount    decimal.Decimal
	Status    RefundStatus
	Reason    *string
	CreatedAt time.Time
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

type Discount struct {
	ID         string
	Code       string
	Type       DiscountType
	Value      decimal.Decimal
	Active     bool
	UsageCount int
	CreatedAt  time.Time
}
