package domain

import "github.com/shopspring/decimal"

type InventoryMetrics struct {
	Period              PeriodToken          `json:"period"`
	DateRange           DateRange            `json:"dateRange"`
	Items               ItemMetrics          `json:"items"`
	Adjustments         AdjustmentMetrics    `json:"adjustments"`
	Audits              AuditMetrics         `json:"audits"`
	PurchaseOrders      PurchaseOrderMetrics `json:"purchaseOrders"`
	Suppliers           SupplierMetrics      `json:"suppliers"`
	Returns             ReturnMetrics        `json:"returns"`
	Transfers           TransferMetrics      `json:"transfers"`
	Exchanges           ExchangeMetrics      `json:"exchanges"`
	Rentals             RentalMetrics        `json:"rentals"`
	SpecialParts        SpecialPartMetrics   `json:"specialParts"`
	Warranty            WarrantyMetrics      `json:"warranty"`
	Sales               SalesMetrics         `json:"sales"`
	Refunds             RefundMetrics        `json:"refunds"`
	Discounts           DiscountMetrics      `json:"discounts"`
	ProductRevenue      decimal.Decimal      `json:"productRevenue"`
	ProductProfit       decimal.Decimal      `json:"productProfit"`
	ProductProfitMargin float64              `json:"productProfitMargin"`
}

type ItemMetrics struct {
	TotalItems      int             `json:"totalItems"`
	TotalVariations int             `json:"totalVariations"`
	TotalStock      int             `json:"totalStock"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	AvgProductValue Float           `json:"avgProductValue"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
	LowStockItems   []LowStockItem  `json:"lowStockItems"`
	ByCategory      map[string]int  `json:"byCategory"`
}

type LowStockItem struct {
	ItemName      string          `json:"itemName"`
	VariationName string          `json:"variationName"`
	SKU           *string         `json:"sku"`
	Stock         int             `json:"stock"`
	Value         decimal.Decimal `json:"value"`
}

type AdjustmentMetrics struct {
	Total       int `json:"total"`
	Increases   int `json:"increases"`
	Decreases   int `json:"decreases"`
	NetQuantity int `json:"netQuantity"`
}

type AuditMetrics struct {
	Total              int `json:"total"`
	Completed          int `json:"completed"`
	Pending            int `json:"pending"`
	TotalDiscrepancies int `json:"totalDiscrepancies"`
}

type PurchaseOrderMetrics struct {
	Total      int             `json:"total"`
	Draft      int             `json:"draft"`
	Ordered    int             `json:"ordered"`
	Received   int             `json:"received"`
	Cancelled  int             `json:"cancelled"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

type SupplierMetrics struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type ReturnMetrics struct {
	Total         int             `json:"total"`
	Pending       int             `json:"pending"`
	Approved      int             `json:"approved"`
	Rejected      int             `json:"rejected"`
	Completed     int             `json:"completed"`
	TotalRefunded decimal.Decimal `json:"totalRefunded"`
}

type TransferMetrics struct {
	Total         int `json:"total"`
	Pending       int `json:"pending"`
	InTransit     int `json:"inTransit"`
	Completed     int `json:"completed"`
	Cancelled     int `json:"cancelled"`
	TotalQuantity int `json:"totalQuantity"`
}

type ExchangeMetrics struct {
	Total                int             `json:"total"`
	Pending              int             `json:"pending"`
	Completed            int             `json:"completed"`
	TotalPriceDifference decimal.Decimal `json:"totalPriceDifference"`
}

type RentalMetrics struct {
	Total     int             `json:"total"`
	Active    int             `json:"active"`
	Returned  int             `json:"returned"`
	Overdue   int             `json:"overdue"`
	TotalFees decimal.Decimal `json:"totalFees"`
}

type SpecialPartMetrics struct {
	Total     int             `json:"total"`
	Pending   int             `json:"pending"`
	Received  int             `json:"received"`
	Installed int             `json:"installed"`
	Cancelled int             `json:"cancelled"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

type WarrantyMetrics struct {
	Total        int             `json:"total"`
	Submitted    int             `json:"submitted"`
	Approved     int             `json:"approved"`
	Denied       int             `json:"denied"`
	Paid         int             `json:"paid"`
	TotalClaimed decimal.Decimal `json:"totalClaimed"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
}

type SalesMetrics struct {
	TotalOrders       int             `json:"totalOrders"`
	Paid              int             `json:"paid"`
	Pending           int             `json:"pending"`
	Cancelled         int             `json:"cancelled"`
	Refunded          int             `json:"refunded"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	AverageOrderValue float64         `json:"averageOrderValue"`
}

type RefundMetrics struct {
	Total         int             `json:"total"`
	Pending       int             `json:"pending"`
	Completed     int             `json:"completed"`
	Rejected      int             `json:"rejected"`
	TotalRefunded decimal.Decimal `json:"totalRefunded"`
}

type DiscountMetrics struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Percentage int `json:"percentage"`
	Fixed      int `json:"fixed"`
	TotalUsage int `json:"totalUsage"`
}
