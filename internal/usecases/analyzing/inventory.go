package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// inventoryRecords são os conjuntos brutos consumidos pelo reducer de inventário e PDV
type inventoryRecords struct {
	items          []*domain.InventoryItem
	adjustments    []*domain.InventoryAdjustment
	audits         []*domain.InventoryAudit
	purchaseOrders []*domain.PurchaseOrder
	suppliers      []*domain.Supplier
	returns        []*domain.ProductReturn
	transfers      []*domain.StockTransfer
	exchanges      []*domain.Exchange
	rentals        []*domain.Rental
	specialParts   []*domain.SpecialPart
	warrantyClaims []*domain.WarrantyClaim
	orders         []*domain.Order
	refunds        []*domain.Refund
	discounts      []*domain.Discount
	revenue        domain.RevenueBreakdown
}

func (s *Service) GetInventoryAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.InventoryMetrics, error) {
	startedAt := time.Now()
	period := s.resolve(req)
	start, end := period.StartDate, period.EndDate

	var records inventoryRecords
	inventory, sales := s.repos.Inventory, s.repos.Sales

	g, gctx := errgroup.WithContext(ctx)
	// Itens e fornecedores são o cadastro atual, sem filtro de período
	g.Go(func() (err error) {
		records.items, err = inventory.ListItems(gctx)
		return err
	})
	g.Go(func() (err error) {
		records.suppliers, err = inventory.ListSuppliers(gctx)
		return err
	})
	g.Go(func() (err error) {
		records.adjustments, err = inventory.ListAdjustments(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.audits, err = inventory.ListAudits(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.purchaseOrders, err = inventory.ListPurchaseOrders(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.returns, err = inventory.ListReturns(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.transfers, err = inventory.ListTransfers(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.exchanges, err = inventory.ListExchanges(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.rentals, err = inventory.ListRentals(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.specialParts, err = inventory.ListSpecialParts(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.warrantyClaims, err = inventory.ListWarrantyClaims(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.orders, err = sales.ListOrders(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.refunds, err = sales.ListRefunds(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.discounts, err = sales.ListDiscounts(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.revenue, err = s.ClassifyRevenue(gctx, period)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := reduceInventory(period, records)
	logReduce(ctx, "inventory", period, startedAt)

	return metrics, nil
}

func reduceInventory(period domain.Period, records inventoryRecords) *domain.InventoryMetrics {
	metrics := &domain.InventoryMetrics{
		Period:         period.Token,
		DateRange:      period.DateRange(),
		Items:          reduceItems(records.items),
		Adjustments:    reduceAdjustments(records.adjustments),
		Audits:         reduceAudits(records.audits),
		PurchaseOrders: reducePurchaseOrders(records.purchaseOrders),
		Suppliers:      reduceSuppliers(records.suppliers),
		Returns:        reduceReturns(records.returns),
		Transfers:      reduceTransfers(records.transfers),
		Exchanges:      reduceExchanges(records.exchanges),
		Rentals:        reduceRentals(records.rentals),
		SpecialParts:   reduceSpecialParts(records.specialParts),
		Warranty:       reduceWarranty(records.warrantyClaims),
		Sales:          reduceSales(records.orders),
		Refunds:        reduceRefunds(records.refunds),
		Discounts:      reduceDiscounts(records.discounts),
		ProductRevenue: records.revenue.IncomeFromProducts,
		ProductProfit:  records.revenue.ProfitFromProducts,
	}

	if metrics.ProductRevenue.IsPositive() {
		metrics.ProductProfitMargin = utils.RoundWithTwoDecimalPlace(
			metrics.ProductProfit.Div(metrics.ProductRevenue).Mul(decimal.NewFromInt(100)).InexactFloat64(),
		)
	}

	return metrics
}

// reduceItems soma estoque e valor por variação. avgProductValue não tem proteção contra
// divisão por zero: sem variações o resultado é NaN.
func reduceItems(items []*domain.InventoryItem) domain.ItemMetrics {
	metrics := domain.ItemMetrics{
		TotalItems:    len(items),
		LowStockItems: []domain.LowStockItem{},
		ByCategory:    map[string]int{},
	}

	for _, item := range items {
		if len(item.Categories) == 0 {
			metrics.ByCategory[domain.UncategorizedLabel]++
		}
		for _, category := range item.Categories {
			metrics.ByCategory[category]++
		}

		for _, variation := range item.Variations {
			value := variation.Price.Mul(decimal.NewFromInt(int64(variation.Stock)))

			metrics.TotalVariations++
			metrics.TotalStock += variation.Stock
			metrics.TotalValue = metrics.TotalValue.Add(value)

			if variation.Stock <= domain.LowStockThreshold {
				metrics.LowStockCount++
				metrics.LowStockItems = append(metrics.LowStockItems, domain.LowStockItem{
					ItemName:      item.Name,
					VariationName: variation.Name,
					SKU:           variation.SKU,
					Stock:         variation.Stock,
					Value:         value,
				})
			}
			if variation.Stock <= 0 {
				metrics.OutOfStockCount++
			}
		}
	}

	metrics.AvgProductValue = domain.Float(metrics.TotalValue.InexactFloat64() / float64(metrics.TotalVariations))

	return metrics
}

func reduceAdjustments(adjustments []*domain.InventoryAdjustment) domain.AdjustmentMetrics {
	metrics := domain.AdjustmentMetrics{Total: len(adjustments)}

	for _, adjustment := range adjustments {
		switch adjustment.Type {
		case domain.AdjustmentIncrease:
			metrics.Increases++
			metrics.NetQuantity += adjustment.Quantity
		case domain.AdjustmentDecrease:
			metrics.Decreases++
			metrics.NetQuantity -= adjustment.Quantity
		}
	}

	return metrics
}

func reduceAudits(audits []*domain.InventoryAudit) domain.AuditMetrics {
	metrics := domain.AuditMetrics{Total: len(audits)}

	for _, audit := range audits {
		switch audit.Status {
		case domain.AuditStatusCompleted:
			metrics.Completed++
		case domain.AuditStatusPending:
			metrics.Pending++
		}
		metrics.TotalDiscrepancies += audit.Discrepancies
	}

	return metrics
}

func reducePurchaseOrders(orders []*domain.PurchaseOrder) domain.PurchaseOrderMetrics {
	metrics := domain.PurchaseOrderMetrics{Total: len(orders)}

	for _, order := range orders {
		switch order.Status {
		case domain.PurchaseOrderDraft:
			metrics.Draft++
		case domain.PurchaseOrderOrdered:
			metrics.Ordered++
		case domain.PurchaseOrderReceived:
			metrics.Received++
		case domain.PurchaseOrderCancelled:
			metrics.Cancelled++
		}
		metrics.TotalValue = metrics.TotalValue.Add(order.Total)
	}

	return metrics
}

func reduceSuppliers(suppliers []*domain.Supplier) domain.SupplierMetrics {
	metrics := domain.SupplierMetrics{Total: len(suppliers)}

	for _, supplier := range suppliers {
		if supplier.Active {
			metrics.Active++
		}
	}

	return metrics
}

func reduceReturns(returns []*domain.ProductReturn) domain.ReturnMetrics {
	metrics := domain.ReturnMetrics{Total: len(returns)}

	for _, ret := range returns {
		switch ret.Status {
		case domain.ReturnStatusPending:
			metrics.Pending++
		case domain.ReturnStatusApproved:
			metrics.Approved++
		case domain.ReturnStatusRejected:
			metrics.Rejected++
		case domain.ReturnStatusCompleted:
			metrics.Completed++
		}
		metrics.TotalRefunded = metrics.TotalRefunded.Add(ret.RefundAmount)
	}

	return metrics
}

func reduceTransfers(transfers []*domain.StockTransfer) domain.TransferMetrics {
	metrics := domain.TransferMetrics{Total: len(transfers)}

	for _, transfer := range transfers {
		switch transfer.Status {
		case domain.TransferStatusPending:
			metrics.Pending++
		case domain.TransferStatusInTransit:
			metrics.InTransit++
		case domain.TransferStatusCompleted:
			metrics.Completed++
		case domain.TransferStatusCancelled:
			metrics.Cancelled++
		}
		metrics.TotalQuantity += transfer.Quantity
	}

	return metrics
}

func reduceExchanges(exchanges []*domain.Exchange) domain.ExchangeMetrics {
	metrics := domain.ExchangeMetrics{Total: len(exchanges)}

	for _, exchange := range exchanges {
		switch exchange.Status {
		case domain.ExchangeStatusPending:
			metrics.Pending++
		case domain.ExchangeStatusCompleted:
			metrics.Completed++
		}
		metrics.TotalPriceDifference = metrics.TotalPriceDifference.Add(exchange.PriceDifference)
	}

	return metrics
}

func reduceRentals(rentals []*domain.Rental) domain.RentalMetrics {
	metrics := domain.RentalMetrics{Total: len(rentals)}

	for _, rental := range rentals {
		switch rental.Status {
		case domain.RentalStatusActive:
			metrics.Active++
		case domain.RentalStatusReturned:
			metrics.Returned++
		case domain.RentalStatusOverdue:
			metrics.Overdue++
		}
		metrics.TotalFees = metrics.TotalFees.Add(rental.Fee)
	}

	return metrics
}

// reduceSpecialParts: pendente é tudo que ainda não chegou (solicitado ou encomendado)
func reduceSpecialParts(parts []*domain.SpecialPart) domain.SpecialPartMetrics {
	metrics := domain.SpecialPartMetrics{Total: len(parts)}

	for _, part := range parts {
		switch part.Status {
		case domain.SpecialPartRequested, domain.SpecialPartOrdered:
			metrics.Pending++
		case domain.SpecialPartReceived:
			metrics.Received++
		case domain.SpecialPartInstalled:
			metrics.Installed++
		case domain.SpecialPartCancelled:
			metrics.Cancelled++
		}
		metrics.TotalCost = metrics.TotalCost.Add(part.Cost)
	}

	return metrics
}

func reduceWarranty(claims []*domain.WarrantyClaim) domain.WarrantyMetrics {
	metrics := domain.WarrantyMetrics{Total: len(claims)}

	for _, claim := range claims {
		switch claim.Status {
		case domain.ClaimStatusSubmitted:
			metrics.Submitted++
		case domain.ClaimStatusApproved:
			metrics.Approved++
		case domain.ClaimStatusDenied:
			metrics.Denied++
		case domain.ClaimStatusPaid:
			metrics.Paid++
			metrics.TotalPaid = metrics.TotalPaid.Add(claim.ClaimAmount)
		}
		metrics.TotalClaimed = metrics.TotalClaimed.Add(claim.ClaimAmount)
	}

	return metrics
}

func reduceSales(orders []*domain.Order) domain.SalesMetrics {
	metrics := domain.SalesMetrics{TotalOrders: len(orders)}

	for _, order := range orders {
		switch order.Status {
		case domain.OrderStatusPaid:
			metrics.Paid++
			metrics.TotalSales = metrics.TotalSales.Add(order.Total)
		case domain.OrderStatusPending:
			metrics.Pending++
		case domain.OrderStatusCancelled:
			metrics.Cancelled++
		case domain.OrderStatusRefunded:
			metrics.Refunded++
		}
	}

	metrics.AverageOrderValue = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(metrics.TotalSales.InexactFloat64(), float64(metrics.Paid)),
	)

	return metrics
}

func reduceRefunds(refunds []*domain.Refund) domain.RefundMetrics {
	metrics := domain.RefundMetrics{Total: len(refunds)}

	for _, refund := range refunds {
		switch refund.Status {
		case domain.RefundStatusPending:
			metrics.Pending++
		case domain.RefundStatusCompleted:
			metrics.Completed++
			metrics.TotalRefunded = metrics.TotalRefunded.Add(refund.Amount)
		case domain.RefundStatusRejected:
			metrics.Rejected++
		}
	}

	return metrics
}

func reduceDiscounts(discounts []*domain.Discount) domain.DiscountMetrics {
	metrics := domain.DiscountMetrics{Total: len(discounts)}

	for _, discount := range discounts {
		if discount.Active {
			metrics.Active++
		}
		switch discount.Type {
		case domain.DiscountTypePercentage:
			metrics.Percentage++
		case domain.DiscountTypeFixed:
			metrics.Fixed++
		}
		metrics.TotalUsage += discount.UsageCount
	}

	return metrics
}
