package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

const (
	inventoryItemsTable      = "inventory_items ii"
	inventoryVariationsTable = "inventory_variations iv"
)

type InventoryRepository interface {
	ListItems(ctx context.Context) ([]*domain.InventoryItem, error)
	ListAdjustments(ctx context.Context, start, end time.Time) ([]*domain.InventoryAdjustment, error)
	ListAudits(ctx context.Context, start, end time.Time) ([]*domain.InventoryAudit, error)
	ListPurchaseOrders(ctx context.Context, start, end time.Time) ([]*domain.PurchaseOrder, error)
	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)
	ListReturns(ctx context.Context, start, end time.Time) ([]*domain.ProductReturn, error)
	ListTransfers(ctx context.Context, start, end time.Time) ([]*domain.StockTransfer, error)
	ListExchanges(ctx context.Context, start, end time.Time) ([]*domain.Exchange, error)
	ListRentals(ctx context.Context, start, end time.Time) ([]*domain.Rental, error)
	ListSpecialParts(ctx context.Context, start, end time.Time) ([]*domain.SpecialPart, error)
	ListWarrantyClaims(ctx context.Context, start, end time.Time) ([]*domain.WarrantyClaim, error)
}

type inventoryRepository struct {
	conn *postgres.Connection
}

func NewInventoryRepository(conn *postgres.Connection) InventoryRepository {
	return &inventoryRepository{
		conn: conn,
	}
}

// ListItems retorna o catálogo atual (fotografia, sem filtro de data) com variações e categorias
func (r *inventoryRepository) ListItems(ctx context.Context) ([]*domain.InventoryItem, error) {
	builder := psql.
		Select("ii.id, ii.name, ii.created_at").
		From(inventoryItemsTable).
		OrderBy("ii.name ASC, ii.id ASC")

	items, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.InventoryItem, error) {
		item := domain.InventoryItem{Categories: make([]string, 0), Variations: make([]domain.Variation, 0)}
		if err := row.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			return nil, err
		}
		return &item, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar itens do inventário")
	}

	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(items))
	byID := make(map[string]*domain.InventoryItem, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
		byID[item.ID] = item
	}

	variationBuilder := psql.
		Select("iv.id, iv.item_id, iv.name, iv.sku, iv.price, iv.stock").
		From(inventoryVariationsTable).
		Where("iv.item_id = ANY(?)", pq.Array(ids)).
		OrderBy("iv.item_id, iv.id")

	variations, err := selectList(ctx, r.conn, variationBuilder, func(row rowScanner) (*domain.Variation, error) {
		var (
			variation domain.Variation
			sku       sql.NullString
		)
		if err := row.Scan(&variation.ID, &variation.ItemID, &variation.Name, &sku, &variation.Price, &variation.Stock); err != nil {
			return nil, err
		}
		variation.SKU = nullString(sku)
		return &variation, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar variações do inventário")
	}

	for _, variation := range variations {
		if item, ok := byID[variation.ItemID]; ok {
			item.Variations = append(item.Variations, *variation)
		}
	}

	categoryBuilder := psql.
		Select("iic.item_id, ic.name").
		From("inventory_item_categories iic").
		Join("inventory_categories ic ON ic.id = iic.category_id").
		Where("iic.item_id = ANY(?)", pq.Array(ids)).
		OrderBy("iic.item_id, ic.name")

	type itemCategory struct {
		itemID string
		name   string
	}

	categories, err := selectList(ctx, r.conn, categoryBuilder, func(row rowScanner) (*itemCategory, error) {
		var category itemCategory
		if err := row.Scan(&category.itemID, &category.name); err != nil {
			return nil, err
		}
		return &category, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar categorias do inventário")
	}

	for _, category := range categories {
		if item, ok := byID[category.itemID]; ok {
			item.Categories = append(item.Categories, category.name)
		}
	}

	return items, nil
}

func (r *inventoryRepository) ListAdjustments(ctx context.Context, start, end time.Time) ([]*domain.InventoryAdjustment, error) {
	builder := psql.
		Select("ia.id, ia.variation_id, ia.type, ia.quantity, ia.reason, ia.created_at").
		From("inventory_adjustments ia").
		Where(createdBetween("ia.created_at", start, end)).
		OrderBy("ia.created_at ASC")

	adjustments, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.InventoryAdjustment, error) {
		var (
			adjustment domain.InventoryAdjustment
			reason     sql.NullString
		)
		if err := row.Scan(&adjustment.ID, &adjustment.VariationID, &adjustment.Type, &adjustment.Quantity, &reason, &adjustment.CreatedAt); err != nil {
			return nil, err
		}
		adjustment.Reason = nullString(reason)
		return &adjustment, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ajustes de estoque")
	}

	return adjustments, nil
}

func (r *inventoryRepository) ListAudits(ctx context.Context, start, end time.Time) ([]*domain.InventoryAudit, error) {
	builder := psql.
		Select("au.id, au.status, au.discrepancies, au.created_at").
		From("inventory_audits au").
		Where(createdBetween("au.created_at", start, end)).
		OrderBy("au.created_at ASC")

	audits, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.InventoryAudit, error) {
		var audit domain.InventoryAudit
		if err := row.Scan(&audit.ID, &audit.Status, &audit.Discrepancies, &audit.CreatedAt); err != nil {
			return nil, err
		}
		return &audit, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar auditorias de estoque")
	}

	return audits, nil
}

func (r *inventoryRepository) ListPurchaseOrders(ctx context.Context, start, end time.Time) ([]*domain.PurchaseOrder, error) {
	builder := psql.
		Select("po.id, po.supplier_id, po.status, po.total, po.created_at").
		From("purchase_orders po").
		Where(createdBetween("po.created_at", start, end)).
		OrderBy("po.created_at ASC")

	purchaseOrders, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.PurchaseOrder, error) {
		var (
			purchaseOrder domain.PurchaseOrder
			supplierID    sql.NullString
		)
		if err := row.Scan(&purchaseOrder.ID, &supplierID, &purchaseOrder.Status, &purchaseOrder.Total, &purchaseOrder.CreatedAt); err != nil {
			return nil, err
		}
		purchaseOrder.SupplierID = nullString(supplierID)
		return &purchaseOrder, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar pedidos de compra")
	}

	return purchaseOrders, nil
}

func (r *inventoryRepository) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	builder := psql.
		Select("s.id, s.name, s.active, s.created_at").
		From("suppliers s").
		OrderBy("s.name ASC")

	suppliers, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Supplier, error) {
		var supplier domain.Supplier
		if err := row.Scan(&supplier.ID, &supplier.Name, &supplier.Active, &supplier.CreatedAt); err != nil {
			return nil, err
		}
		return &supplier, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar fornecedores")
	}

	return suppliers, nil
}

func (r *inventoryRepository) ListReturns(ctx context.Context, start, end time.Time) ([]*domain.ProductReturn, error) {
	builder := psql.
		Select("pr.id, pr.order_id, pr.status, pr.refund_amount, pr.created_at").
		From("product_returns pr").
		Where(createdBetween("pr.created_at", start, end)).
		OrderBy("pr.created_at ASC")

	returns, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.ProductReturn, error) {
		var (
			productReturn domain.ProductReturn
			orderID       sql.NullString
		)
		if err := row.Scan(&productReturn.ID, &orderID, &productReturn.Status, &productReturn.RefundAmount, &productReturn.CreatedAt); err != nil {
			return nil, err
		}
		productReturn.OrderID = nullString(orderID)
		return &productReturn, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar devoluções")
	}

	return returns, nil
}

func (r *inventoryRepository) ListTransfers(ctx context.Context, start, end time.Time) ([]*domain.StockTransfer, error) {
	builder := psql.
		Select("st.id, st.from_location_id, st.to_location_id, st.status, st.quantity, st.created_at").
		From("stock_transfers st").
		Where(createdBetween("st.created_at", start, end)).
		OrderBy("st.created_at ASC")

	transfers, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.StockTransfer, error) {
		var transfer domain.StockTransfer
		if err := row.Scan(
			&transfer.ID,
			&transfer.FromLocationID,
			&transfer.ToLocationID,
			&transfer.Status,
			&transfer.Quantity,
			&transfer.CreatedAt,
		); err != nil {
			return nil, err
		}
		return &transfer, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar transferências")
	}

	return transfers, nil
}

func (r *inventoryRepository) ListExchanges(ctx context.Context, start, end time.Time) ([]*domain.Exchange, error) {
	builder := psql.
		Select("ex.id, ex.status, ex.price_difference, ex.created_at").
		From("exchanges ex").
		Where(createdBetween("ex.created_at", start, end)).
		OrderBy("ex.created_at ASC")

	exchanges, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Exchange, error) {
		var exchange domain.Exchange
		if err := row.Scan(&exchange.ID, &exchange.Status, &exchange.PriceDifference, &exchange.CreatedAt); err != nil {
			return nil, err
		}
		return &exchange, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar trocas")
	}

	return exchanges, nil
}

func (r *inventoryRepository) ListRentals(ctx context.Context, start, end time.Time) ([]*domain.Rental, error) {
	builder := psql.
		Select("rt.id, rt.status, rt.fee, rt.created_at").
		From("rentals rt").
		Where(createdBetween("rt.created_at", start, end)).
		OrderBy("rt.created_at ASC")

	rentals, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Rental, error) {
		var rental domain.Rental
		if err := row.Scan(&rental.ID, &rental.Status, &rental.Fee, &rental.CreatedAt); err != nil {
			return nil, err
		}
		return &rental, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar aluguéis")
	}

	return rentals, nil
}

func (r *inventoryRepository) ListSpecialParts(ctx context.Context, start, end time.Time) ([]*domain.SpecialPart, error) {
	builder := psql.
		Select("sp.id, sp.status, sp.cost, sp.created_at").
		From("special_parts sp").
		Where(createdBetween("sp.created_at", start, end)).
		OrderBy("sp.created_at ASC")

	parts, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.SpecialPart, error) {
		var part domain.SpecialPart
		if err := row.Scan(&part.ID, &part.Status, &part.Cost, &part.CreatedAt); err != nil {
			return nil, err
		}
		return &part, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar peças especiais")
	}

	return parts, nil
}

func (r *inventoryRepository) ListWarrantyClaims(ctx context.Context, start, end time.Time) ([]*domain.WarrantyClaim, error) {
	builder := psql.
		Select("wc.id, wc.status, wc.claim_amount, wc.created_at").
		From("warranty_claims wc").
		Where(createdBetween("wc.created_at", start, end)).
		OrderBy("wc.created_at ASC")

	claims, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.WarrantyClaim, error) {
		var claim domain.WarrantyClaim
		if err := row.Scan(&claim.ID, &claim.Status, &claim.ClaimAmount, &claim.CreatedAt); err != nil {
			return nil, err
		}
		return &claim, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar acionamentos de garantia")
	}

	return claims, nil
}
