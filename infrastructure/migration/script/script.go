package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// schema cria as tabelas lidas pelos repositórios de analytics. As tabelas de origem pertencem
// ao back-office; este script existe para ambientes locais e de homologação.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		total_repairs INTEGER NOT NULL DEFAULT 0,
		total_sales INTEGER NOT NULL DEFAULT 0,
		average_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id TEXT PRIMARY KEY,
		ticket_number TEXT NOT NULL,
		customer_id TEXT REFERENCES customers (id),
		staff_id TEXT REFERENCES staff (id),
		location_id TEXT REFERENCES locations (id),
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS brands (id TEXT PRIMARY KEY, name TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS repair_types (id TEXT PRIMARY KEY, name TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS repair_devices (
		id TEXT PRIMARY KEY,
		ticket_id TEXT NOT NULL REFERENCES tickets (id),
		model TEXT NOT NULL,
		brand_id TEXT REFERENCES brands (id)
	)`,
	`CREATE TABLE IF NOT EXISTS repair_options (
		id TEXT PRIMARY KEY,
		repair_device_id TEXT NOT NULL REFERENCES repair_devices (id),
		name TEXT NOT NULL,
		price NUMERIC(12, 2) NOT NULL,
		repair_type_id TEXT REFERENCES repair_types (id)
	)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id TEXT PRIMARY KEY,
		customer_id TEXT,
		amount NUMERIC(12, 2) NOT NULL,
		converted_to_ticket BOOLEAN NOT NULL DEFAULT FALSE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS diagnostics (
		id TEXT PRIMARY KEY,
		customer_id TEXT,
		status TEXT NOT NULL,
		fee NUMERIC(12, 2) NOT NULL DEFAULT 0,
		converted_to_ticket BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT,
		location_id TEXT,
		status TEXT NOT NULL,
		total NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders (id),
		name TEXT NOT NULL,
		item_type TEXT,
		price NUMERIC(12, 2) NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS refunds (
		id TEXT PRIMARY KEY,
		order_id TEXT,
		amount NUMERIC(12, 2) NOT NULL,
		status TEXT NOT NULL,
		reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS discounts (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL,
		type TEXT NOT NULL,
		value NUMERIC(12, 2) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		usage_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS calls (
		id TEXT PRIMARY KEY,
		direction TEXT NOT NULL,
		status TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS text_messages (
		id TEXT PRIMARY KEY,
		direction TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS emails (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS email_engagements (
		email_id TEXT PRIMARY KEY REFERENCES emails (id),
		opened_at TIMESTAMPTZ,
		clicked_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		channel TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		views INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_variations (
		id TEXT PRIMARY KEY,
		item_id TEXT NOT NULL REFERENCES inventory_items (id),
		name TEXT NOT NULL,
		sku TEXT,
		price NUMERIC(12, 2) NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_categories (id TEXT PRIMARY KEY, name TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS inventory_item_categories (
		item_id TEXT NOT NULL REFERENCES inventory_items (id),
		category_id TEXT NOT NULL REFERENCES inventory_categories (id),
		PRIMARY KEY (item_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS stock_levels (
		location_id TEXT NOT NULL REFERENCES locations (id),
		variation_id TEXT NOT NULL REFERENCES inventory_variations (id),
		quantity INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (location_id, variation_id)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_adjustments (
		id TEXT PRIMARY KEY,
		variation_id TEXT NOT NULL,
		type TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_audits (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		discrepancies INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id TEXT PRIMARY KEY,
		supplier_id TEXT,
		status TEXT NOT NULL,
		total NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS product_returns (
		id TEXT PRIMARY KEY,
		order_id TEXT,
		status TEXT NOT NULL,
		refund_amount NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_transfers (
		id TEXT PRIMARY KEY,
		from_location_id TEXT NOT NULL,
		to_location_id TEXT NOT NULL,
		status TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS exchanges (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		price_difference NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rentals (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		fee NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS special_parts (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		cost NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS warranty_claims (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		claim_amount NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		customer_id TEXT,
		status TEXT NOT NULL,
		converted_to_ticket BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS mail_ins (
		id TEXT PRIMARY KEY,
		customer_id TEXT,
		status TEXT NOT NULL,
		converted_to_ticket BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS store_credit_transactions (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS loyalty_activities (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		type TEXT NOT NULL,
		points INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		customer_id TEXT,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		amount NUMERIC(12, 2) NOT NULL,
		status TEXT NOT NULL,
		due_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payrolls (
		id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		amount NUMERIC(12, 2) NOT NULL,
		status TEXT NOT NULL,
		paid_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS goal_categories (id TEXT PRIMARY KEY, name TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		target NUMERIC(12, 2) NOT NULL,
		current NUMERIC(12, 2) NOT NULL DEFAULT 0,
		category_id TEXT REFERENCES goal_categories (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	startTime := time.Now()

	for i, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao executar statement %d do schema: %w", i+1, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"tables":   len(schema),
		"duration": time.Since(startTime).String(),
	}).Info("Schema criado")

	return nil
}

// seed insere um conjunto pequeno de lojas, equipe, clientes, tickets e pedidos no mês corrente
func seed(ctx context.Context, tx *sql.Tx, now time.Time) error {
	startTime := time.Now()

	locationIDs := []string{generateID(), generateID()}
	for i, name := range []string{"Loja Centro", "Loja Norte"} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO locations (id, name, address, active) VALUES ($1, $2, $3, TRUE)`,
			locationIDs[i], name, fmt.Sprintf("Rua %d, 100", i+1),
		); err != nil {
			return fmt.Errorf("erro ao inserir loja %s: %w", name, err)
		}
	}

	staffIDs := make([]string, 0, 3)
	for i, name := range []string{"Ana", "Bruno", "Carla"} {
		id := generateID()
		staffIDs = append(staffIDs, id)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO staff (id, name, role, available, average_rating, created_at) VALUES ($1, $2, 'technician', TRUE, $3, $4)`,
			id, name, 4.0+float64(i)*0.3, now.AddDate(-(i + 1), 0, 0),
		); err != nil {
			return fmt.Errorf("erro ao inserir funcionário %s: %w", name, err)
		}
	}

	customerIDs := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		id := generateID()
		customerIDs = append(customerIDs, id)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO customers (id, name, email, created_at) VALUES ($1, $2, $3, $4)`,
			id, fmt.Sprintf("Cliente %d", i+1), fmt.Sprintf("cliente%d@example.com", i+1), now.AddDate(0, 0, -i*10),
		); err != nil {
			return fmt.Errorf("erro ao inserir cliente: %w", err)
		}
	}

	statuses := []string{"DONE", "DONE", "IN_PROGRESS", "NEW", "DONE", "CANCELLED"}
	for i := 0; i < 12; i++ {
		createdAt := now.AddDate(0, 0, -(i % 10))
		var completedAt *time.Time
		status := statuses[i%len(statuses)]
		if status == "DONE" {
			done := createdAt.Add(time.Duration(2+i) * time.Hour)
			completedAt = &done
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tickets (id, ticket_number, customer_id, staff_id, location_id, status, created_at, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			generateID(), fmt.Sprintf("T-%04d", i+1), customerIDs[i%len(customerIDs)], staffIDs[i%len(staffIDs)],
			locationIDs[i%len(locationIDs)], status, createdAt, completedAt,
		); err != nil {
			return fmt.Errorf("erro ao inserir ticket: %w", err)
		}
	}

	itemTypes := []string{"repair", "service", "product", "custom"}
	for i := 0; i < 8; i++ {
		orderID := generateID()
		price := decimal.NewFromInt(int64(50 * (i + 1)))

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (id, customer_id, location_id, status, total, created_at) VALUES ($1, $2, $3, 'PAID', $4, $5)`,
			orderID, customerIDs[i%len(customerIDs)], locationIDs[i%len(locationIDs)], price, now.AddDate(0, 0, -i),
		); err != nil {
			return fmt.Errorf("erro ao inserir pedido: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, name, item_type, price, quantity) VALUES ($1, $2, $3, $4, $5, 1)`,
			generateID(), orderID, fmt.Sprintf("Item %d", i+1), itemTypes[i%len(itemTypes)], price,
		); err != nil {
			return fmt.Errorf("erro ao inserir item do pedido: %w", err)
		}
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Dados de exemplo inseridos")

	return nil
}

func main() {
	withSeed := flag.Bool("seed", false, "insere dados de exemplo no mês corrente")
	flag.Parse()

	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if *withSeed {
			return seed(ctx, tx, time.Now())
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração falhou, transação revertida")
	}

	logrus.Info("Migração concluída com sucesso")
}
