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
	ticketsTable       = "tickets t"
	repairDevicesTable = "repair_devices rd"
	repairOptionsTable = "repair_options ro"
	quotesTable        = "quotes q"
	diagnosticsTable   = "diagnostics dg"
)

type RepairRepository interface {
	ListTickets(ctx context.Context, start, end time.Time) ([]*domain.Ticket, error)
	ListQuotes(ctx context.Context, start, end time.Time) ([]*domain.Quote, error)
	ListDiagnostics(ctx context.Context, start, end time.Time) ([]*domain.Diagnostic, error)
}

type repairRepository struct {
	conn *postgres.Connection
}

func NewRepairRepository(conn *postgres.Connection) RepairRepository {
	return &repairRepository{
		conn: conn,
	}
}

// ListTickets retorna os tickets criados no período com aparelhos e opções de reparo.
// A cadeia ticket -> aparelho -> opção é montada com duas queries adicionais.
func (r *repairRepository) ListTickets(ctx context.Context, start, end time.Time) ([]*domain.Ticket, error) {
	builder := psql.
		Select("t.id, t.ticket_number, t.customer_id, t.staff_id, t.location_id, t.status, t.created_at, t.completed_at").
		From(ticketsTable).
		Where(createdBetween("t.created_at", start, end)).
		OrderBy("t.created_at ASC")

	tickets, err := selectList(ctx, r.conn, builder, scanTicket)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar tickets")
	}

	if err := r.attachDevices(ctx, tickets); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *repairRepository) attachDevices(ctx context.Context, tickets []*domain.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	ticketIDs := make([]string, 0, len(tickets))
	for _, ticket := range tickets {
		ticketIDs = append(ticketIDs, ticket.ID)
	}

	deviceBuilder := psql.
		Select("rd.id, rd.ticket_id, rd.model, b.name").
		From(repairDevicesTable).
		LeftJoin("brands b ON b.id = rd.brand_id").
		Where("rd.ticket_id = ANY(?)", pq.Array(ticketIDs)).
		OrderBy("rd.ticket_id, rd.id")

	devices, err := selectList(ctx, r.conn, deviceBuilder, func(row rowScanner) (*domain.RepairDevice, error) {
		var (
			device domain.RepairDevice
			brand  sql.NullString
		)
		if err := row.Scan(&device.ID, &device.TicketID, &device.Model, &brand); err != nil {
			return nil, err
		}
		device.BrandName = nullString(brand)
		return &device, nil
	})
	if err != nil {
		return errors.Wrap(err, "erro ao listar aparelhos dos tickets")
	}

	if len(devices) > 0 {
		deviceIDs := make([]string, 0, len(devices))
		for _, device := range devices {
			deviceIDs = append(deviceIDs, device.ID)
		}

		optionBuilder := psql.
			Select("ro.id, ro.repair_device_id, ro.name, ro.price, rt.name").
			From(repairOptionsTable).
			LeftJoin("repair_types rt ON rt.id = ro.repair_type_id").
			Where("ro.repair_device_id = ANY(?)", pq.Array(deviceIDs)).
			OrderBy("ro.repair_device_id, ro.id")

		options, err := selectList(ctx, r.conn, optionBuilder, func(row rowScanner) (*domain.RepairOption, error) {
			var (
				option     domain.RepairOption
				repairType sql.NullString
			)
			if err := row.Scan(&option.ID, &option.RepairDeviceID, &option.Name, &option.Price, &repairType); err != nil {
				return nil, err
			}
			option.RepairTypeName = nullString(repairType)
			return &option, nil
		})
		if err != nil {
			return errors.Wrap(err, "erro ao listar opções de reparo")
		}

		optionsByDevice := make(map[string][]domain.RepairOption)
		for _, option := range options {
			optionsByDevice[option.RepairDeviceID] = append(optionsByDevice[option.RepairDeviceID], *option)
		}
		for _, device := range devices {
			device.RepairOptions = optionsByDevice[device.ID]
		}
	}

	byTicket := make(map[string]*domain.Ticket, len(tickets))
	for _, ticket := range tickets {
		byTicket[ticket.ID] = ticket
	}
	for _, device := range devices {
		if ticket, ok := byTicket[device.TicketID]; ok {
			ticket.Devices = append(ticket.Devices, *device)
		}
	}

	return nil
}

func (r *repairRepository) ListQuotes(ctx context.Context, start, end time.Time) ([]*domain.Quote, error) {
	builder := psql.
		Select("q.id, q.customer_id, q.amount, q.converted_to_ticket, q.expires_at, q.created_at").
		From(quotesTable).
		Where(createdBetween("q.created_at", start, end)).
		OrderBy("q.created_at ASC")

	quotes, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Quote, error) {
		var (
			quote      domain.Quote
			customerID sql.NullString
		)
		if err := row.Scan(&quote.ID, &customerID, &quote.Amount, &quote.ConvertedToTicket, &quote.ExpiresAt, &quote.CreatedAt); err != nil {
			return nil, err
		}
		quote.CustomerID = nullString(customerID)
		return &quote, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar orçamentos")
	}

	return quotes, nil
}

func (r *repairRepository) ListDiagnostics(ctx context.Context, start, end time.Time) ([]*domain.Diagnostic, error) {
	builder := psql.
		Select("dg.id, dg.customer_id, dg.status, dg.fee, dg.converted_to_ticket, dg.created_at").
		From(diagnosticsTable).
		Where(createdBetween("dg.created_at", start, end)).
		OrderBy("dg.created_at ASC")

	diagnostics, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Diagnostic, error) {
		var (
			diagnostic domain.Diagnostic
			customerID sql.NullString
		)
		if err := row.Scan(
			&diagnostic.ID,
			&customerID,
			&diagnostic.Status,
			&diagnostic.Fee,
			&diagnostic.ConvertedToTicket,
			&diagnostic.CreatedAt,
		); err != nil {
			return nil, err
		}
		diagnostic.CustomerID = nullString(customerID)
		return &diagnostic, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar diagnósticos")
	}

	return diagnostics, nil
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	var (
		ticket      domain.Ticket
		customerID  sql.NullString
		staffID     sql.NullString
		locationID  sql.NullString
		completedAt sql.NullTime
	)

	if err := row.Scan(
		&ticket.ID,
		&ticket.TicketNumber,
		&customerID,
		&staffID,
		&locationID,
		&ticket.Status,
		&ticket.CreatedAt,
		&completedAt,
	); err != nil {
		return nil, err
	}

	ticket.CustomerID = nullString(customerID)
	ticket.StaffID = nullString(staffID)
	ticket.LocationID = nullString(locationID)
	ticket.CompletedAt = nullTime(completedAt)
	ticket.Devices = make([]domain.RepairDevice, 0)

	return &ticket, nil
}
