package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

type CommunicationRepository interface {
	ListCalls(ctx context.Context, start, end time.Time) ([]*domain.Call, error)
	ListTexts(ctx context.Context, start, end time.Time) ([]*domain.TextMessage, error)
	ListEmails(ctx context.Context, start, end time.Time) ([]*domain.Email, error)
	ListNotifications(ctx context.Context, start, end time.Time) ([]*domain.Notification, error)
	ListAnnouncements(ctx context.Context, start, end time.Time) ([]*domain.Announcement, error)
}

type communicationRepository struct {
	conn *postgres.Connection
}

func NewCommunicationRepository(conn *postgres.Connection) CommunicationRepository {
	return &communicationRepository{
		conn: conn,
	}
}

func (r *communicationRepository) ListCalls(ctx context.Context, start, end time.Time) ([]*domain.Call, error) {
	builder := psql.
		Select("c.id, c.direction, c.status, c.duration_seconds, c.created_at").
		From("calls c").
		Where(createdBetween("c.created_at", start, end)).
		OrderBy("c.created_at ASC")

	calls, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Call, error) {
		var call domain.Call
		if err := row.Scan(&call.ID, &call.Direction, &call.Status, &call.DurationSeconds, &call.CreatedAt); err != nil {
			return nil, err
		}
		return &call, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ligações")
	}

	return calls, nil
}

func (r *communicationRepository) ListTexts(ctx context.Context, start, end time.Time) ([]*domain.TextMessage, error) {
	builder := psql.
		Select("tm.id, tm.direction, tm.status, tm.created_at").
		From("text_messages tm").
		Where(createdBetween("tm.created_at", start, end)).
		OrderBy("tm.created_at ASC")

	texts, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.TextMessage, error) {
		var text domain.TextMessage
		if err := row.Scan(&text.ID, &text.Direction, &text.Status, &text.CreatedAt); err != nil {
			return nil, err
		}
		return &text, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar mensagens de texto")
	}

	return texts, nil
}

// ListEmails traz o registro de engajamento (quando existe) pelo LEFT JOIN
func (r *communicationRepository) ListEmails(ctx context.Context, start, end time.Time) ([]*domain.Email, error) {
	builder := psql.
		Select("e.id, e.subject, e.status, e.created_at, ee.email_id, ee.opened_at, ee.clicked_at").
		From("emails e").
		LeftJoin("email_engagements ee ON ee.email_id = e.id").
		Where(createdBetween("e.created_at", start, end)).
		OrderBy("e.created_at ASC")

	emails, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Email, error) {
		var (
			email        domain.Email
			engagementID sql.NullString
			openedAt     sql.NullTime
			clickedAt    sql.NullTime
		)
		if err := row.Scan(&email.ID, &email.Subject, &email.Status, &email.CreatedAt, &engagementID, &openedAt, &clickedAt); err != nil {
			return nil, err
		}
		if engagementID.Valid {
			email.Engagement = &domain.EmailEngagement{
				OpenedAt:  nullTime(openedAt),
				ClickedAt: nullTime(clickedAt),
			}
		}
		return &email, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar e-mails")
	}

	return emails, nil
}

func (r *communicationRepository) ListNotifications(ctx context.Context, start, end time.Time) ([]*domain.Notification, error) {
	builder := psql.
		Select("n.id, n.channel, n.read, n.created_at").
		From("notifications n").
		Where(createdBetween("n.created_at", start, end)).
		OrderBy("n.created_at ASC")

	notifications, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Notification, error) {
		var notification domain.Notification
		if err := row.Scan(&notification.ID, &notification.Channel, &notification.Read, &notification.CreatedAt); err != nil {
			return nil, err
		}
		return &notification, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar notificações")
	}

	return notifications, nil
}

func (r *communicationRepository) ListAnnouncements(ctx context.Context, start, end time.Time) ([]*domain.Announcement, error) {
	builder := psql.
		Select("an.id, an.title, an.active, an.views, an.created_at").
		From("announcements an").
		Where(createdBetween("an.created_at", start, end)).
		OrderBy("an.created_at ASC")

	announcements, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Announcement, error) {
		var announcement domain.Announcement
		if err := row.Scan(&announcement.ID, &announcement.Title, &announcement.Active, &announcement.Views, &announcement.CreatedAt); err != nil {
			return nil, err
		}
		return &announcement, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar comunicados")
	}

	return announcements, nil
}
