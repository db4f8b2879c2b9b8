package analyzing

import (
	"context"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/pkg/utils"
	"golang.org/x/sync/errgroup"
)

func (s *Service) GetCommunicationAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.CommunicationMetrics, error) {
	startedAt := time.Now()
	period := s.resolve(req)

	var (
		calls         []*domain.Call
		texts         []*domain.TextMessage
		emails        []*domain.Email
		notifications []*domain.Notification
		announcements []*domain.Announcement
	)

	repo := s.repos.Communications
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		calls, err = repo.ListCalls(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		texts, err = repo.ListTexts(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		emails, err = repo.ListEmails(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		notifications, err = repo.ListNotifications(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		announcements, err = repo.ListAnnouncements(gctx, period.StartDate, period.EndDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := &domain.CommunicationMetrics{
		Period:        period.Token,
		DateRange:     period.DateRange(),
		Calls:         reduceCalls(calls),
		Texts:         reduceTexts(texts),
		Emails:        reduceEmails(emails),
		Notifications: reduceNotifications(notifications),
		Announcements: reduceAnnouncements(announcements),
	}
	logReduce(ctx, "communications", period, startedAt)

	return metrics, nil
}

func reduceCalls(calls []*domain.Call) domain.CallMetrics {
	metrics := domain.CallMetrics{Total: len(calls)}

	for _, call := range calls {
		switch call.Direction {
		case domain.DirectionInbound:
			metrics.Inbound++
		case domain.DirectionOutbound:
			metrics.Outbound++
		}

		switch call.Status {
		case domain.CallStatusAnswered:
			metrics.Answered++
		case domain.CallStatusMissed:
			metrics.Missed++
		case domain.CallStatusVoicemail:
			metrics.Voicemail++
		}

		metrics.TotalDuration += call.DurationSeconds
	}

	metrics.AnswerRate = utils.Percentage(metrics.Answered, metrics.Total)
	metrics.AverageDuration = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(float64(metrics.TotalDuration), float64(metrics.Total)),
	)

	return metrics
}

func reduceTexts(texts []*domain.TextMessage) domain.TextMetrics {
	metrics := domain.TextMetrics{Total: len(texts)}

	for _, text := range texts {
		switch text.Direction {
		case domain.DirectionInbound:
			metrics.Inbound++
		case domain.DirectionOutbound:
			metrics.Outbound++
		}

		switch text.Status {
		case domain.TextStatusDelivered:
			metrics.Delivered++
		case domain.TextStatusFailed:
			metrics.Failed++
		}
	}

	metrics.DeliveryRate = utils.Percentage(metrics.Delivered, metrics.Total)

	return metrics
}

// reduceEmails calcula abertura e clique sobre os e-mails com engajamento registrado
func reduceEmails(emails []*domain.Email) domain.EmailMetrics {
	metrics := domain.EmailMetrics{Total: len(emails)}

	for _, email := range emails {
		if email.Engagement == nil {
			continue
		}
		metrics.WithEngagement++
		if email.Engagement.OpenedAt != nil {
			metrics.Opened++
		}
		if email.Engagement.ClickedAt != nil {
			metrics.Clicked++
		}
	}

	metrics.OpenRate = utils.Percentage(metrics.Opened, metrics.WithEngagement)
	metrics.ClickRate = utils.Percentage(metrics.Clicked, metrics.WithEngagement)

	return metrics
}

func reduceNotifications(notifications []*domain.Notification) domain.NotificationMetrics {
	metrics := domain.NotificationMetrics{Total: len(notifications)}

	for _, notification := range notifications {
		if notification.Read {
			metrics.Read++
		}
	}

	metrics.Unread = metrics.Total - metrics.Read
	metrics.ReadRate = utils.Percentage(metrics.Read, metrics.Total)

	return metrics
}

func reduceAnnouncements(announcements []*domain.Announcement) domain.AnnouncementMetrics {
	metrics := domain.AnnouncementMetrics{Total: len(announcements)}

	for _, announcement := range announcements {
		if announcement.Active {
			metrics.Active++
		}
		metrics.TotalViews += announcement.Views
	}

	return metrics
}
