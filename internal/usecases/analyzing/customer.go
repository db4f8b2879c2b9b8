package analyzing

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/repairdesk/backoffice-analytics/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const topPerformersLimit = 5

type customerRecords struct {
	customers     []*domain.Customer
	tickets       []*domain.Ticket
	orders        []*domain.Order
	bookings      []*domain.Booking
	mailIns       []*domain.MailIn
	storeCredit   []*domain.StoreCreditTransaction
	loyalty       []*domain.LoyaltyActivity
	loyaltyYearly []*domain.LoyaltyActivity
	reviews       []*domain.Review
	staff         []*domain.Staff
}

func (s *Service) GetCustomerAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.CustomerMetrics, error) {
	startedAt := time.Now()
	now := s.now()
	period := domain.ResolvePeriod(req.Token, req.CustomStart, req.CustomEnd, now)
	start, end := period.StartDate, period.EndDate

	// A série mensal de fidelidade é sempre do ano corrente, de janeiro até agora
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	var records customerRecords
	customers := s.repos.Customers

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records.customers, err = customers.ListCustomers(gctx)
		return err
	})
	g.Go(func() (err error) {
		records.tickets, err = s.repos.Repairs.ListTickets(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.orders, err = s.repos.Sales.ListOrders(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.bookings, err = customers.ListBookings(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.mailIns, err = customers.ListMailIns(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.storeCredit, err = customers.ListStoreCredit(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.loyalty, err = customers.ListLoyaltyActivities(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.loyaltyYearly, err = customers.ListLoyaltyActivities(gctx, yearStart, now)
		return err
	})
	g.Go(func() (err error) {
		records.reviews, err = customers.ListReviews(gctx, start, end)
		return err
	})
	g.Go(func() (err error) {
		records.staff, err = s.repos.Staff.ListStaff(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := reduceCustomers(period, now, records)
	logReduce(ctx, "customers", period, startedAt)

	return metrics, nil
}

// GetStaffAnalytics devolve apenas o bloco de produtividade da equipe
func (s *Service) GetStaffAnalytics(ctx context.Context, req domain.PeriodRequest) (*domain.StaffMetrics, error) {
	startedAt := time.Now()
	now := s.now()
	period := domain.ResolvePeriod(req.Token, req.CustomStart, req.CustomEnd, now)

	var (
		tickets []*domain.Ticket
		staff   []*domain.Staff
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tickets, err = s.repos.Repairs.ListTickets(gctx, period.StartDate, period.EndDate)
		return err
	})
	g.Go(func() (err error) {
		staff, err = s.repos.Staff.ListStaff(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := reduceStaff(period, now, staff, tickets)
	logReduce(ctx, "staff", period, startedAt)

	return &metrics, nil
}

func reduceCustomers(period domain.Period, now time.Time, records customerRecords) *domain.CustomerMetrics {
	return &domain.CustomerMetrics{
		Period:      period.Token,
		DateRange:   period.DateRange(),
		Customers:   reduceCustomerCounts(period, records.customers, records.tickets, records.orders),
		Bookings:    reduceBookings(records.bookings),
		MailIns:     reduceMailIns(records.mailIns),
		StoreCredit: reduceStoreCredit(records.storeCredit),
		Loyalty:     reduceLoyalty(now, records.loyalty, records.loyaltyYearly),
		Reviews:     reduceReviews(records.reviews),
		Staff:       reduceStaff(period, now, records.staff, records.tickets),
	}
}

// reduceCustomerCounts: cliente ativo é quem aparece em ao menos um ticket ou pedido do período
func reduceCustomerCounts(
	period domain.Period,
	customers []*domain.Customer,
	tickets []*domain.Ticket,
	orders []*domain.Order,
) domain.CustomerCounts {
	counts := domain.CustomerCounts{Total: len(customers)}

	for _, customer := range customers {
		if period.Contains(customer.CreatedAt) {
			counts.New++
		}
	}

	active := map[string]struct{}{}
	for _, ticket := range tickets {
		if ticket.CustomerID != nil {
			active[*ticket.CustomerID] = struct{}{}
		}
	}
	for _, order := range orders {
		if order.CustomerID != nil {
			active[*order.CustomerID] = struct{}{}
		}
	}

	counts.Active = len(active)
	counts.TicketsPerActiveCustomer = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(float64(len(tickets)), float64(counts.Active)),
	)

	return counts
}

func reduceBookings(bookings []*domain.Booking) domain.BookingMetrics {
	metrics := domain.BookingMetrics{Total: len(bookings)}

	for _, booking := range bookings {
		switch booking.Status {
		case domain.BookingStatusConfirmed:
			metrics.Confirmed++
		case domain.BookingStatusCompleted:
			metrics.Completed++
		case domain.BookingStatusCancelled:
			metrics.Cancelled++
		case domain.BookingStatusNoShow:
			metrics.NoShow++
		}
		if booking.ConvertedToTicket {
			metrics.Converted++
		}
	}

	metrics.ConversionRate = utils.Percentage(metrics.Converted, metrics.Total)

	return metrics
}

func reduceMailIns(mailIns []*domain.MailIn) domain.MailInMetrics {
	metrics := domain.MailInMetrics{Total: len(mailIns)}

	for _, mailIn := range mailIns {
		if mailIn.ConvertedToTicket {
			metrics.Converted++
		}
	}

	metrics.ConversionRate = utils.Percentage(metrics.Converted, metrics.Total)

	return metrics
}

func reduceStoreCredit(transactions []*domain.StoreCreditTransaction) domain.StoreCreditMetrics {
	metrics := domain.StoreCreditMetrics{Transactions: len(transactions)}

	for _, transaction := range transactions {
		switch transaction.Type {
		case domain.StoreCreditIssued:
			metrics.Issued = metrics.Issued.Add(transaction.Amount)
		case domain.StoreCreditRedeemed:
			metrics.Redeemed = metrics.Redeemed.Add(transaction.Amount)
		}
	}

	metrics.Outstanding = metrics.Issued.Sub(metrics.Redeemed)

	return metrics
}

// reduceLoyalty soma o período selecionado e monta a série mensal do ano corrente
// (janeiro até o mês de now) a partir de yearly.
func reduceLoyalty(now time.Time, activities, yearly []*domain.LoyaltyActivity) domain.LoyaltyMetrics {
	metrics := domain.LoyaltyMetrics{Activities: len(activities)}

	members := map[string]struct{}{}
	for _, activity := range activities {
		members[activity.CustomerID] = struct{}{}
		switch activity.Type {
		case domain.LoyaltyEarn:
			metrics.PointsEarned += activity.Points
		case domain.LoyaltyRedeem:
			metrics.PointsRedeemed += activity.Points
		}
	}
	metrics.ActiveMembers = len(members)

	months := make([]domain.LoyaltyMonth, int(now.Month()))
	for i := range months {
		months[i].Month = time.Date(now.Year(), time.Month(i+1), 1, 0, 0, 0, 0, now.Location()).Format("2006-01")
	}

	for _, activity := range yearly {
		if activity.CreatedAt.Year() != now.Year() || activity.CreatedAt.Month() > now.Month() {
			continue
		}
		month := &months[activity.CreatedAt.Month()-1]
		month.Activities++
		switch activity.Type {
		case domain.LoyaltyEarn:
			month.Earned += activity.Points
		case domain.LoyaltyRedeem:
			month.Redeemed += activity.Points
		}
	}
	metrics.MonthlyBreakdown = months

	return metrics
}

func reduceReviews(reviews []*domain.Review) domain.ReviewMetrics {
	metrics := domain.ReviewMetrics{
		Total:        len(reviews),
		Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
	}

	var ratingSum int
	for _, review := range reviews {
		ratingSum += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			metrics.Distribution[strconv.Itoa(review.Rating)]++
		}
	}

	metrics.AverageRating = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(float64(ratingSum), float64(metrics.Total)),
	)

	return metrics
}

// reduceStaff agrupa os tickets do período por funcionário e junta com o cadastro.
// A ordem segue a lista de funcionários; quem não tem ticket no período fica de fora.
func reduceStaff(period domain.Period, now time.Time, staff []*domain.Staff, tickets []*domain.Ticket) domain.StaffMetrics {
	metrics := domain.StaffMetrics{
		Period:        period.Token,
		DateRange:     period.DateRange(),
		Total:         len(staff),
		Productivity:  []domain.StaffProductivity{},
		TopPerformers: []domain.StaffProductivity{},
	}

	type ticketCount struct {
		total     int
		completed int
	}
	byStaff := map[string]*ticketCount{}
	for _, ticket := range tickets {
		if ticket.StaffID == nil {
			continue
		}
		count, ok := byStaff[*ticket.StaffID]
		if !ok {
			count = &ticketCount{}
			byStaff[*ticket.StaffID] = count
		}
		count.total++
		if ticket.Status == domain.TicketStatusDone {
			count.completed++
		}
	}

	for _, member := range staff {
		if member.Available {
			metrics.Available++
		}

		count, ok := byStaff[member.ID]
		if !ok {
			continue
		}

		metrics.Productivity = append(metrics.Productivity, domain.StaffProductivity{
			StaffID:          member.ID,
			Name:             member.Name,
			Role:             member.Role,
			Available:        member.Available,
			TicketCount:      count.total,
			CompletedTickets: count.completed,
			CompletionRate:   utils.RoundWithTwoDecimalPlace(utils.Percentage(count.completed, count.total)),
			TotalRepairs:     member.TotalRepairs,
			TotalSales:       member.TotalSales,
			AverageRating:    member.AverageRating,
			ExperienceYears:  member.ExperienceYears(now),
		})
	}

	top := make([]domain.StaffProductivity, len(metrics.Productivity))
	copy(top, metrics.Productivity)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TicketCount > top[j].TicketCount
	})
	if len(top) > topPerformersLimit {
		top = top[:topPerformersLimit]
	}
	metrics.TopPerformers = top

	return metrics
}
