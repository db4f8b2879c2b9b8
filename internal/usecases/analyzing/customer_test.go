package analyzing

import (
	"testing"
	"time"

	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceCustomerCounts_AtivoPorTicketOuPedido(t *testing.T) {
	period := domain.ResolvePeriod(domain.PeriodMonthly, nil, nil, testNow)
	customers := []*domain.Customer{
		{ID: "c1", CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "c2", CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c3", CreatedAt: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "c4", CreatedAt: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	tickets := []*domain.Ticket{
		{CustomerID: strPtr("c1")},
		{CustomerID: strPtr("c1")},
		{CustomerID: strPtr("c2")},
		{},
	}
	orders := []*domain.Order{
		{CustomerID: strPtr("c2")},
		{CustomerID: strPtr("c3")},
	}

	counts := reduceCustomerCounts(period, customers, tickets, orders)

	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 2, counts.New)
	assert.Equal(t, 3, counts.Active)
	assert.Equal(t, 1.33, counts.TicketsPerActiveCustomer)
}

func TestReduceBookingsEMailIns(t *testing.T) {
	bookings := reduceBookings([]*domain.Booking{
		{Status: domain.BookingStatusConfirmed, ConvertedToTicket: true},
		{Status: domain.BookingStatusNoShow},
		{Status: domain.BookingStatusCompleted, ConvertedToTicket: true},
		{Status: domain.BookingStatusCancelled},
	})
	assert.Equal(t, 1, bookings.NoShow)
	assert.Equal(t, 50.0, bookings.ConversionRate)

	assert.Equal(t, 0.0, reduceMailIns(nil).ConversionRate)
	assert.Equal(t, 100.0, reduceMailIns([]*domain.MailIn{{ConvertedToTicket: true}}).ConversionRate)
}

func TestReduceStoreCredit(t *testing.T) {
	metrics := reduceStoreCredit([]*domain.StoreCreditTransaction{
		{Type: domain.StoreCreditIssued, Amount: dec("100")},
		{Type: domain.StoreCreditIssued, Amount: dec("20.5")},
		{Type: domain.StoreCreditRedeemed, Amount: dec("40")},
	})

	assert.Equal(t, "120.5", metrics.Issued.String())
	assert.Equal(t, "80.5", metrics.Outstanding.String())
}

func TestReduceLoyalty_SerieMensalDoAnoCorrente(t *testing.T) {
	yearly := []*domain.LoyaltyActivity{
		{CustomerID: "c1", Type: domain.LoyaltyEarn, Points: 10, CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{CustomerID: "c1", Type: domain.LoyaltyRedeem, Points: 4, CreatedAt: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
		{CustomerID: "c2", Type: domain.LoyaltyEarn, Points: 7, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{CustomerID: "c2", Type: domain.LoyaltyEarn, Points: 9, CreatedAt: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	period := []*domain.LoyaltyActivity{yearly[2]}

	metrics := reduceLoyalty(testNow, period, yearly)

	assert.Equal(t, 1, metrics.Activities)
	assert.Equal(t, 7, metrics.PointsEarned)
	assert.Equal(t, 1, metrics.ActiveMembers)

	require.Len(t, metrics.MonthlyBreakdown, 5)
	assert.Equal(t, domain.LoyaltyMonth{Month: "2024-01", Activities: 1, Earned: 10}, metrics.MonthlyBreakdown[0])
	assert.Equal(t, domain.LoyaltyMonth{Month: "2024-02"}, metrics.MonthlyBreakdown[1])
	assert.Equal(t, domain.LoyaltyMonth{Month: "2024-03", Activities: 1, Redeemed: 4}, metrics.MonthlyBreakdown[2])
	assert.Equal(t, domain.LoyaltyMonth{Month: "2024-05", Activities: 1, Earned: 7}, metrics.MonthlyBreakdown[4])
}

func TestReduceReviews(t *testing.T) {
	metrics := reduceReviews([]*domain.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}})

	assert.Equal(t, 4.33, metrics.AverageRating)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 2, "5": 1}, metrics.Distribution)

	empty := reduceReviews(nil)
	assert.Equal(t, 0.0, empty.AverageRating)
	assert.Len(t, empty.Distribution, 5)
}

func TestReduceStaff_TopPerformers(t *testing.T) {
	period := domain.ResolvePeriod(domain.PeriodMonthly, nil, nil, testNow)

	var staff []*domain.Staff
	var tickets []*domain.Ticket
	// s1 tem 1 ticket, s2 tem 2, ..., s7 tem 7; s8 não tem ticket no período
	for i := 1; i <= 8; i++ {
		id := "s" + string(rune('0'+i))
		staff = append(staff, &domain.Staff{
			ID:        id,
			Name:      "Técnico " + id,
			Available: i%2 == 0,
			CreatedAt: testNow.AddDate(0, 0, -365*i-1),
		})
		if i == 8 {
			continue
		}
		for j := 0; j < i; j++ {
			status := domain.TicketStatusNew
			if j == 0 {
				status = domain.TicketStatusDone
			}
			tickets = append(tickets, &domain.Ticket{StaffID: strPtr(id), Status: status})
		}
	}
	tickets = append(tickets, &domain.Ticket{StaffID: strPtr("desconhecido")}, &domain.Ticket{})

	metrics := reduceStaff(period, testNow, staff, tickets)

	assert.Equal(t, 8, metrics.Total)
	assert.Equal(t, 4, metrics.Available)
	require.Len(t, metrics.Productivity, 7)
	assert.Equal(t, "s1", metrics.Productivity[0].StaffID)
	assert.Equal(t, 100.0, metrics.Productivity[0].CompletionRate)
	assert.Equal(t, 1, metrics.Productivity[0].ExperienceYears)
	assert.Equal(t, 25.0, metrics.Productivity[3].CompletionRate)

	require.Len(t, metrics.TopPerformers, 5)
	assert.Equal(t, "s7", metrics.TopPerformers[0].StaffID)
	assert.Equal(t, "s3", metrics.TopPerformers[4].StaffID)
}

func TestReduceStaff_EmpateMantemOrdemDoCadastro(t *testing.T) {
	period := domain.ResolvePeriod(domain.PeriodMonthly, nil, nil, testNow)
	staff := []*domain.Staff{{ID: "b"}, {ID: "a"}, {ID: "c"}}
	tickets := []*domain.Ticket{
		{StaffID: strPtr("a")},
		{StaffID: strPtr("b")},
		{StaffID: strPtr("c")},
		{StaffID: strPtr("c")},
	}

	metrics := reduceStaff(period, testNow, staff, tickets)

	require.Len(t, metrics.TopPerformers, 3)
	assert.Equal(t, "c", metrics.TopPerformers[0].StaffID)
	assert.Equal(t, "b", metrics.TopPerformers[1].StaffID)
	assert.Equal(t, "a", metrics.TopPerformers[2].StaffID)
}
