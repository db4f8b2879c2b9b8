package domain

import "github.com/shopspring/decimal"

type CustomerMetrics struct {
	Period      PeriodToken        `json:"period"`
	DateRange   DateRange          `json:"dateRange"`
	Customers   CustomerCounts     `json:"customers"`
	Bookings    BookingMetrics     `json:"bookings"`
	MailIns     MailInMetrics      `json:"mailIns"`
	StoreCredit StoreCreditMetrics `json:"storeCredit"`
	Loyalty     LoyaltyMetrics     `json:"loyalty"`
	Reviews     ReviewMetrics      `json:"reviews"`
	Staff       StaffMetrics       `json:"staff"`
}

// CustomerCounts: ativo é quem tem ao menos um ticket OU um pedido no período
type CustomerCounts struct {
	Total                    int     `json:"total"`
	New                      int     `json:"new"`
	Active                   int     `json:"active"`
	TicketsPerActiveCustomer float64 `json:"ticketsPerActiveCustomer"`
}

type BookingMetrics struct {
	Total          int     `json:"total"`
	Confirmed      int     `json:"confirmed"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	NoShow         int     `json:"noShow"`
	Converted      int     `json:"converted"`
	ConversionRate float64 `json:"conversionRate"`
}

type MailInMetrics struct {
	Total          int     `json:"total"`
	Converted      int     `json:"converted"`
	ConversionRate float64 `json:"conversionRate"`
}

type StoreCreditMetrics struct {
	Transactions int             `json:"transactions"`
	Issued       decimal.Decimal `json:"issued"`
	Redeemed     decimal.Decimal `json:"redeemed"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// LoyaltyMetrics: MonthlyBreakdown sempre cobre janeiro até o mês corrente do ano atual,
// independente do período selecionado.
type LoyaltyMetrics struct {
	Activities       int            `json:"activities"`
	PointsEarned     int            `json:"pointsEarned"`
	PointsRedeemed   int            `json:"pointsRedeemed"`
	ActiveMembers    int            `json:"activeMembers"`
	MonthlyBreakdown []LoyaltyMonth `json:"monthlyBreakdown"`
}

type LoyaltyMonth struct {
	Month      string `json:"month"`
	Activities int    `json:"activities"`
	Earned     int    `json:"earned"`
	Redeemed   int    `json:"redeemed"`
}

type ReviewMetrics struct {
	Total         int            `json:"total"`
	AverageRating float64        `json:"averageRating"`
	Distribution  map[string]int `json:"distribution"`
}

type StaffMetrics struct {
	Period        PeriodToken         `json:"period"`
	DateRange     DateRange           `json:"dateRange"`
	Total         int                 `json:"total"`
	Available     int                 `json:"available"`
	Productivity  []StaffProductivity `json:"productivity"`
	TopPerformers []StaffProductivity `json:"topPerformers"`
}

type StaffProductivity struct {
	StaffID          string  `json:"staffId"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	Available        bool    `json:"available"`
	TicketCount      int     `json:"ticketCount"`
	CompletedTickets int     `json:"completedTickets"`
	CompletionRate   float64 `json:"completionRate"`
	TotalRepairs     int     `json:"totalRepairs"`
	TotalSales       int     `json:"totalSales"`
	AverageRating    float64 `json:"averageRating"`
	ExperienceYears  int     `json:"experienceYears"`
}
