package domain

import "time"

// Staff traz a identidade do funcionário e os contadores mantidos pelo cadastro
type Staff struct {
	ID            string
	Name          string
	Role          string
	Available     bool
	TotalRepairs  int
	TotalSales    int
	AverageRating float64
	CreatedAt     time.Time
}

// ExperienceYears conta anos completos de casa (blocos de 365 dias)
func (s Staff) ExperienceYears(now time.Time) int {
	days := int(now.Sub(s.CreatedAt) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days / 365
}
