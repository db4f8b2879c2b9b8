package domain

import "time"

type PeriodToken string

const (
	PeriodWeekly    PeriodToken = "weekly"
	PeriodMonthly   PeriodToken = "monthly"
	PeriodQuarterly PeriodToken = "quarterly"
	PeriodYearly    PeriodToken = "yearly"
	PeriodCustom    PeriodToken = "custom"
)

// Period é a janela de datas já resolvida sobre a qual os registros são filtrados
type Period struct {
	StartDate time.Time   `json:"startDate"`
	EndDate   time.Time   `json:"endDate"`
	Token     PeriodToken `json:"token"`
}

// PeriodRequest é o que o chamador envia: o token e, opcionalmente, limites explícitos
type PeriodRequest struct {
	Token       PeriodToken
	CustomStart *time.Time
	CustomEnd   *time.Time
}

// DateRange é o eco do intervalo nos relatórios. EndDate pode ser nulo quando o
// chamador informou apenas o início de um intervalo customizado.
type DateRange struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (p Period) DateRange() DateRange {
	start, end := p.StartDate, p.EndDate
	return DateRange{StartDate: &start, EndDate: &end}
}

// LengthDays retorna a quantidade de dias inteiros cobertos pela janela
func (p Period) LengthDays() int {
	return int(p.EndDate.Sub(p.StartDate) / (24 * time.Hour))
}

// Contains informa se t está dentro de [StartDate, EndDate]
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// ResolvePeriod converte o token simbólico em uma janela concreta.
// Tokens desconhecidos (e "custom" sem início) caem em "monthly"; não existe caminho de erro.
func ResolvePeriod(token PeriodToken, customStart, customEnd *time.Time, now time.Time) Period {
	switch {
	case token == PeriodCustom && customStart != nil:
		end := now
		if customEnd != nil {
			end = *customEnd
		}
		return Period{StartDate: *customStart, EndDate: end, Token: PeriodCustom}
	case token == PeriodWeekly:
		return Period{StartDate: now.AddDate(0, 0, -7), EndDate: now, Token: PeriodWeekly}
	case token == PeriodQuarterly:
		return Period{StartDate: now.AddDate(0, -3, 0), EndDate: now, Token: PeriodQuarterly}
	case token == PeriodYearly:
		return Period{StartDate: now.AddDate(-1, 0, 0), EndDate: now, Token: PeriodYearly}
	default:
		return Period{StartDate: StartOfMonth(now), EndDate: EndOfMonth(now), Token: PeriodMonthly}
	}
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth retorna o último instante do último dia do mês de t
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// PreviousPeriod calcula a janela anterior de mesmo comprimento usada na comparação financeira:
// previousEnd = start - 1 dia, previousStart = previousEnd - comprimento em dias.
func PreviousPeriod(p Period) Period {
	previousEnd := p.StartDate.AddDate(0, 0, -1)
	previousStart := previousEnd.AddDate(0, 0, -p.LengthDays())
	return Period{StartDate: previousStart, EndDate: previousEnd, Token: p.Token}
}
