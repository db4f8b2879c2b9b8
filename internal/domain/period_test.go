package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)
	customStart := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	customEnd := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		token         PeriodToken
		customStart   *time.Time
		customEnd     *time.Time
		expectedStart time.Time
		expectedEnd   time.Time
		expectedToken PeriodToken
	}{
		{
			name:          "Semanal - últimos 7 dias até agora",
			token:         PeriodWeekly,
			expectedStart: time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
			expectedEnd:   now,
			expectedToken: PeriodWeekly,
		},
		{
			name:          "Mensal - do primeiro ao último instante do mês corrente",
			token:         PeriodMonthly,
			expectedStart: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 5, 31, 23, 59, 59, 999999999, time.UTC),
			expectedToken: PeriodMonthly,
		},
		{
			name:          "Trimestral - três meses atrás até agora",
			token:         PeriodQuarterly,
			expectedStart: time.Date(2024, 2, 17, 14, 30, 0, 0, time.UTC),
			expectedEnd:   now,
			expectedToken: PeriodQuarterly,
		},
		{
			name:          "Anual - um ano atrás até agora",
			token:         PeriodYearly,
			expectedStart: time.Date(2023, 5, 17, 14, 30, 0, 0, time.UTC),
			expectedEnd:   now,
			expectedToken: PeriodYearly,
		},
		{
			name:          "Customizado com início e fim",
			token:         PeriodCustom,
			customStart:   &customStart,
			customEnd:     &customEnd,
			expectedStart: customStart,
			expectedEnd:   customEnd,
			expectedToken: PeriodCustom,
		},
		{
			name:          "Customizado sem fim - termina agora",
			token:         PeriodCustom,
			customStart:   &customStart,
			expectedStart: customStart,
			expectedEnd:   now,
			expectedToken: PeriodCustom,
		},
		{
			name:          "Customizado sem início - cai no mensal",
			token:         PeriodCustom,
			customEnd:     &customEnd,
			expectedStart: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 5, 31, 23, 59, 59, 999999999, time.UTC),
			expectedToken: PeriodMonthly,
		},
		{
			name:          "Token desconhecido - cai no mensal",
			token:         PeriodToken("daily"),
			expectedStart: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 5, 31, 23, 59, 59, 999999999, time.UTC),
			expectedToken: PeriodMonthly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := ResolvePeriod(tt.token, tt.customStart, tt.customEnd, now)

			assert.Equal(t, tt.expectedStart, period.StartDate)
			assert.Equal(t, tt.expectedEnd, period.EndDate)
			assert.Equal(t, tt.expectedToken, period.Token)
			assert.False(t, period.StartDate.After(period.EndDate))
		})
	}
}

func TestResolvePeriod_StartNeverAfterEnd(t *testing.T) {
	tokens := []PeriodToken{PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly, PeriodCustom, "unknown"}
	instants := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2023, 12, 31, 23, 59, 59, 999999999, time.UTC),
		time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC),
	}

	for _, token := range tokens {
		for _, now := range instants {
			period := ResolvePeriod(token, nil, nil, now)
			assert.False(t, period.StartDate.After(period.EndDate), "token=%s now=%s", token, now)
		}
	}
}

func TestPeriod_LengthDaysAndContains(t *testing.T) {
	period := Period{
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC),
	}

	assert.Equal(t, 30, period.LengthDays())
	assert.True(t, period.Contains(period.StartDate))
	assert.True(t, period.Contains(period.EndDate))
	assert.False(t, period.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousPeriod(t *testing.T) {
	current := Period{
		StartDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC),
		Token:     PeriodMonthly,
	}

	previous := PreviousPeriod(current)

	assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), previous.EndDate)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), previous.StartDate)
	assert.Equal(t, current.LengthDays(), previous.LengthDays())
}

func TestPeriod_DateRange(t *testing.T) {
	period := ResolvePeriod(PeriodWeekly, nil, nil, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC))

	dateRange := period.DateRange()

	if assert.NotNil(t, dateRange.StartDate) && assert.NotNil(t, dateRange.EndDate) {
		assert.Equal(t, period.StartDate, *dateRange.StartDate)
		assert.Equal(t, period.EndDate, *dateRange.EndDate)
	}
}

func TestStaff_ExperienceYears(t *testing.T) {
	now := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, Staff{CreatedAt: now.AddDate(0, 0, -364)}.ExperienceYears(now))
	assert.Equal(t, 1, Staff{CreatedAt: now.AddDate(0, 0, -365)}.ExperienceYears(now))
	assert.Equal(t, 2, Staff{CreatedAt: now.AddDate(0, 0, -800)}.ExperienceYears(now))
	assert.Equal(t, 0, Staff{CreatedAt: now.AddDate(0, 0, 10)}.ExperienceYears(now))
}
