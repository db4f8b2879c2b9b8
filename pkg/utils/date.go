package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD. Texto vazio devolve nil sem erro,
// indicando que o parâmetro não foi informado.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// EndOfDay leva a data para o último segundo do dia, para que end_date seja inclusivo
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
}
