package utils

import "time"

// ParseDate interpreta um filtro de data no formato YYYY-MM-DD. Valores
// vazios ou malformados retornam nil: o filtro é simplesmente ignorado,
// mantendo o comportamento tolerante da API.
func ParseDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil
	}

	return &date
}
