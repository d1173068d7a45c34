package utils

import "time"

// BRDateLayout é o formato dia/mês/ano usado nas planilhas de vendas.
const BRDateLayout = "02/01/2006"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseBRDate interpreta uma data no formato dia/mês/ano.
func ParseBRDate(dateStr string) (time.Time, error) {
	return time.Parse(BRDateLayout, dateStr)
}

// CurrentPeriod devolve o ano e o mês correntes.
func CurrentPeriod() (int, time.Month) {
	now := time.Now()
	return now.Year(), now.Month()
}
