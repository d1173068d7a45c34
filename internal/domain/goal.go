package domain

import "time"

// IndividualGoal é a meta mensal de um vendedor.
type IndividualGoal struct {
	ID     int64      `json:"id"`
	UserID int        `json:"user_id"`
	Goal   float64    `json:"goal"`
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
}

// GeneralGoal é a meta mensal da empresa inteira.
type GeneralGoal struct {
	ID    int64      `json:"id"`
	Goal  float64    `json:"goal"`
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}
