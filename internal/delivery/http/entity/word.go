package entity

import "time"

type WordRequest struct {
	English string `json:"english" validate:"required,notblank,max=255"`
	Arabic  string `json:"arabic" validate:"required,notblank,max=255"`
}

type ListWordsQuery struct {
	Q string `query:"q" validate:"max=255"`
}

type WordResponse struct {
	ID        uint      `json:"id"`
	English   string    `json:"english"`
	Arabic    string    `json:"arabic"`
	CreatedAt time.Time `json:"created_at"`
}

type ImportWordsResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}
