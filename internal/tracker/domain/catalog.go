package domain

import "time"

type ProductType struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Color struct {
	ID        string
	Name      string
	HexCode   string // #RRGGBB
	CreatedAt time.Time
	UpdatedAt time.Time
}
