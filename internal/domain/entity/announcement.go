package entity

import "time"

// Announcement es una noticia interna del tablero.
type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Icon      string    `json:"icon"`
	Image     string    `json:"image,omitempty"`
	Color     string    `json:"color"`
	UpdatedAt time.Time `json:"updatedAt"`
}
