package entity

// Store es una cadena de tiendas (modern trade) con sus sucursales.
type Store struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	SubBranches []string `json:"subBranches,omitempty"`
}

// Influencer es un destinatario de pedidos del canal influencer.
type Influencer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
