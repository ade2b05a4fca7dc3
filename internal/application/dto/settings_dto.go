package dto

// AnnouncementRequest alta o edición de una noticia.
type AnnouncementRequest struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Icon   string `json:"icon"`
	Image  string `json:"image"`
	Color  string `json:"color"`
}

// LoginBackgroundRequest imagen de fondo del login (data URL o http(s)).
type LoginBackgroundRequest struct {
	Image string `json:"image"`
}

// LoginBackgroundResponse fondo actual; vacío = el predeterminado del cliente.
type LoginBackgroundResponse struct {
	Image string `json:"image"`
}
