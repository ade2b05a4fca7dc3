package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MutationResponse envuelve el resultado de una escritura. Notice aparece cuando el cambio
// quedó aplicado pero no pudo persistirse.
type MutationResponse struct {
	Data   interface{} `json:"data"`
	Notice string      `json:"notice,omitempty"`
}
