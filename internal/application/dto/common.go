package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ViewResponse modelo de vista para las rutas que antes
// renderizaban una plantilla. ErrorMessage se rellena al re-mostrar un formulario.
type ViewResponse struct {
	View         string `json:"view"`
	ErrorMessage string `json:"error_message,omitempty"`
}
