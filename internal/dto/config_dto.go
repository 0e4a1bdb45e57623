package dto

type SetConfigRequest struct {
	Valor     string  `json:"valor" validate:"required"`
	Descricao *string `json:"descricao"`
}

type ConfigResponse struct {
	Chave string `json:"chave"`
	Valor string `json:"valor"`
}

type PinRequest struct {
	Pin string `json:"pin" validate:"required"`
}

type PinVerifyResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}
