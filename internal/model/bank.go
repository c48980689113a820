package model

// Client - 원격 API의 /clientes/ 리소스
type Client struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"nome"`
	TaxID    string `json:"cpf"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Active   bool   `json:"ativo"`
	Notes    string `json:"observacoes"`
}

// Account - 원격 API의 /contas/ 리소스
//
// Balance는 소수점 둘째 자리까지 고정된 decimal 문자열 (예: "150.50")
type Account struct {
	ID       int64  `json:"id,omitempty"`
	Number   string `json:"numero"`
	Branch   string `json:"agencia"`
	Balance  string `json:"saldo"`
	ClientID int64  `json:"cliente"`
}

// MovementRequest - 입금/출금 요청 (저장되지 않음)
type MovementRequest struct {
	AccountID int64  `json:"conta"`
	Amount    string `json:"valor"`
}
