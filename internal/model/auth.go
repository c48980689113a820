package model

// Credentials는 로그인 호출 동안에만 존재하고 저장하지 않는다.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type AuthCheckResponse struct {
	Authenticated bool `json:"authenticated"`
}
