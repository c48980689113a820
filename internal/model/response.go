package model

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ClientListResponse struct {
	Status string   `json:"status"`
	Data   []Client `json:"data"`
}

type AccountListResponse struct {
	Status string    `json:"status"`
	Data   []Account `json:"data"`
}

// DetailResponse - remote API detail error body ({"detail": "..."})
type DetailResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

type ClientResponse struct {
	Status string  `json:"status"`
	Data   *Client `json:"data"`
}

type AccountResponse struct {
	Status string   `json:"status"`
	Data   *Account `json:"data"`
}

type TaskResponse struct {
	Status string `json:"status"`
	Data   *Task  `json:"data"`
}

type ProfileListResponse struct {
	Status string        `json:"status"`
	Data   []ProfileCard `json:"data"`
}
