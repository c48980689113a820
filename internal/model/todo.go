package model

type Task struct {
	ID   string `json:"id"`
	Text string `json:"texto"`
	Done bool   `json:"concluida"`
}

type TaskRequest struct {
	Text string `json:"texto"`
}

type TaskListResponse struct {
	Pending int    `json:"pendentes"`
	Done    int    `json:"concluidas"`
	Data    []Task `json:"data"`
}
