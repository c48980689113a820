package model

type Profile struct {
	Name  string `json:"name"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

type ProfileCard struct {
	Name string `json:"name"`
	Card string `json:"card"`
}
