package models

type Card struct {
	Number   int  `json:"number"`
	IsMarked bool `json:"isMarked"`
}

type Board struct {
	Cards []Card `json:"cards"`
}
