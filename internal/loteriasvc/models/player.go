package models

type Player struct {
	SocketId string `json:"id"`
	Username string `json:"username"`
	Ready    bool   `json:"ready"`
	Room     string `json:"room"`
	Owner    bool   `json:"owner,omitempty"`
	Winner   bool   `json:"winner,omitempty"`
}
