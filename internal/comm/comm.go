package comm

import (
	"encoding/json"

	"github.com/angelsr16/loteria/internal/loteriasvc/models"
)

type WSMessage struct {
	Type     string          `json:"type"` // e.g. "createRoom", "playerReady"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"`
}

// client -> server payloads

type CreateRoomData struct {
	Username string `json:"username"`
}

type JoinRoomData struct {
	Code     string `json:"code"`
	Username string `json:"username"`
}

type PlayerReadyData struct {
	Code string `json:"code"`
}

type ClaimLoteriaData struct {
	Code        string `json:"code"`
	PlayerBoard []int  `json:"playerBoard"`
}

// server -> client payloads

type JoinedRoomData struct {
	Player *models.Player `json:"player"`
}

type GameOverData struct {
	Winner *models.Player `json:"winner"`
}

func NewMessage(msgType string, payload interface{}) (*WSMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &WSMessage{Type: msgType, Data: data}, nil
}
