package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/angelsr16/loteria/internal/comm"
	"github.com/angelsr16/loteria/internal/loteriasvc/service"
)

// socket wraps a connection with a write lock; gorilla connections do
// not allow concurrent writers and the room caller goroutine writes
// alongside the event handlers.
type socket struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

type Ws struct {
	connMap sync.Map // socketId -> *socket
	roomMap sync.Map // socketId -> room code
	Service *service.RoomService
}

func NewWs() *Ws {
	return &Ws{}
}

// SocketMessage dispatches an inbound event from a web client to the
// room service.
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) {
	switch message.Type {
	case "createRoom":
		var payload comm.CreateRoomData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			log.Errorf("malformed createRoom payload from %s: %v", socketId, err)
			return
		}
		s.Service.CreateRoom(socketId, payload.Username)
	case "joinRoom":
		var payload comm.JoinRoomData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			log.Errorf("malformed joinRoom payload from %s: %v", socketId, err)
			return
		}
		s.Service.JoinRoom(socketId, payload.Code, payload.Username)
	case "playerReady":
		var payload comm.PlayerReadyData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			log.Errorf("malformed playerReady payload from %s: %v", socketId, err)
			return
		}
		s.Service.PlayerReady(socketId, payload.Code)
	case "claimLoteria":
		var payload comm.ClaimLoteriaData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			log.Errorf("malformed claimLoteria payload from %s: %v", socketId, err)
			return
		}
		s.Service.ClaimLoteria(socketId, payload.Code, payload.PlayerBoard)
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

// HandleDisconnect unseats the player and drops the connection from
// both registries.
func (s *Ws) HandleDisconnect(socketId string) {
	s.Service.Disconnect(socketId)
	s.connMap.Delete(socketId)
	s.roomMap.Delete(socketId)
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, &socket{conn: conn})
}

// Send delivers one event to one socket.
func (s *Ws) Send(socketId string, msg *comm.WSMessage) {
	v, ok := s.connMap.Load(socketId)
	if !ok {
		return
	}
	sk := v.(*socket)
	sk.mu.Lock()
	defer sk.mu.Unlock()
	if err := sk.conn.WriteJSON(msg); err != nil {
		log.Errorf("write to socket %s failed: %v", socketId, err)
	}
}

// Broadcast fans an event out to every socket joined to the room.
func (s *Ws) Broadcast(code string, msg *comm.WSMessage) {
	for _, socketId := range s.roomSockets(code) {
		s.Send(socketId, msg)
	}
}

func (s *Ws) JoinRoom(socketId string, code string) {
	s.roomMap.Store(socketId, code)
}

func (s *Ws) LeaveRoom(socketId string) {
	s.roomMap.Delete(socketId)
}

func (s *Ws) roomSockets(code string) []string {
	var sockets []string
	s.roomMap.Range(func(key, value interface{}) bool {
		if value.(string) == code {
			sockets = append(sockets, key.(string))
		}
		return true // continue iterating
	})
	return sockets
}
