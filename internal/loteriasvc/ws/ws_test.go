package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelsr16/loteria/internal/comm"
	"github.com/angelsr16/loteria/internal/loteriasvc/service"
)

func TestSocketMessageDispatch(t *testing.T) {
	s := NewWs()
	s.Service = service.NewRoomService(s, time.Hour)

	s.SocketMessage("s1", &comm.WSMessage{
		Type: "createRoom",
		Data: json.RawMessage(`{"username":"Ana"}`),
	})

	v, ok := s.roomMap.Load("s1")
	require.True(t, ok, "creator must be joined to the room group")
	code := v.(string)
	require.Len(t, code, 5)

	s.SocketMessage("s2", &comm.WSMessage{
		Type: "joinRoom",
		Data: json.RawMessage(`{"code":"` + code + `","username":"Beto"}`),
	})
	_, ok = s.roomMap.Load("s2")
	assert.True(t, ok)

	assert.ElementsMatch(t, []string{"s1", "s2"}, s.roomSockets(code))
	assert.Empty(t, s.roomSockets("ZZZZZ"))
}

func TestSocketMessageToleratesBadInput(t *testing.T) {
	s := NewWs()
	s.Service = service.NewRoomService(s, time.Hour)

	assert.NotPanics(t, func() {
		s.SocketMessage("s1", &comm.WSMessage{Type: "createRoom", Data: json.RawMessage(`{`)})
		s.SocketMessage("s1", &comm.WSMessage{Type: "joinRoom", Data: json.RawMessage(`42`)})
		s.SocketMessage("s1", &comm.WSMessage{Type: "offer"})
	})

	_, ok := s.roomMap.Load("s1")
	assert.False(t, ok)
}

func TestHandleDisconnectLeavesRoomGroup(t *testing.T) {
	s := NewWs()
	s.Service = service.NewRoomService(s, time.Hour)

	s.SocketMessage("s1", &comm.WSMessage{
		Type: "createRoom",
		Data: json.RawMessage(`{"username":"Ana"}`),
	})
	v, _ := s.roomMap.Load("s1")
	code := v.(string)

	s.HandleDisconnect("s1")

	_, ok := s.roomMap.Load("s1")
	assert.False(t, ok)
	assert.Empty(t, s.roomSockets(code))
}
