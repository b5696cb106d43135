package service

import (
	"sync"

	"github.com/angelsr16/loteria/internal/loteriasvc/models"
)

type RoomStatus string

const (
	StatusWaiting    RoomStatus = "waiting"
	StatusInProgress RoomStatus = "in-progress"
	StatusFinished   RoomStatus = "finished"
)

// Room is one live game session. Status only moves forward:
// waiting -> in-progress -> finished.
type Room struct {
	Code          string
	Players       []*models.Player // join order
	NumbersCalled []int
	Status        RoomStatus

	stop     chan struct{}
	stopOnce sync.Once
}

func newRoom(code string) *Room {
	return &Room{
		Code:   code,
		Status: StatusWaiting,
		stop:   make(chan struct{}),
	}
}

// stopCalling cancels the room's caller. Safe to invoke from every
// path that ends a game; repeated calls are no-ops.
func (r *Room) stopCalling() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

func (r *Room) findPlayer(socketId string) *models.Player {
	for _, p := range r.Players {
		if p.SocketId == socketId {
			return p
		}
	}
	return nil
}

func (r *Room) removePlayer(socketId string) {
	for i, p := range r.Players {
		if p.SocketId == socketId {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return
		}
	}
}

func (r *Room) allReady() bool {
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// roster snapshots the player list so broadcasts never race with
// later roster mutation.
func (r *Room) roster() []*models.Player {
	out := make([]*models.Player, 0, len(r.Players))
	for _, p := range r.Players {
		cp := *p
		out = append(out, &cp)
	}
	return out
}
