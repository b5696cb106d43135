package service

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/angelsr16/loteria/internal/comm"
	"github.com/angelsr16/loteria/internal/loteriasvc/game"
	"github.com/angelsr16/loteria/internal/loteriasvc/models"
)

const (
	// MaxRoomPlayers caps the roster of one room.
	MaxRoomPlayers = 16
	// MaxUsernameLength caps a display name, in runes.
	MaxUsernameLength = 25
)

// Sender delivers server events to sockets. Implemented by the ws layer.
type Sender interface {
	Send(socketId string, msg *comm.WSMessage)
	Broadcast(code string, msg *comm.WSMessage)
	JoinRoom(socketId string, code string)
	LeaveRoom(socketId string)
}

// RoomService owns the live rooms and the seated players. Both maps are
// guarded by one mutex; a player registered by socket id is always
// seated in exactly one room's roster and vice versa. A socket holds at
// most one seat, so create/join from a seated socket is rejected.
type RoomService struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	players map[string]*models.Player // by socket id

	sender       Sender
	callInterval time.Duration
}

func NewRoomService(sender Sender, callInterval time.Duration) *RoomService {
	return &RoomService{
		rooms:        make(map[string]*Room),
		players:      make(map[string]*models.Player),
		sender:       sender,
		callInterval: callInterval,
	}
}

// CreateRoom seats the creating connection as owner of a fresh room and
// hands the join code back through the joinedRoom event.
func (s *RoomService) CreateRoom(socketId, username string) {
	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		s.sendError(socketId, "Invalid username")
		return
	}

	s.mu.Lock()
	if _, seated := s.players[socketId]; seated {
		s.mu.Unlock()
		s.sendError(socketId, "Already in a room")
		return
	}
	code := game.GenerateJoinCode(game.CodeLength, func(c string) bool {
		_, taken := s.rooms[c]
		return taken
	})
	player := &models.Player{
		SocketId: socketId,
		Username: username,
		Room:     code,
		Owner:    true,
	}
	room := newRoom(code)
	room.Players = append(room.Players, player)
	s.rooms[code] = room
	s.players[socketId] = player
	seated := *player
	roster := room.roster()
	s.mu.Unlock()

	s.sender.JoinRoom(socketId, code)
	s.send(socketId, "joinedRoom", comm.JoinedRoomData{Player: &seated})
	s.broadcast(code, "updatePlayers", roster)
	log.Infof("room %s created by %s", code, username)
}

// JoinRoom seats a new player in an existing waiting room.
func (s *RoomService) JoinRoom(socketId, code, username string) {
	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		s.sendError(socketId, "Invalid username")
		return
	}

	s.mu.Lock()
	if _, seated := s.players[socketId]; seated {
		s.mu.Unlock()
		s.sendError(socketId, "Already in a room")
		return
	}
	room, ok := s.rooms[code]
	if !ok {
		s.mu.Unlock()
		s.sendError(socketId, "Room not found")
		return
	}
	if room.Status != StatusWaiting {
		s.mu.Unlock()
		s.sendError(socketId, "Game already in progress")
		return
	}
	if len(room.Players) >= MaxRoomPlayers {
		s.mu.Unlock()
		s.sendError(socketId, "Room is full")
		return
	}
	player := &models.Player{
		SocketId: socketId,
		Username: username,
		Room:     code,
	}
	room.Players = append(room.Players, player)
	s.players[socketId] = player
	seated := *player
	roster := room.roster()
	s.mu.Unlock()

	s.sender.JoinRoom(socketId, code)
	s.send(socketId, "joinedRoom", comm.JoinedRoomData{Player: &seated})
	s.broadcast(code, "updatePlayers", roster)
	log.Infof("%s joined room %s", username, code)
}

// PlayerReady marks the calling player ready and deals their board.
// When the whole roster is ready the game starts and the caller begins.
func (s *RoomService) PlayerReady(socketId, code string) {
	s.mu.Lock()
	room, ok := s.rooms[code]
	if !ok || room.Status != StatusWaiting {
		s.mu.Unlock()
		return
	}
	player := room.findPlayer(socketId)
	if player == nil {
		s.mu.Unlock()
		return
	}
	player.Ready = true
	start := room.allReady()
	if start {
		room.Status = StatusInProgress
	}
	stop := room.stop
	roster := room.roster()
	s.mu.Unlock()

	s.broadcast(code, "updatePlayers", roster)
	s.send(socketId, "setBoard", game.GenerateBoard())

	if start {
		go s.runCaller(code, game.ShuffleDeck(), stop)
	}
}

// ClaimLoteria validates a win claim against the called history. The
// server is the sole authority on what has been called; an invalid
// claim is dropped without a response so a probing client learns
// nothing about partial matches.
func (s *RoomService) ClaimLoteria(socketId, code string, playerBoard []int) {
	s.mu.Lock()
	room, ok := s.rooms[code]
	if !ok || room.Status != StatusInProgress {
		s.mu.Unlock()
		return
	}
	player := room.findPlayer(socketId)
	if player == nil {
		s.mu.Unlock()
		return
	}
	if !validClaim(playerBoard, room.NumbersCalled) {
		s.mu.Unlock()
		log.Warnf("invalid loteria claim in room %s from %s", code, socketId)
		return
	}
	player.Winner = true
	room.Status = StatusFinished
	room.stopCalling()
	winner := *player
	roster := room.roster()
	s.mu.Unlock()

	s.broadcast(code, "updatePlayers", roster)
	s.broadcast(code, "gameOver", comm.GameOverData{Winner: &winner})
	log.Infof("loteria! %s wins room %s", winner.Username, code)
}

// Disconnect unseats the player; the last player out tears the room
// down and stops its caller.
func (s *RoomService) Disconnect(socketId string) {
	s.mu.Lock()
	player, ok := s.players[socketId]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.players, socketId)
	room := s.rooms[player.Room]
	if room == nil {
		s.mu.Unlock()
		s.sender.LeaveRoom(socketId)
		return
	}
	room.removePlayer(socketId)
	code := room.Code
	empty := len(room.Players) == 0
	var roster []*models.Player
	if empty {
		room.stopCalling()
		delete(s.rooms, code)
	} else {
		roster = room.roster()
	}
	s.mu.Unlock()

	s.sender.LeaveRoom(socketId)
	if empty {
		log.Infof("room %s empty, removed", code)
		return
	}
	s.broadcast(code, "updatePlayers", roster)
}

// runCaller drives one game's call sequence: gameStarted once, the
// first number immediately, then one number per interval until the
// deck runs out or the stop channel closes.
func (s *RoomService) runCaller(code string, deck []int, stop <-chan struct{}) {
	s.broadcast(code, "gameStarted", nil)

	ticker := time.NewTicker(s.callInterval)
	defer ticker.Stop()

	cursor := 0
	for {
		if !s.callNumber(code, deck, &cursor) {
			return
		}
		select {
		case <-ticker.C:
		case <-stop:
			return
		}
	}
}

// callNumber appends and broadcasts the next number, finishing the game
// on deck exhaustion. It reports whether the caller should keep going.
// The re-check under the lock guarantees no call lands after a claim
// finished the game or a disconnect tore the room down.
func (s *RoomService) callNumber(code string, deck []int, cursor *int) bool {
	s.mu.Lock()
	room, ok := s.rooms[code]
	if !ok || room.Status != StatusInProgress {
		s.mu.Unlock()
		return false
	}
	if *cursor >= len(deck) {
		room.Status = StatusFinished
		room.stopCalling()
		s.mu.Unlock()
		s.broadcast(code, "gameOver", comm.GameOverData{})
		log.Infof("deck exhausted in room %s, no winner", code)
		return false
	}
	n := deck[*cursor]
	*cursor++
	room.NumbersCalled = append(room.NumbersCalled, n)
	s.mu.Unlock()

	s.broadcast(code, "numberCalled", n)
	return true
}

// validClaim requires a full board of distinct symbols, every one of
// them already called.
func validClaim(board, called []int) bool {
	if len(board) != game.BoardSize {
		return false
	}
	calledSet := make(map[int]struct{}, len(called))
	for _, n := range called {
		calledSet[n] = struct{}{}
	}
	seen := make(map[int]struct{}, len(board))
	for _, n := range board {
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
		if _, ok := calledSet[n]; !ok {
			return false
		}
	}
	return true
}

func (s *RoomService) send(socketId, msgType string, payload interface{}) {
	msg, err := comm.NewMessage(msgType, payload)
	if err != nil {
		log.Errorf("error marshaling %s payload: %v", msgType, err)
		return
	}
	msg.SocketId = socketId
	s.sender.Send(socketId, msg)
}

func (s *RoomService) broadcast(code, msgType string, payload interface{}) {
	msg, err := comm.NewMessage(msgType, payload)
	if err != nil {
		log.Errorf("error marshaling %s payload: %v", msgType, err)
		return
	}
	s.sender.Broadcast(code, msg)
}

func (s *RoomService) sendError(socketId, reason string) {
	s.send(socketId, "error", reason)
}
