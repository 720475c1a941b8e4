package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tabletop-server/internal/game"

	"github.com/go-chi/chi/v5"
)

// DebugHandler предоставляет доступ к внутреннему состоянию сервиса.
// Эндпоинты read-only; гонки с циклом сервиса возможны, но для
// debug-снимков это приемлемо.
type DebugHandler struct {
	Service *game.GameService
}

func NewDebugHandler(s *game.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Get("/debug/rooms", h.handleListRooms)
	r.Get("/debug/rooms/{code}", h.handleDumpRoom)
}

// /debug/rooms - сводка по активным комнатам
func (h *DebugHandler) handleListRooms(w http.ResponseWriter, r *http.Request) {
	type RoomSummary struct {
		Code        string     `json:"code"`
		MemberCount int        `json:"member_count"`
		TokenCount  int        `json:"token_count"`
		HasHost     bool       `json:"has_host"`
		EmptySince  *time.Time `json:"empty_since,omitempty"`
	}

	// Инициализируем, чтобы пустая сводка сериализовалась как [], а не null
	summary := []RoomSummary{}
	for _, room := range h.Service.Store.Rooms() {
		s := RoomSummary{
			Code:        room.Code,
			MemberCount: len(room.Members),
			TokenCount:  len(room.Tokens),
			HasHost:     room.HostID != "" && room.HasMember(room.HostID),
		}
		if !room.EmptySince.IsZero() {
			t := room.EmptySince
			s.EmptySince = &t
		}
		summary = append(summary, s)
	}

	writeJSON(w, summary)
}

// /debug/rooms/{code} - полный дамп одной комнаты, включая владельцев токенов
func (h *DebugHandler) handleDumpRoom(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	room := h.Service.Store.FindRoom(code)
	if room == nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	type MemberView struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		IsHost   bool   `json:"is_host"`
	}
	type RoomDump struct {
		Code      string       `json:"code"`
		MapWidth  int          `json:"map_width"`
		MapHeight int          `json:"map_height"`
		HasMap    bool         `json:"has_map"`
		Members   []MemberView `json:"members"`
		Tokens    interface{}  `json:"tokens"`
	}

	dump := RoomDump{
		Code:      room.Code,
		MapWidth:  room.MapWidth,
		MapHeight: room.MapHeight,
		HasMap:    room.Background != "",
		Tokens:    room.Tokens,
	}
	for _, m := range room.Members {
		dump.Members = append(dump.Members, MemberView{
			ID:       m.ID,
			Username: m.Username,
			IsHost:   m.IsHost,
		})
	}

	writeJSON(w, dump)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
