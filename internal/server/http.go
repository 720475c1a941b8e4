package server

import (
	"encoding/json"
	"net/http"

	"tabletop-server/internal/game"
	"tabletop-server/internal/version"
	"tabletop-server/pkg/logger"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	Game *game.GameService
	Port string
}

func New(g *game.GameService, port string) *Server {
	return &Server{
		Game: g,
		Port: port,
	}
}

// Routes собирает роутер. Вынесено из Run ради httptest.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(enableCORS)

	r.Get("/ws", s.handleWS)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	debugHandler := NewDebugHandler(s.Game)
	debugHandler.RegisterRoutes(r)

	return r
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	logger.Log.Infof("🎲 Tabletop server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, s.Routes())
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next.ServeHTTP(w, r)
	})
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Game, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("version write failed")
	}
}
