package server

import (
	"net/http"

	"overworld/internal/session"
	"overworld/pkg/logger"
)

// Server - HTTP-обвязка: апгрейд /ws и проба живости /health.
// Любой другой путь - 404: HTTP здесь только для liveness-проб,
// не часть игрового протокола.
type Server struct {
	Registry *session.Registry
	Port     string
}

func New(registry *session.Registry, port string) *Server {
	return &Server{Registry: registry, Port: port}
}

// Run блокируется до падения listener-а.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	logger.Log.Infof("🗺️  Overworld server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithComponent("server").WithError(err).Error("upgrade failed")
		return
	}

	client := NewClient(s.Registry, conn)
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/health" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("healthy"))
}
