package httpserver

import (
	"net/http"

	"janggi/internal/server/game"
)

// Server 把 /api/* 和静态前端挂到同一个 mux 上。
type Server struct {
	h   *Handler
	mux *http.ServeMux
}

// NewServer 的 webDir 为空时只提供 API。
func NewServer(m *game.Manager, webDir string) *Server {
	h := NewHandler(m)
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	if webDir != "" {
		RegisterStaticRoutes(mux, webDir)
	}
	return &Server{h: h, mux: mux}
}

func (s *Server) Games() *game.Manager {
	return s.h.Games()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
