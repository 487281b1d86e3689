package mobile

import (
	"log"
	"net/http"

	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
)

// NewHandler builds the same mux the desktop binary serves.
// webDir: physical path to the extracted web assets
func NewHandler(webDir string) http.Handler {
	return httpserver.NewServer(game.NewManager(), webDir)
}

// StartServer starts the local HTTP server.
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	h := NewHandler(webDir)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, h); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
