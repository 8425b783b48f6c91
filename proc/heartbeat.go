package proc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/go-chi/chi/v5"

	"github.com/Irfan-005/Bongosorous/sys"
)

func init() {
	sys.OnClientReady(func(ctx context.Context, client *bot.Client) {
		sys.RegisterDaemon(sys.LogHeartbeat, func(ctx context.Context) (bool, func(), func()) {
			return StartHeartbeat(ctx, sys.GlobalConfig.HTTPPort)
		})
	})
}

// StartHeartbeat serves the liveness endpoints. Hosting platforms poll
// these to decide whether the process is alive.
func StartHeartbeat(ctx context.Context, port int) (bool, func(), func()) {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{
			"status": "online",
			"bot":    sys.GetProjectName(),
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	return true, func() {
			sys.LogHeartbeat(sys.MsgHeartbeatListening, port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				sys.LogHeartbeat(sys.MsgHeartbeatStopped, err)
			}
		}, func() {
			sys.LogHeartbeat(sys.MsgHeartbeatShutdown)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
