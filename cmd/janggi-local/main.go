package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	addr := flag.String("addr", "127.0.0.1:2888", "listen address")
	webDir := flag.String("web", "./web", "directory with the renderer assets; empty serves the API only")
	open := flag.Bool("open", false, "open the default browser once listening")
	idle := flag.Duration("idle", 2*time.Hour, "drop matches idle for longer than this; 0 keeps them forever")
	flag.Parse()

	games := game.NewManager()
	srv := httpserver.NewServer(games, *webDir)

	if *idle > 0 {
		go func() {
			tick := time.NewTicker(*idle / 4)
			defer tick.Stop()
			for range tick.C {
				if n := games.PruneIdle(time.Now().Add(-*idle)); n > 0 {
					log.Printf("dropped %d idle games, %d left", n, games.Len())
				}
			}
		}()
	}

	log.Printf("listening on %s, serving static from %q", *addr, *webDir)

	if *open {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://" + *addr + "/")
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
