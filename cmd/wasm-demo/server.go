//go:build !js

// Serves the wasm build of the grid demo. Build the bundle first:
//
//	GOOS=js GOARCH=wasm go build -o cmd/wasm-demo/main.wasm ./cmd/wasm-demo
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" cmd/wasm-demo/
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

func main() {
	baseDir := filepath.Join("cmd", "wasm-demo")

	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(baseDir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFile(w, r, filepath.Join(baseDir, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	})

	srv := &http.Server{Addr: ":8080", Handler: logRequests(mux)}

	go func() {
		log.Println("Serving on http://localhost:8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown Failed:%+v", err)
	}

	log.Println("Server stopped")
}

func logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		h.ServeHTTP(w, r)
	})
}
