package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mww/cfb_rankings/controller"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

// NewServer creates the web server. The /admin routes are only enabled when
// adminPassword is set.
func NewServer(port int, ctrl controller.C, adminPassword string) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, adminPassword)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":       dateFormatter,
				"score":      scoreFormatter,
				"rankChange": rankChangeFormatter,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02 15:04 MST")
}

// Always show two decimals and the sign of positive scores, 1.3 -> "+1.30".
func scoreFormatter(s float64) string {
	if s == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%+.2f", s)
}

func rankChangeFormatter(change int, hasPrior bool) string {
	switch {
	case !hasPrior:
		return ""
	case change > 0:
		return fmt.Sprintf("▲%d", change)
	case change < 0:
		return fmt.Sprintf("▼%d", -change)
	default:
		return "-"
	}
}
