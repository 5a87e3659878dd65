// Package web serves the pattern form and canvas to browsers.
//
// Every browser connected to /stream shares one canvas: a valid draw request
// from any of them is generated once and broadcast to all.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/san-kum/nestframe/internal/form"
	"github.com/san-kum/nestframe/internal/pattern"
	"github.com/san-kum/nestframe/internal/render"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type Server struct {
	limits form.Limits
	theme  render.Theme
	hub    *Hub
	logger *log.Logger

	mu      sync.Mutex
	current Frame
}

// NewServer prepares a server whose canvas starts with the pattern for
// initial. A nil logger uses log.Default().
func NewServer(initial pattern.Dimensions, limits form.Limits, theme render.Theme, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		limits:  limits,
		theme:   theme,
		hub:     NewHub(),
		logger:  logger,
		current: newFrame(initial),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /draw", s.handleDraw)
	mux.HandleFunc("GET /stream", s.handleStream)
	return mux
}

// Current returns the frame on the shared canvas.
func (s *Server) Current() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

type pageData struct {
	Frame Frame
	Theme struct {
		Background, Text, Error, Horizontal template.CSS
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{Frame: s.Current()}
	data.Theme.Background = template.CSS(s.theme.Background)
	data.Theme.Text = template.CSS(s.theme.Text)
	data.Theme.Error = template.CSS(s.theme.Error)
	data.Theme.Horizontal = template.CSS(s.theme.Horizontal)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in := form.Input{
		Width:   r.PostForm.Get("width"),
		Height:  r.PostForm.Get("height"),
		Padding: r.PostForm.Get("padding"),
	}

	frame, rejection := s.draw(in)
	w.Header().Set("Content-Type", "application/json")
	if rejection != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(rejection)
		return
	}
	_ = json.NewEncoder(w).Encode(frame)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logger.Printf("stream: accept: %v", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := r.Context()
	if err := s.join(ctx, conn); err != nil {
		s.logger.Printf("stream: hello: %v", err)
		return
	}
	defer s.hub.Remove(conn)
	s.logger.Printf("stream: client connected (%d total)", s.hub.Len())

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			s.logger.Printf("stream: client gone: %v", websocket.CloseStatus(err))
			return
		}
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue
		}
		if env.Type != TypeDraw {
			continue
		}
		var in form.Input
		if err := json.Unmarshal(env.Payload, &in); err != nil {
			continue
		}

		if _, rejection := s.draw(in); rejection != nil {
			msg, err := encode(TypeRejected, rejection)
			if err != nil {
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// join sends conn the current canvas and subscribes it to later frames. Both
// happen under s.mu, the lock draw broadcasts under, so the first frame a
// client sees is never older than one it receives afterwards.
func (s *Server) join(ctx context.Context, conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hello, err := encode(TypeFrame, s.current)
	if err != nil {
		return err
	}
	wctx, cancel := context.WithTimeout(ctx, s.hub.timeout)
	defer cancel()
	if err := conn.Write(wctx, websocket.MessageText, hello); err != nil {
		return err
	}
	s.hub.Add(conn)
	return nil
}

// draw validates in, replaces the shared canvas and broadcasts the new frame.
func (s *Server) draw(in form.Input) (Frame, *Rejection) {
	d, err := form.ValidateAll(in, s.limits)
	if err != nil {
		s.logger.Printf("draw rejected: %v", form.Messages(err))
		return Frame{}, &Rejection{Errors: form.Messages(err)}
	}

	frame := newFrame(d)
	msg, err := encode(TypeFrame, frame)

	s.mu.Lock()
	s.current = frame
	if err == nil {
		s.hub.Broadcast(msg)
	}
	s.mu.Unlock()
	s.logger.Printf("drew %s", d)
	return frame, nil
}
