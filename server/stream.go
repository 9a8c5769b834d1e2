package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
)

// ClientMessage is a control message sent by a viewer
// type "viewport" carries Width and Height, "visibility" carries Visible, "scroll" carries Y
type ClientMessage struct {
	Type    string  `json:"type"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
	Y       float64 `json:"y,omitempty"`
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade: %v", err)
		return
	}

	v := s.scene.Join()
	log.Printf("stream: viewer joined from %s", r.RemoteAddr)

	closed := make(chan struct{})
	engine.Go(func() {
		defer close(closed)
		s.readControl(conn, v)
	})

	s.writeFrames(conn, v, closed)
	v.Leave()
	conn.Close()
	<-closed
	log.Printf("stream: viewer left %s", r.RemoteAddr)
}

// readControl applies viewer messages until the connection fails
func (s *Server) readControl(conn *websocket.Conn, v *Viewer) {
	conn.SetReadLimit(parameter.StreamReadLimit)
	conn.SetReadDeadline(time.Now().Add(parameter.StreamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(parameter.StreamPongWait))
	})

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("stream: read: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(parameter.StreamPongWait))
		s.apply(v, msg)
	}
}

func (s *Server) apply(v *Viewer, msg ClientMessage) {
	switch msg.Type {
	case "viewport":
		s.scene.SetViewport(scene.Viewport{Width: msg.Width, Height: msg.Height})
	case "visibility":
		if msg.Visible != nil {
			v.SetVisible(*msg.Visible)
		}
	case "scroll":
		s.scene.ScrollTo(msg.Y)
	default:
		log.Printf("stream: unknown message type %q", msg.Type)
	}
}

// writeFrames forwards frames and keepalive pings until the reader exits or the scene stops
func (s *Server) writeFrames(conn *websocket.Conn, v *Viewer, closed <-chan struct{}) {
	ping := time.NewTicker(parameter.StreamPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return

		case <-s.scene.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
				time.Now().Add(parameter.StreamWriteWait))
			return

		case data := <-v.Frames():
			conn.SetWriteDeadline(time.Now().Add(parameter.StreamWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("stream: write: %v", err)
				return
			}

		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(parameter.StreamWriteWait)); err != nil {
				return
			}
		}
	}
}
