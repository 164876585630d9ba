package main

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tonmoystark/portfolio/internal/typewriter"
)

// heroFrame is the wire form of one typewriter tick.
type heroFrame struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Mode  string `json:"mode"`
}

func newHeroFrame(s typewriter.Snapshot) heroFrame {
	return heroFrame{Index: s.Index, Text: s.Text, Mode: s.Mode.String()}
}

// frameBuffer bounds how far a slow client may lag before ticks are dropped.
const frameBuffer = 32

// startHeroCycler starts a cycler owned by one viewer. Frames are delivered
// on the returned channel; the caller must Stop the cycler.
func (s *server) startHeroCycler() (*typewriter.Cycler, <-chan typewriter.Snapshot, error) {
	frames := make(chan typewriter.Snapshot, frameBuffer)
	cycler := typewriter.New(
		typewriter.WithScheduler(s.newScheduler()),
		typewriter.WithObserver(func(snap typewriter.Snapshot) {
			select {
			case frames <- snap:
			default:
			}
		}),
	)
	if err := cycler.Start(s.cfg.Roles, s.cfg.Hero); err != nil {
		return nil, nil, err
	}
	return cycler, frames, nil
}

func (s *server) handleHeroRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"roles":           s.cfg.Roles,
		"type_delay_ms":   s.cfg.Hero.TypeDelay.Milliseconds(),
		"delete_delay_ms": s.cfg.Hero.DeleteDelay.Milliseconds(),
		"pause_delay_ms":  s.cfg.Hero.PauseDelay.Milliseconds(),
	})
}

// handleHeroStream streams typewriter frames as Server-Sent Events.
func (s *server) handleHeroStream(c *gin.Context) {
	cycler, frames, err := s.startHeroCycler()
	if err != nil {
		log.Printf("Error starting hero typewriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Hero animation unavailable"})
		return
	}
	defer cycler.Stop()
	defer s.metrics.StreamOpened("sse")()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("frame", newHeroFrame(cycler.Snapshot()))
	c.Writer.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case snap := <-frames:
			c.SSEvent("frame", newHeroFrame(snap))
			s.metrics.FrameSent("sse")
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", "")
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleHeroWebSocket streams the same frames as JSON websocket messages.
func (s *server) handleHeroWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Hero websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	cycler, frames, err := s.startHeroCycler()
	if err != nil {
		log.Printf("Error starting hero typewriter: %v", err)
		msg := websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "hero animation unavailable")
		if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
			log.Printf("Hero websocket close failed: %v", err)
		}
		return
	}
	defer cycler.Stop()
	defer s.metrics.StreamOpened("ws")()

	// The client never sends data; reading surfaces its close frame.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(newHeroFrame(cycler.Snapshot())); err != nil {
		return
	}
	for {
		select {
		case snap := <-frames:
			if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
				log.Printf("Hero websocket write deadline failed: %v", err)
				return
			}
			if err := conn.WriteJSON(newHeroFrame(snap)); err != nil {
				log.Printf("Hero websocket write failed: %v", err)
				return
			}
			s.metrics.FrameSent("ws")
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
