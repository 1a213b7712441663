package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/readysethire/readysethire/internal/application"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
)

// Send pings to peer with this period. Must be less than pongWait.
var pingPeriod = (pongWait * 9) / 10

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// transcriptMessage is one update from the browser's speech recognition
// callback. transcript carries the full text so far; final marks the stop.
type transcriptMessage struct {
	QuestionID int64  `json:"question_id"`
	Transcript string `json:"transcript"`
	Final      bool   `json:"final"`
}

type transcriptAck struct {
	QuestionID int64  `json:"question_id"`
	Recording  string `json:"recording"`
	Error      string `json:"error,omitempty"`
}

// TranscriptWebSocketHandler streams live speech transcripts into the
// session's per-question drafts. The capture itself runs in the browser;
// this is the mirror of its result callback.
func (h *SessionHandler) TranscriptWebSocketHandler(c *gin.Context) {
	token := c.Param("token")
	if _, err := h.svc.Get(token); err != nil {
		h.respondSessionError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Writer goroutine: the single writer on the connection. Acks and
	// pings both go through it so the read loop never writes directly.
	acks := make(chan transcriptAck, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer conn.Close()
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case ack, ok := <-acks:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ack); err != nil {
					return
				}
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()
	defer close(acks)

	for {
		var msg transcriptMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("transcript stream for session %s closed: %v", token, err)
			}
			return
		}

		var view application.SessionView
		var opErr error
		if msg.Final {
			view, opErr = h.svc.StopRecording(token, msg.QuestionID)
		} else {
			view, opErr = h.svc.UpdateTranscript(token, msg.QuestionID, msg.Transcript)
		}

		ack := transcriptAck{QuestionID: msg.QuestionID}
		if opErr != nil {
			ack.Error = opErr.Error()
		} else if d, ok := view.Drafts[msg.QuestionID]; ok {
			ack.Recording = string(d.Recording)
		}

		select {
		case acks <- ack:
		case <-writerDone:
			return
		}
	}
}
