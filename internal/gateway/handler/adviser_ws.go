package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"careercompass/internal/llm"
	"careercompass/internal/prompt"
)

const (
	adviserWSWriteWait = 10 * time.Second
	adviserWSPongWait  = 60 * time.Second
	adviserWSPingEvery = (adviserWSPongWait * 9) / 10
)

var adviserWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type adviserWSInbound struct {
	Type     string `json:"type"`
	Question string `json:"question,omitempty"`
}

type adviserWSOutbound struct {
	Type     string `json:"type"`
	Response string `json:"response,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

// AdviserChatWS is the streaming-session variant of AdviserChat. The adviser
// persona is fixed per connection via query params; each "ask" message gets
// one "answer" back on the same socket.
// GET /ws/adviser-chat?adviser_name=...&adviser_field=...
func (h *Handler) AdviserChatWS(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("adviser_name"))
	field := strings.TrimSpace(r.URL.Query().Get("adviser_field"))
	if name == "" || field == "" {
		http.Error(w, "adviser_name and adviser_field are required", http.StatusBadRequest)
		return
	}

	conn, err := adviserWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(adviserWSPongWait)); err != nil {
		log.Printf("adviser ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(adviserWSPongWait))
	})

	writeCh := make(chan adviserWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(adviserWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(adviserWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(adviserWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	pushAdviserWS(writeCh, adviserWSOutbound{Type: "connected"})

	for {
		var in adviserWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			cancel()
			<-writerDone
			return
		}
		switch strings.ToLower(strings.TrimSpace(in.Type)) {
		case "ping":
			pushAdviserWS(writeCh, adviserWSOutbound{Type: "pong"})
		case "ask":
			question := strings.TrimSpace(in.Question)
			if question == "" {
				pushAdviserWS(writeCh, adviserWSOutbound{
					Type:    "error",
					Code:    "invalid_argument",
					Message: "question is required",
				})
				continue
			}
			if h.ai == nil {
				pushAdviserWS(writeCh, adviserWSOutbound{
					Type:    "error",
					Code:    "unavailable",
					Message: "AI service is not configured.",
				})
				continue
			}
			text, genErr := h.ai.GenerateText(ctx, prompt.AdviserChat(question, name, field), llm.Options{
				Temperature: 0.7,
				TopP:        1,
			})
			if genErr != nil {
				log.Printf("adviser ws generate failed: %v", genErr)
				pushAdviserWS(writeCh, adviserWSOutbound{
					Type:    "error",
					Code:    "internal",
					Message: "Failed to generate AI response.",
				})
				continue
			}
			pushAdviserWS(writeCh, adviserWSOutbound{Type: "answer", Response: text})
		default:
			pushAdviserWS(writeCh, adviserWSOutbound{
				Type:    "error",
				Code:    "invalid_argument",
				Message: "unsupported type: " + strings.TrimSpace(in.Type),
			})
		}
	}
}

func pushAdviserWS(writeCh chan adviserWSOutbound, out adviserWSOutbound) {
	select {
	case writeCh <- out:
		return
	default:
	}
	select {
	case <-writeCh:
	default:
	}
	select {
	case writeCh <- out:
	default:
	}
}
