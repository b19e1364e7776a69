package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/llm"
)

func dialAdviserWS(t *testing.T, h *Handler, query string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(h.AdviserChatWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/adviser-chat" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestAdviserChatWSRoundTrip(t *testing.T) {
	fake := &llm.FakeClient{Response: "Take the networking elective first."}
	h := newTestHandler(fake)

	conn := dialAdviserWS(t, h, "?adviser_name=Mr+Maikudi&adviser_field=Networking")
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var hello adviserWSOutbound
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "connected", hello.Type)

	require.NoError(t, conn.WriteJSON(adviserWSInbound{Type: "ask", Question: "What should I study?"}))

	var answer adviserWSOutbound
	require.NoError(t, conn.ReadJSON(&answer))
	assert.Equal(t, "answer", answer.Type)
	assert.Equal(t, "Take the networking elective first.", answer.Response)

	require.Len(t, fake.Prompts(), 1)
	assert.Contains(t, fake.Prompts()[0], "Mr Maikudi")
}

func TestAdviserChatWSEmptyQuestion(t *testing.T) {
	h := newTestHandler(&llm.FakeClient{Response: "unused"})

	conn := dialAdviserWS(t, h, "?adviser_name=Mr+Alfa&adviser_field=Cybersecurity")
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var hello adviserWSOutbound
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, "connected", hello.Type)

	require.NoError(t, conn.WriteJSON(adviserWSInbound{Type: "ask"}))

	var out adviserWSOutbound
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "error", out.Type)
	assert.Equal(t, "invalid_argument", out.Code)
}
