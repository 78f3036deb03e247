package tensormedia

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSourceEmitsBlocks(t *testing.T) {
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		defer conn.Close()

		conn.WriteMessage(websocket.BinaryMessage, []byte("frame-one"))
		conn.WriteMessage(websocket.TextMessage, []byte("ignored"))
		conn.WriteMessage(websocket.BinaryMessage, []byte("frame-two"))
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	source, err := DialStream(url)
	require.NoError(t, err)
	defer source.Close()

	first := <-source.Blocks()
	require.True(t, first.IsMemoryBlock())
	assert.Equal(t, []byte("frame-one"), first.MemoryBlock().Bytes())

	second := <-source.Blocks()
	require.True(t, second.IsMemoryBlock())
	assert.Equal(t, []byte("frame-two"), second.MemoryBlock().Bytes())
}

func TestStreamSourceClosesChannel(t *testing.T) {
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		conn.Close()
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	source, err := DialStream(url)
	require.NoError(t, err)
	defer source.Close()

	_, open := <-source.Blocks()
	assert.False(t, open)
}
