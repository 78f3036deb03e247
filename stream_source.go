//////////////////////////////////////////////////////////////////////////////
//
// StreamSource feeds encoded media blocks from a websocket into a pipeline
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package tensormedia

import (
	"github.com/gorilla/websocket"
)

// StreamSource is an upstream producer of memory-block data values. Each
// binary websocket message becomes one block; text and control messages are
// ignored. The channel returned by Blocks is closed when the peer goes away
// or Close is called.
type StreamSource struct {
	conn *websocket.Conn
	out  chan Data
}

// DialStream connects to a websocket endpoint serving encoded media blobs.
func DialStream(url string) (*StreamSource, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	s := &StreamSource{
		conn: conn,
		out:  make(chan Data, 4),
	}
	go s.readLoop()

	return s, nil
}

// Blocks returns the stream of incoming memory-block data values.
func (s *StreamSource) Blocks() <-chan Data {
	return s.out
}

// Close tears down the connection. The Blocks channel is closed once the
// read loop observes the closed connection.
func (s *StreamSource) Close() error {
	return s.conn.Close()
}

// readLoop repeatedly reads from the websocket and emits each binary
// message as a memory block. It exits when the connection is closed or an
// unrecoverable error occurs.
func (s *StreamSource) readLoop() {
	defer close(s.out)

	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			log.Debug("Stream source closed: %v", err)
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		if len(data) == 0 {
			log.Warn("Dropping empty block from stream source")
			continue
		}

		s.out <- BlockData(NewMemoryBlock(data, nil))
	}
}
