package tensormedia

import "github.com/visiona/tensormedia/internal/logging"

var log = logging.DefaultLogger.WithTag("tensormedia")

// Decoder is the interface for media decode stages. Decode consumes a
// memory-block data value and produces a tensor data value. Implementations
// hold no per-call state and are safe for concurrent use on independent
// inputs.
type Decoder interface {
	Decode(Data) (Data, error)
}
