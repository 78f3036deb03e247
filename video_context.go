package tensormedia

import (
	"bytes"
	"errors"
	"io"

	"github.com/nareix/joy4/av"
	"github.com/nareix/joy4/cgo/ffmpeg"
	"github.com/nareix/joy4/format/mp4"
)

var errFrameGeometryChanged = errors.New("frame size changed mid-stream")

// videoContext bundles the demuxer and codec state for a single decode
// call. Codec contexts must never be shared across concurrent decodes, so
// one is created per call and torn down by close() on every exit path.
type videoContext struct {
	demuxer *mp4.Demuxer
	idx     int
	info    av.VideoCodecData
	dec     *ffmpeg.VideoDecoder

	frames []*ffmpeg.VideoFrame
}

// openVideoContext parses the container headers in data and opens a codec
// context for the first supported video stream. A container that cannot be
// parsed is a decode error; a container without a decodable video stream is
// a not-supported error.
func openVideoContext(data []byte) (*videoContext, error) {
	demuxer := mp4.NewDemuxer(bytes.NewReader(data))

	streams, err := demuxer.Streams()
	if err != nil {
		return nil, &DecodeError{Op: "container parse", Err: err}
	}

	for i, stream := range streams {
		if stream.Type() != av.H264 {
			log.Debug("Skipping %v stream", stream.Type())
			continue
		}

		vdec, err := ffmpeg.NewVideoDecoder(stream)
		if err != nil {
			return nil, &NotSupportedError{
				Reason: "codec open failed: " + err.Error(),
			}
		}

		return &videoContext{
			demuxer: demuxer,
			idx:     i,
			info:    stream.(av.VideoCodecData),
			dec:     vdec,
		}, nil
	}

	return nil, &NotSupportedError{
		Reason: "no supported video stream found in container",
	}
}

// readFrames demuxes packet by packet until end of stream, decoding each
// video packet. Decoded native frames stay owned by the context and are
// freed by close().
func (c *videoContext) readFrames() ([]*ffmpeg.VideoFrame, error) {
	for {
		pkt, err := c.demuxer.ReadPacket()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DecodeError{Op: "demux", Err: err}
		}

		if int(pkt.Idx) != c.idx {
			continue
		}

		frame, err := c.dec.Decode(pkt.Data)
		if err != nil {
			return nil, &DecodeError{Op: "frame decode", Err: err}
		}
		if frame != nil {
			c.frames = append(c.frames, frame)
		}
	}
	return c.frames, nil
}

// close releases every native frame produced during this call. The codec
// context itself is owned by the binding and reclaimed by its finalizer.
func (c *videoContext) close() {
	for _, frame := range c.frames {
		frame.Free()
	}
	c.frames = nil
}
