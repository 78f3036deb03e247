//////////////////////////////////////////////////////////////////////////////
//
// decodectl: decode a media file and report the resulting tensor
//
// Copyright 2026 Visiona Labs. All rights reserved.
//
//////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/visiona/tensormedia"
)

// Populated via -ldflags="-X ...". See Makefile.
var GitRevisionId string

var (
	flagFormat  string
	flagDType   string
	flagDevice  string
	flagPin     bool
	flagHelp    bool
	flagVersion bool
)

func init() {
	flag.StringVarP(&flagFormat, "format", "f", "png", "Input format (png or mp4)")
	flag.StringVarP(&flagDType, "dtype", "t", "", "Video output element type (float32, int32, int16)")
	flag.StringVarP(&flagDevice, "device", "d", "cpu", "Target device (cpu or gpu)")
	flag.BoolVarP(&flagPin, "pin", "p", false, "Use page-locked host memory")

	flag.BoolVarP(&flagHelp, "help", "h", false, "Print usage information and exit")
	flag.BoolVarP(&flagVersion, "version", "v", false, "Print version information and exit")
}

const helpString = `Decode an encoded media file into a tensor and print its summary

Usage: decodectl [OPTION]... FILE

Options:
  -f, --format=STR  Input format: "png" or "mp4" (default: png)
  -t, --dtype=STR   Output element type for video: float32, int32 or int16
  -d, --device=STR  Target device: "cpu" or "gpu" (default: cpu)
  -p, --pin         Allocate page-locked host memory
  -h, --help        Print this message and exit
  -v, --version     Print version information and exit
`

func main() {
	flag.Parse()

	if flagVersion {
		fmt.Println("decodectl", GitRevisionId)
		os.Exit(0)
	}
	if flagHelp || flag.NArg() != 1 {
		fmt.Print(helpString)
		if flagHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fail("reading input: %v", err)
	}

	dec, err := buildDecoder()
	if err != nil {
		fail("%v", err)
	}

	out, err := dec.Decode(tensormedia.BlockData(tensormedia.NewMemoryBlock(raw, nil)))
	if err != nil {
		fail("decode failed: %v", err)
	}

	t := out.Tensor()
	defer t.Close()

	color.Green("decoded %s", flag.Arg(0))
	fmt.Printf("  shape:  %v\n", t.Shape())
	fmt.Printf("  dtype:  %v\n", t.DType())
	fmt.Printf("  device: %v\n", t.Device())
	fmt.Printf("  pinned: %v\n", t.Pinned())
	fmt.Printf("  bytes:  %d\n", len(t.Bytes()))
}

func buildDecoder() (tensormedia.Decoder, error) {
	device := tensormedia.CPU()
	if flagDevice == "gpu" {
		device = tensormedia.GPU(0)
	}

	switch flagFormat {
	case "png":
		opts := tensormedia.PNGDecoderOptions{}.
			WithDevice(device).
			WithPinMemory(flagPin)
		return tensormedia.NewPNGDecoder(opts), nil

	case "mp4":
		opts := tensormedia.VideoDecoderOptions{}.
			WithDevice(device).
			WithPinMemory(flagPin)
		if flagDType != "" {
			dt, ok := tensormedia.ParseDType(flagDType)
			if !ok {
				return nil, fmt.Errorf("unknown dtype %q", flagDType)
			}
			opts = opts.WithDType(dt)
		}
		dec, err := tensormedia.NewVideoDecoder(opts, flagPin)
		if err != nil {
			return nil, err
		}
		return dec, nil

	default:
		return nil, fmt.Errorf("unknown format %q", flagFormat)
	}
}

func fail(format string, a ...interface{}) {
	color.Red("decodectl: "+format, a...)
	os.Exit(1)
}
