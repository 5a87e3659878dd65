package web

import (
	"encoding/json"

	"github.com/san-kum/nestframe/internal/pattern"
	"github.com/san-kum/nestframe/internal/render"
)

// Envelope is the frame exchanged over the stream socket.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const (
	TypeDraw     = "draw"
	TypeFrame    = "frame"
	TypeRejected = "rejected"
)

// Frame is a generated pattern ready for display.
type Frame struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Padding int    `json:"padding"`
	Corners []int  `json:"corners"`
	Art     string `json:"art"`
}

// Rejection lists the user-facing validation messages.
type Rejection struct {
	Errors []string `json:"errors"`
}

func newFrame(d pattern.Dimensions) Frame {
	return Frame{
		Width:   d.Width,
		Height:  d.Height,
		Padding: d.Padding,
		Corners: d.Corners(),
		Art:     render.Text(d.Generate()),
	}
}

func encode(typ string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: typ, Payload: raw})
}
