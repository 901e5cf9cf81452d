package input

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"video-transform-preview/internal/transform"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// X11Pointer queries the root window directly, so the button state is seen
// even when the pointer is released over another client.
type X11Pointer struct {
	conn *xgb.Conn
	root xproto.Window
}

func NewX11Pointer() (*X11Pointer, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X server: %w", err)
	}

	setup := xproto.Setup(conn)
	return &X11Pointer{
		conn: conn,
		root: setup.DefaultScreen(conn).Root,
	}, nil
}

func (p *X11Pointer) Poll() (State, error) {
	reply, err := xproto.QueryPointer(p.conn, p.root).Reply()
	if err != nil {
		return State{}, fmt.Errorf("querying pointer: %w", err)
	}

	win := rl.GetWindowPosition()
	return State{
		Position: transform.Vec2{
			X: float64(reply.RootX) - float64(win.X),
			Y: float64(reply.RootY) - float64(win.Y),
		},
		Down: reply.Mask&xproto.KeyButMaskButton1 != 0,
	}, nil
}

func (p *X11Pointer) Close() error {
	p.conn.Close()
	return nil
}
