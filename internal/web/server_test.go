package web

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/nestframe/internal/form"
	"github.com/san-kum/nestframe/internal/pattern"
	"github.com/san-kum/nestframe/internal/render"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(pattern.Dimensions{Width: 20, Height: 20, Padding: 4}, form.DefaultLimits(), render.DefaultTheme, log.New(io.Discard, "", 0))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestIndexPage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	require.Contains(t, page, `<pre id="canvas">`)
	require.Contains(t, page, `name="width" value="20"`)
	require.Contains(t, page, "|  |  |  --  |  |  |")
	require.Contains(t, page, string(render.DefaultTheme.Background))
}

func TestDrawEndpoint(t *testing.T) {
	s, ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/draw", url.Values{
		"width": {"24"}, "height": {"20"}, "padding": {"4"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var frame Frame
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&frame))
	require.Equal(t, 24, frame.Width)
	require.Equal(t, []int{0, 3, 6, 9}, frame.Corners)
	require.Equal(t, pattern.Generate(24, 20, 4).String(), frame.Art)
	require.Equal(t, frame, s.Current())
}

func TestDrawEndpointRejects(t *testing.T) {
	s, ts := newTestServer(t)
	before := s.Current()

	resp, err := http.PostForm(ts.URL+"/draw", url.Values{
		"width": {"21"}, "height": {"abc"}, "padding": {"2"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var rej Rejection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rej))
	require.Equal(t, []string{
		"Width must be even",
		"Height must be an even number",
		"Padding must be at least 4",
	}, rej.Errors)
	require.Equal(t, before, s.Current(), "rejected draws must not touch the canvas")
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func sendDraw(t *testing.T, conn *websocket.Conn, in form.Input) {
	t.Helper()
	msg, err := encode(TypeDraw, in)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, msg))
}

func TestStreamBroadcastsFrames(t *testing.T) {
	_, ts := newTestServer(t)

	alice := dial(t, ts)
	bob := dial(t, ts)

	for _, c := range []*websocket.Conn{alice, bob} {
		env := readEnvelope(t, c)
		require.Equal(t, TypeFrame, env.Type)
		var f Frame
		require.NoError(t, json.Unmarshal(env.Payload, &f))
		require.Equal(t, 20, f.Width)
	}

	sendDraw(t, alice, form.Input{Width: "40", Height: "20", Padding: "6"})

	for _, c := range []*websocket.Conn{alice, bob} {
		env := readEnvelope(t, c)
		require.Equal(t, TypeFrame, env.Type)
		var f Frame
		require.NoError(t, json.Unmarshal(env.Payload, &f))
		require.Equal(t, 40, f.Width)
		require.Equal(t, pattern.Generate(40, 20, 6).String(), f.Art)
	}
}

func TestStreamRejectsOnlyToSender(t *testing.T) {
	_, ts := newTestServer(t)

	conn := dial(t, ts)
	readEnvelope(t, conn)

	sendDraw(t, conn, form.Input{Width: "20", Height: "20", Padding: "3"})
	env := readEnvelope(t, conn)
	require.Equal(t, TypeRejected, env.Type)

	var rej Rejection
	require.NoError(t, json.Unmarshal(env.Payload, &rej))
	require.Equal(t, []string{"Padding must be at least 4"}, rej.Errors)
}

func TestHub(t *testing.T) {
	h := NewHub()
	require.Equal(t, 0, h.Len())
	h.Broadcast([]byte("nobody listening"))
}

func TestStreamJoinNeverSeesStaleCanvas(t *testing.T) {
	_, ts := newTestServer(t)

	drawer := dial(t, ts)
	readEnvelope(t, drawer)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	go func() {
		for {
			if _, _, err := drawer.Read(ctx); err != nil {
				return
			}
		}
	}()

	const last = 60
	errc := make(chan error, 1)
	go func() {
		for w := 22; w <= last; w += 2 {
			msg, err := encode(TypeDraw, form.Input{Width: strconv.Itoa(w), Height: "20", Padding: "4"})
			if err == nil {
				err = drawer.Write(ctx, websocket.MessageText, msg)
			}
			if err != nil {
				errc <- err
				return
			}
		}
		errc <- nil
	}()

	joiner := dial(t, ts)
	prev := 0
	for prev != last {
		env := readEnvelope(t, joiner)
		require.Equal(t, TypeFrame, env.Type)
		var f Frame
		require.NoError(t, json.Unmarshal(env.Payload, &f))
		require.Greater(t, f.Width, prev, "frame %d arrived after %d", f.Width, prev)
		prev = f.Width
	}
	require.NoError(t, <-errc)
}
