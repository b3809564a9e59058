package web

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/transport"
)

type fakeStats struct{}

func (fakeStats) Stats() gfx.Stats { return gfx.Stats{Renders: 3, Dropped: 1} }

type fixture struct {
	store  *state.Store
	btns   *buttons.Chan
	canvas *transport.Canvas
	mux    *http.ServeMux
}

func newFixture() *fixture {
	f := &fixture{
		store:  state.NewStore(),
		btns:   buttons.NewChan(1),
		canvas: transport.NewCanvas(4, 3),
	}
	f.mux = NewDefaultMux("", APIV1Config{Deps: APIV1Deps{
		Status:  f.store,
		Buttons: f.btns,
		Frames:  f.canvas,
		Stats:   fakeStats{},
	}})
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestGetStatus(t *testing.T) {
	f := newFixture()
	f.store.UpdatePosition(state.Position{X: 1.5, Y: 2, Z: -3})
	f.store.UpdateMotion(600, 12000)
	f.store.UpdateNetwork(state.NetworkInfo{URL: "http://10.0.0.2/"})

	rec := f.do(http.MethodGet, "/api/v1/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	got := decode[statusResponse](t, rec)
	assert.Equal(t, "Boot", got.State)
	assert.Equal(t, 1.5, got.X)
	assert.Equal(t, -3.0, got.Z)
	assert.Equal(t, 600.0, got.Feed)
	assert.Equal(t, 12000, got.Spindle)
	assert.Equal(t, "http://10.0.0.2/", got.URL)
	assert.Equal(t, uint64(3), got.Seq)
	require.NotNil(t, got.Display)
	assert.Equal(t, uint64(3), got.Display.Renders)
	assert.Equal(t, uint64(1), got.Display.Dropped)
}

func TestPostStatus(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPost, "/api/v1/status", `{"state":"run","x":10,"feed":250.5,"spindle":9000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[statusResponse](t, rec)
	assert.Equal(t, "Run", got.State)
	assert.Equal(t, 10.0, got.X)

	s := f.store.Snapshot()
	assert.Equal(t, state.RUN, s.Machine)
	assert.Equal(t, 250.5, s.Feed)
	assert.Equal(t, 9000, s.Spindle)

	rec = f.do(http.MethodPost, "/api/v1/status", `{"alarm":3,"alarm_message":"hard limit"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, state.AlarmInfo{Code: 3, Message: "hard limit"}, f.store.Snapshot().Alarm)
	assert.Equal(t, state.ALARM, f.store.Snapshot().Machine)
}

func TestPostStatusRejectsBadInput(t *testing.T) {
	cases := map[string]struct {
		body string
		code int
		err  string
	}{
		"not json":      {`{`, http.StatusBadRequest, "bad_request"},
		"unknown field": {`{"speed":1}`, http.StatusBadRequest, "bad_request"},
		"bad state":     {`{"state":"flying"}`, http.StatusUnprocessableEntity, "invalid_state"},
		"negative feed": {`{"feed":-1}`, http.StatusUnprocessableEntity, "invalid_state"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			before := f.store.Snapshot()
			rec := f.do(http.MethodPost, "/api/v1/status", tc.body)
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.err, decode[apiError](t, rec).Error)
			assert.Equal(t, before, f.store.Snapshot())
		})
	}
}

func TestStatusMethodNotAllowed(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodDelete, "/api/v1/status", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestButton(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPost, "/api/v1/button/next", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, buttons.Next, <-f.btns.Events())

	rec = f.do(http.MethodPost, "/api/v1/button/launch", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_button", decode[apiError](t, rec).Error)

	rec = f.do(http.MethodGet, "/api/v1/button/next", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	require.Equal(t, http.StatusAccepted, f.do(http.MethodPost, "/api/v1/button/reset", "").Code)
	rec = f.do(http.MethodPost, "/api/v1/button/reset", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFrame(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.canvas.Blit(0, 0, 1, 1, []gfx.Pixel{gfx.White}))

	rec := f.do(http.MethodGet, "/api/v1/frame.png?scale=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})

	for _, q := range []string{"0", "9", "big"} {
		rec := f.do(http.MethodGet, "/api/v1/frame.png?scale="+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestFrameNotConfigured(t *testing.T) {
	mux := NewDefaultMux("", APIV1Config{})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/frame.png", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "frame_unavailable", decode[apiError](t, rec).Error)
}

func TestEmbeddedUI(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/frame.png")
}

func TestStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(dir+"/hello.txt", "hi"))

	rec := httptest.NewRecorder()
	StaticUIHandler(dir).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello.txt", nil))
	assert.Equal(t, "hi", rec.Body.String())

	rec = httptest.NewRecorder()
	StaticUIHandler(dir+"/missing").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello.txt", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDevCORS(t *testing.T) {
	h := WithDevCORS(NewDefaultMux("", APIV1Config{}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/status", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPServerLifecycle(t *testing.T) {
	f := newFixture()
	s := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"}, f.mux)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Start(ctx))

	resp, err := http.Get("http://" + s.Addr() + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
	assert.Error(t, s.Start(ctx))
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, ":9090")
	t.Setenv(EnvDevMode, "true")
	cfg, err := DefaultServerConfigFromEnv(":80")
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: ":9090", DevMode: true}, cfg)

	t.Setenv(EnvDevMode, "maybe")
	_, err = DefaultServerConfigFromEnv(":80")
	assert.ErrorContains(t, err, EnvDevMode+" must be a boolean")
}

func TestAdvertisedURL(t *testing.T) {
	u := AdvertisedURL(":8080")
	assert.True(t, strings.HasPrefix(u, "http://"), u)
	assert.True(t, strings.HasSuffix(u, ":8080/"), u)
	assert.False(t, strings.Contains(AdvertisedURL(":80"), ":80/"))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
