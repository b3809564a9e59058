package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/state"
)

const (
	maxPatchBytes = 64 << 10
	maxFrameScale = 8
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type statusResponse struct {
	State        string                `json:"state"`
	X            float64               `json:"x"`
	Y            float64               `json:"y"`
	Z            float64               `json:"z"`
	Feed         float64               `json:"feed"`
	Spindle      int                   `json:"spindle"`
	Alarm        int                   `json:"alarm"`
	AlarmMessage string                `json:"alarm_message"`
	URL          string                `json:"url"`
	Version      string                `json:"version"`
	Seq          uint64                `json:"seq"`
	Display      *displayStatsResponse `json:"display,omitempty"`
}

type displayStatsResponse struct {
	Renders uint64 `json:"renders"`
	Dropped uint64 `json:"dropped"`
	Windows uint64 `json:"windows"`
	Blits   uint64 `json:"blits"`
	Ticks   uint64 `json:"ticks"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	mux.HandleFunc("/button/", func(w http.ResponseWriter, r *http.Request) { handleButton(w, r, deps) })
	mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFrame(w, r, deps) })
	return mux
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		var patch state.Patch
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPatchBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&patch); err != nil {
			writeAPIError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("invalid status patch: %v", err))
			return
		}
		if err := deps.Status.Apply(patch); err != nil {
			writeAPIError(w, http.StatusUnprocessableEntity, "invalid_state", err.Error())
			return
		}
	default:
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, statusFrom(deps))
}

func statusFrom(deps APIV1Deps) statusResponse {
	s := deps.Status.Snapshot()
	resp := statusResponse{
		State:        s.Machine.String(),
		X:            s.Position.X,
		Y:            s.Position.Y,
		Z:            s.Position.Z,
		Feed:         s.Feed,
		Spindle:      s.Spindle,
		Alarm:        s.Alarm.Code,
		AlarmMessage: s.Alarm.Message,
		URL:          s.Network.URL,
		Version:      s.Version,
		Seq:          s.Seq,
	}
	if deps.Stats != nil {
		st := deps.Stats.Stats()
		resp.Display = &displayStatsResponse{
			Renders: st.Renders,
			Dropped: st.Dropped,
			Windows: st.Windows,
			Blits:   st.Blits,
			Ticks:   st.Ticks,
		}
	}
	return resp
}

// POST /button/{name}
func handleButton(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/button/"), "/")
	ev, err := buttons.ParseEvent(name)
	if err != nil {
		writeAPIError(w, http.StatusNotFound, "unknown_button", err.Error())
		return
	}
	if !deps.Buttons.Push(ev) {
		writeAPIError(w, http.StatusServiceUnavailable, "buttons_busy", "button queue is full")
		return
	}
	writeJSON(w, http.StatusAccepted, okResponse{OK: true})
}

// GET /frame.png?scale=N
func handleFrame(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	scale := 1
	if raw := r.URL.Query().Get("scale"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxFrameScale {
			writeAPIError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("scale must be between 1 and %d", maxFrameScale))
			return
		}
		scale = n
	}

	var buf bytes.Buffer
	if err := deps.Frames.WritePNG(&buf, scale); err != nil {
		writeAPIError(w, http.StatusServiceUnavailable, "frame_unavailable", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
