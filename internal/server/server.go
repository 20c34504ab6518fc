// Package server exposes the rendering pipeline and the dashboard composer
// over HTTP. The packed-bitmap endpoints serve raw payload bytes; width and
// height travel in the X-Image-Width and X-Image-Height response headers
// because the payload itself carries no framing.
package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/BuKarData/inkframe/internal/bitmap"
	"github.com/BuKarData/inkframe/internal/dashboard"
	"github.com/BuKarData/inkframe/internal/dither"
	"github.com/BuKarData/inkframe/internal/render"
	"github.com/BuKarData/inkframe/internal/store"
	"github.com/BuKarData/inkframe/internal/weather"
)

// Config carries the deployment-specific inputs the dashboard needs.
type Config struct {
	Latitude  float64
	Longitude float64
	Units     string
	Lang      string
}

type Server struct {
	Images   *store.ImageRepository
	Devices  *store.DeviceRepository
	Pipeline *render.Pipeline
	Composer *dashboard.Composer
	Weather  *weather.Client
	Config   Config

	// Now is the clock used for dashboard headers; tests override it.
	Now func() time.Time
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/images", s.handleUploadImage)
	mux.HandleFunc("GET /api/images", s.handleListImages)
	mux.HandleFunc("DELETE /api/images/{id}", s.handleDeleteImage)

	mux.HandleFunc("GET /api/display/bitmap", s.handleDisplayBitmap)
	mux.HandleFunc("GET /api/display/dashboard", s.handleDisplayDashboard)
	mux.HandleFunc("POST /api/display/dashboard", s.handleComposeDashboard)
	mux.HandleFunc("GET /api/preview", s.handlePreview)
	mux.HandleFunc("GET /api/ditherings", s.handleDitherings)

	mux.HandleFunc("POST /api/devices/register", s.handleRegisterDevice)
	mux.HandleFunc("GET /api/devices/{id}/poll", s.handlePollDevice)
	mux.HandleFunc("POST /api/devices/{id}/mode", s.handleSetDeviceMode)

	return mux
}

// writePacked sends a packed bitmap with its out-of-band dimensions.
func writePacked(w http.ResponseWriter, p *bitmap.Packed) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("X-Image-Width", strconv.Itoa(p.Width()))
	w.Header().Set("X-Image-Height", strconv.Itoa(p.Height()))
	w.Write(p.Data())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusInternalServerError)
		return
	}

	opts := render.DefaultOptions()
	if raw := r.FormValue("options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &opts); err != nil {
			http.Error(w, "Invalid options", http.StatusBadRequest)
			return
		}
	}
	opts.Clamp()

	// Reject undecodable uploads up front instead of surprising the
	// device endpoints later.
	if _, err := s.Pipeline.Process(data, opts); err != nil {
		if errors.Is(err, render.ErrDecode) {
			http.Error(w, "Image could not be decoded", http.StatusBadRequest)
			return
		}
		slog.Error("Upload render check failed", "error", err)
		http.Error(w, "Render failure", http.StatusInternalServerError)
		return
	}

	img := &store.Image{Name: header.Filename, Data: data, Options: opts}
	err = s.Images.Transact(func(tx *sql.Tx) error {
		if err := s.Images.Create(tx, img); err != nil {
			return err
		}
		return s.Devices.BumpAll(tx)
	})
	if err != nil {
		slog.Error("Couldn't store image", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"uuid": img.Uuid.String()})
}

func (s *Server) handleListImages(w http.ResponseWriter, r *http.Request) {
	images, err := s.Images.List()
	if err != nil {
		slog.Error("Couldn't list images", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	type entry struct {
		Uuid     string         `json:"uuid"`
		Name     string         `json:"name"`
		Position int            `json:"position"`
		Options  render.Options `json:"options"`
	}
	out := make([]entry, 0, len(images))
	for _, img := range images {
		out = append(out, entry{img.Uuid.String(), img.Name, img.Position, img.Options})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid image id", http.StatusBadRequest)
		return
	}

	err = s.Images.Transact(func(tx *sql.Tx) error {
		if err := s.Images.Delete(tx, id); err != nil {
			return err
		}
		return s.Devices.BumpAll(tx)
	})
	if err != nil {
		slog.Error("Couldn't delete image", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderAtIndex loads and renders the image at the rotation index. The
// stored options are forced onto the panel raster size.
func (s *Server) renderAtIndex(index int) (*render.Result, error) {
	img, err := s.Images.GetByIndex(index)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}

	opts := img.Options
	opts.Width = render.DisplayWidth
	opts.Height = render.DisplayHeight
	return s.Pipeline.Process(img.Data, opts)
}

func (s *Server) handleDisplayBitmap(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(r.URL.Query().Get("image"))

	result, err := s.renderAtIndex(index)
	if err != nil {
		slog.Error("Couldn't render image", "index", index, "error", err)
		http.Error(w, "Render failure", http.StatusInternalServerError)
		return
	}
	if result == nil {
		http.Error(w, "No images uploaded", http.StatusNotFound)
		return
	}

	writePacked(w, result.Packed)
}

func (s *Server) dashboardModel(r *http.Request) dashboard.Model {
	m := dashboard.Model{Date: s.now(), Lang: s.Config.Lang}

	if s.Weather != nil {
		current, err := s.Weather.Current(r.Context(), s.Config.Latitude, s.Config.Longitude, s.Config.Units)
		if err != nil {
			// A dashboard without the weather line beats no refresh.
			slog.Warn("Weather lookup failed", "error", err)
		} else {
			m.Weather = current
		}
	}
	return m
}

func (s *Server) handleDisplayDashboard(w http.ResponseWriter, r *http.Request) {
	buf := s.Composer.Compose(s.dashboardModel(r))
	writePacked(w, bitmap.Pack(buf))
}

// handleComposeDashboard renders a caller-supplied model. Calendar and task
// collaborators push their data here; the composer itself stays stateless.
func (s *Server) handleComposeDashboard(w http.ResponseWriter, r *http.Request) {
	var m dashboard.Model
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "Invalid dashboard model", http.StatusBadRequest)
		return
	}
	if m.Date.IsZero() {
		m.Date = s.now()
	}

	writePacked(w, bitmap.Pack(s.Composer.Compose(m)))
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	index, _ := strconv.Atoi(r.URL.Query().Get("image"))

	result, err := s.renderAtIndex(index)
	if err != nil {
		slog.Error("Couldn't render preview", "index", index, "error", err)
		http.Error(w, "Render failure", http.StatusInternalServerError)
		return
	}
	if result == nil {
		http.Error(w, "No images uploaded", http.StatusNotFound)
		return
	}

	data, err := result.PreviewPNG(r.URL.Query().Get("stage"))
	if err != nil {
		slog.Error("Couldn't encode preview", "error", err)
		http.Error(w, "Render failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func (s *Server) handleDitherings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dither.Catalog())
}

func (s *Server) handleRegisterDevice(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Uuid string `json:"uuid"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid registration body", http.StatusBadRequest)
		return
	}

	d := &store.Device{Name: body.Name}
	if body.Uuid != "" {
		parsed, err := uuid.Parse(body.Uuid)
		if err != nil {
			http.Error(w, "Invalid device uuid", http.StatusBadRequest)
			return
		}
		d.Uuid = parsed
	}

	if err := s.Devices.Transact(func(tx *sql.Tx) error { return s.Devices.Register(tx, d) }); err != nil {
		slog.Error("Couldn't register device", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"uuid":        d.Uuid.String(),
		"pollSeconds": d.PollSeconds,
	})
}

func (s *Server) handlePollDevice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid device id", http.StatusBadRequest)
		return
	}

	d, err := s.Devices.Get(id)
	if err != nil {
		slog.Error("Couldn't read device", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}
	if d == nil {
		http.Error(w, "Unknown device", http.StatusNotFound)
		return
	}

	if err := s.Devices.Transact(func(tx *sql.Tx) error { return s.Devices.Touch(tx, id) }); err != nil {
		slog.Warn("Couldn't record device poll", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"refreshVersion":  d.RefreshVersion,
		"nextPollSeconds": d.PollSeconds,
		"mode":            d.Mode,
		"imageIndex":      d.ImageIndex,
	})
}

func (s *Server) handleSetDeviceMode(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid device id", http.StatusBadRequest)
		return
	}

	var body struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid mode body", http.StatusBadRequest)
		return
	}

	err = s.Devices.Transact(func(tx *sql.Tx) error {
		if err := s.Devices.SetMode(tx, id, body.Mode); err != nil {
			return err
		}
		if body.Mode == store.ModeImage {
			return s.Devices.AdvanceImage(tx, id)
		}
		return nil
	})
	if err != nil {
		slog.Error("Couldn't set device mode", "error", err)
		http.Error(w, "Storage failure", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
