package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/BuKarData/inkframe/internal/dashboard"
	"github.com/BuKarData/inkframe/internal/dither"
	"github.com/BuKarData/inkframe/internal/font"
	"github.com/BuKarData/inkframe/internal/locale"
	"github.com/BuKarData/inkframe/internal/render"
	"github.com/BuKarData/inkframe/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("couldn't open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	fonts := font.NewTable()
	return &Server{
		Images:   &store.ImageRepository{Db: db},
		Devices:  &store.DeviceRepository{Db: db},
		Pipeline: render.NewPipeline(fonts),
		Composer: dashboard.NewComposer(fonts, locale.NewTable()),
		Config:   Config{Lang: "en"},
		Now: func() time.Time {
			return time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
		},
	}
}

func testImagePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x % 256), uint8(y % 256), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("couldn't encode test image: %v", err)
	}
	return buf.Bytes()
}

func uploadImage(t *testing.T, srv *Server) {
	t.Helper()
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", "test.png")
	if err != nil {
		t.Fatalf("couldn't build form: %v", err)
	}
	part.Write(testImagePNG(t))
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/images", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("upload returned %v: %s", rec.Code, rec.Body.String())
	}
}

func TestDashboardBitmapEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/display/dashboard", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %v", rec.Code)
	}
	if got := rec.Header().Get("X-Image-Width"); got != "200" {
		t.Errorf("X-Image-Width is %q", got)
	}
	if got := rec.Header().Get("X-Image-Height"); got != "200" {
		t.Errorf("X-Image-Height is %q", got)
	}
	if got := rec.Body.Len(); got != 5000 {
		t.Errorf("payload is %v bytes, want 5000", got)
	}
}

func TestImageBitmapEndpoint(t *testing.T) {
	srv := newTestServer(t)
	uploadImage(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/display/bitmap?image=0", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %v: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.Len(); got != 5000 {
		t.Errorf("payload is %v bytes, want 5000", got)
	}
}

func TestBitmapEndpointEmpty(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/display/bitmap", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status %v with no images, want 404", rec.Code)
	}
}

func TestUploadRejectsGarbage(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, _ := form.CreateFormFile("image", "bad.bin")
	part.Write([]byte("this is not an image"))
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/images", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("garbage upload returned %v, want 400", rec.Code)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	srv := newTestServer(t)
	uploadImage(t, srv)

	for _, stage := range []string{"gray", "binary"} {
		req := httptest.NewRequest(http.MethodGet, "/api/preview?image=0&stage="+stage, nil)
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("preview %v status %v", stage, rec.Code)
		}
		if _, err := png.Decode(rec.Body); err != nil {
			t.Errorf("preview %v is not a PNG: %v", stage, err)
		}
	}
}

func TestDitheringsCatalog(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ditherings", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	var catalog []dither.Info
	if err := json.NewDecoder(rec.Body).Decode(&catalog); err != nil {
		t.Fatalf("catalog is not JSON: %v", err)
	}
	if len(catalog) != 7 {
		t.Errorf("catalog has %v entries, want 7", len(catalog))
	}
}

func TestDeviceRegisterAndPoll(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/devices/register",
		bytes.NewBufferString(`{"name":"hallway"}`))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %v", rec.Code)
	}

	var registered struct {
		Uuid        string `json:"uuid"`
		PollSeconds int    `json:"pollSeconds"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&registered); err != nil {
		t.Fatalf("register response: %v", err)
	}
	if registered.PollSeconds != 30 {
		t.Errorf("default poll interval is %v, want 30", registered.PollSeconds)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/devices/"+registered.Uuid+"/poll", nil)
	rec = httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("poll returned %v", rec.Code)
	}

	var poll struct {
		RefreshVersion int    `json:"refreshVersion"`
		Mode           string `json:"mode"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&poll); err != nil {
		t.Fatalf("poll response: %v", err)
	}
	if poll.Mode != store.ModeDashboard {
		t.Errorf("fresh device mode is %q", poll.Mode)
	}
}

func TestComposeDashboardEndpoint(t *testing.T) {
	srv := newTestServer(t)

	model := dashboard.Model{
		Lang:   "pl",
		Events: []dashboard.Event{{Summary: "Spotkanie", Start: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)}},
		Todos:  []dashboard.Todo{{Text: "kupić mleko"}},
	}
	payload, _ := json.Marshal(model)

	req := httptest.NewRequest(http.MethodPost, "/api/display/dashboard", bytes.NewBuffer(payload))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %v", rec.Code)
	}
	if rec.Body.Len() != 5000 {
		t.Errorf("payload is %v bytes, want 5000", rec.Body.Len())
	}
}
