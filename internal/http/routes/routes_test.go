package routes

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/image-trim/internal/config"
	"github.com/phambaophuc/image-trim/internal/http/handlers"
	"github.com/phambaophuc/image-trim/internal/services/processor"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Supabase: config.SupabaseConfig{BUCKET: "banners"},
		Storage:  config.StorageConfig{MaxFileSize: 1 << 20},
	}
	logger := zaptest.NewLogger(t)
	h := handlers.NewImageHandler(processor.NewImageProcessor(), nil, logger, cfg)

	return NewRouter(h, logger).SetupRoutes()
}

func uploadRequest(t *testing.T, target, field string) *http.Request {
	t.Helper()

	canvas := imaging.New(24, 24, color.NRGBA{})
	img := imaging.Paste(canvas, imaging.New(6, 4, color.NRGBA{255, 0, 0, 255}), image.Pt(9, 2))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, "logo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if err := png.Encode(part, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestSetupRoutes(t *testing.T) {
	jsonPost := httptest.NewRequest(http.MethodPost, "/api/v1/images/trim", strings.NewReader(`{}`))
	jsonPost.Header.Set("Content-Type", "application/json")

	cases := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{name: "health", req: httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), status: http.StatusOK},
		{name: "root", req: httptest.NewRequest(http.MethodGet, "/", nil), status: http.StatusOK},
		{name: "trim", req: uploadRequest(t, "/api/v1/images/trim", "image"), status: http.StatusOK},
		{name: "trim rejects non-multipart", req: jsonPost, status: http.StatusUnsupportedMediaType},
		{name: "banner without storage", req: uploadRequest(t, "/api/v1/banners", "file"), status: http.StatusServiceUnavailable},
		{name: "preflight", req: httptest.NewRequest(http.MethodOptions, "/api/v1/images/trim", nil), status: http.StatusNoContent},
		{name: "unknown route", req: httptest.NewRequest(http.MethodGet, "/api/v2/health", nil), status: http.StatusNotFound},
	}

	router := newTestServer(t)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, tc.req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.status, rec.Body.String())
			}
			if got := rec.Header().Get("Access-Control-Expose-Headers"); got != "X-Trim-Box" {
				t.Errorf("expose headers = %q", got)
			}
		})
	}
}

func TestSetupRoutesTrimHeaders(t *testing.T) {
	router := newTestServer(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/images/trim", "image"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if box := rec.Header().Get("X-Trim-Box"); box != "9,2,15,6" {
		t.Errorf("X-Trim-Box = %q", box)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 4 {
		t.Errorf("size = %dx%d, want 6x4", cfg.Width, cfg.Height)
	}
}
