package utils

import (
	"image"
	"regexp"
	"testing"
	"time"
)

func TestIsAllowedTypeDefaults(t *testing.T) {
	cases := []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"IMAGE/WEBP", true},
		{"text/plain; charset=utf-8", false},
		{"application/octet-stream", false},
	}

	for _, tc := range cases {
		if got := IsAllowedType(tc.contentType, nil); got != tc.want {
			t.Errorf("IsAllowedType(%q) = %v, want %v", tc.contentType, got, tc.want)
		}
	}
}

func TestIsAllowedType(t *testing.T) {
	jpegOnly := []string{"image/jpeg"}

	if !IsAllowedType("image/jpeg", jpegOnly) {
		t.Error("expected image/jpeg to be allowed")
	}
	if IsAllowedType("image/png", jpegOnly) {
		t.Error("expected image/png to be rejected by a jpeg-only list")
	}
	if !IsAllowedType("image/png", nil) {
		t.Error("expected an empty list to fall back to the default types")
	}
}

func TestGenerateStorageKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	pattern := regexp.MustCompile(`^1700000000123_[0-9a-f]{8}\.png$`)

	key := GenerateStorageKey("", now)
	if !pattern.MatchString(key) {
		t.Fatalf("unexpected key %q", key)
	}

	if other := GenerateStorageKey("png", now); other == key {
		t.Errorf("expected distinct keys, got %q twice", key)
	}
}

func TestFormatBox(t *testing.T) {
	if got := FormatBox(image.Rect(2, 3, 10, 12)); got != "2,3,10,12" {
		t.Errorf("FormatBox = %q", got)
	}
}
