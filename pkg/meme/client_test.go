package meme

import (
	"context"
	"errors"
	"image/color"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateMemeSendsMultipartContract(t *testing.T) {
	preview, err := EncodePNG(Sample(1))
	if err != nil {
		t.Fatal(err)
	}
	var gotFields map[string]string
	var gotPNG []byte
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/create-meme" {
			http.Error(w, "wrong route", http.StatusNotFound)
			return
		}
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		f, hdr, err := r.FormFile("meme")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotType = hdr.Header.Get("Content-Type")
		gotPNG, _ = io.ReadAll(f)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(preview)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 0)
	sub := Submission{
		PNG:    preview,
		Top:    TextLayer{Text: "TOP", Pos: Point{X: 20, Y: 20}},
		Bottom: TextLayer{Text: "BOTTOM\nTWO", Pos: Point{X: 12.5, Y: 532}},
		Style:  Style{FontSizePx: 48, Family: FontAnton, Color: color.RGBA{0xFF, 0xD5, 0x4F, 0xFF}},
	}
	out, err := c.CreateMeme(context.Background(), sub)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(preview) {
		t.Fatalf("unexpected response size %d", len(out))
	}
	want := map[string]string{
		"topText":    "TOP",
		"bottomText": "BOTTOM\nTWO",
		"fontSize":   "48",
		"fontColor":  "#ffd54f",
		"topX":       "20",
		"topY":       "20",
		"bottomX":    "12.5",
		"bottomY":    "532",
	}
	for k, v := range want {
		if gotFields[k] != v {
			t.Fatalf("field %s = %q, want %q", k, gotFields[k], v)
		}
	}
	if len(gotPNG) != len(preview) || gotType != "image/png" {
		t.Fatalf("unexpected file part: %d bytes, type %q", len(gotPNG), gotType)
	}
}

func TestCreateMemeReportsStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).CreateMeme(context.Background(), Submission{PNG: []byte{1}, Style: DefaultStyle()})
	if !errors.Is(err, ErrRemoteRejected) {
		t.Fatalf("expected ErrRemoteRejected, got %v", err)
	}
	var remote *RemoteError
	if !errors.As(err, &remote) || remote.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %v", err)
	}
}

func TestCreateMemeReportsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).CreateMeme(context.Background(), Submission{PNG: []byte{1}, Style: DefaultStyle()})
	if !errors.Is(err, ErrTransportFailure) {
		t.Fatalf("expected ErrTransportFailure, got %v", err)
	}
	var transport *TransportError
	if !errors.As(err, &transport) || transport.Err == nil {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestCreateMemeRequiresPreview(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", 0).CreateMeme(context.Background(), Submission{})
	if !errors.Is(err, ErrExportFailure) {
		t.Fatalf("expected ErrExportFailure, got %v", err)
	}
}
