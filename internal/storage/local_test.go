package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(content)
	w.Close()

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndResolve(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 10)
	if err != nil {
		t.Fatal(err)
	}

	rel, err := store.Save("student-1", "exam-1", uploadHeader(t, "page1.jpg", []byte("fake image bytes")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.ToSlash(filepath.Dir(rel)) != "student-1/exam-1" {
		t.Errorf("rel = %q, want under student-1/exam-1", rel)
	}

	abs, err := store.Resolve(rel)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("saved content = %q", data)
	}
}

func TestSaveRejectsNonImage(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 10)
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Save("s", "e", uploadHeader(t, "essay.pdf", []byte("%PDF")))
	if !errors.Is(err, ErrNotAnImage) {
		t.Errorf("err = %v, want ErrNotAnImage", err)
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), 10)
	if err != nil {
		t.Fatal(err)
	}

	// Dotted segments must be rejected even when they stay inside the root:
	// a path that starts under one student's directory and climbs into
	// another's would otherwise pass ownership checks done on the raw string.
	paths := []string{
		"../../etc/passwd",
		"student-1/../student-2/exam-1/sheet.jpg",
		"student-1/..",
		"/etc/passwd",
		"",
	}
	for _, p := range paths {
		if _, err := store.Resolve(p); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Resolve(%q) err = %v, want ErrInvalidPath", p, err)
		}
	}
}
