package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

//go:embed listdata
var listdata embed.FS

// FakeYASBServer stands in for the yasb-to-XWS converter service.
type FakeYASBServer struct {
	s *httptest.Server
}

func NewFakeYASBServer() *FakeYASBServer {
	r := chi.NewRouter()
	r.Get("/yasb/xws", yasbConvertHandler)

	return &FakeYASBServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeYASBServer) Close() {
	f.s.Close()
}

func (f *FakeYASBServer) URL() string {
	return f.s.URL
}

func yasbConvertHandler(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	switch {
	case strings.Contains(link, "f=Rebel"):
		serveListFile(w, "rebel_squad.json")
	case strings.Contains(link, "f=Galactic"):
		serveListFile(w, "imperial_squad.json")
	default:
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"could not parse squad link"}`))
	}
}

// FakeLBNServer stands in for the LaunchBayNext export API.
type FakeLBNServer struct {
	s *httptest.Server
}

func NewFakeLBNServer() *FakeLBNServer {
	r := chi.NewRouter()
	r.Get("/api/xws", lbnConvertHandler)

	return &FakeLBNServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeLBNServer) Close() {
	f.s.Close()
}

func (f *FakeLBNServer) URL() string {
	return f.s.URL
}

func lbnConvertHandler(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if strings.Contains(link, "lists=imperial") {
		serveListFile(w, "imperial_squad.json")
		return
	}
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"unknown list"}`))
}

func serveListFile(w http.ResponseWriter, name string) {
	b, err := listdata.ReadFile(fmt.Sprintf("listdata/%s", name))
	if err != nil {
		log.Printf("error reading listdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
