package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// FakeSheetsServer emulates the small slice of the Google Sheets API the
// workbook client uses: values get, values batchUpdate, values append,
// spreadsheet properties and spreadsheet batchUpdate.
type FakeSheetsServer struct {
	s *httptest.Server

	mu          sync.Mutex
	ranges      map[string][][]any
	cellWrites  map[string]any
	appends     [][]string
	sheetTitles map[string]int64
	formatCalls int
	fail429     int
}

func NewFakeSheetsServer() *FakeSheetsServer {
	f := &FakeSheetsServer{
		ranges:      make(map[string][][]any),
		cellWrites:  make(map[string]any),
		sheetTitles: make(map[string]int64),
	}
	f.s = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *FakeSheetsServer) Close() {
	f.s.Close()
}

func (f *FakeSheetsServer) URL() string {
	return f.s.URL
}

// SetRange seeds the values returned for an exact A1 range string.
func (f *FakeSheetsServer) SetRange(a1 string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		row := make([]any, 0, len(r))
		for _, v := range r {
			row = append(row, v)
		}
		values = append(values, row)
	}
	f.ranges[a1] = values
}

// SetSheet registers a sheet title with a grid id for property lookups.
func (f *FakeSheetsServer) SetSheet(title string, gid int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sheetTitles[title] = gid
}

// FailNextWithRateLimit makes the next n calls answer 429.
func (f *FakeSheetsServer) FailNextWithRateLimit(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail429 = n
}

// CellWrite returns the last value written to a cell via batchUpdate.
func (f *FakeSheetsServer) CellWrite(a1 string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.cellWrites[a1]
	return v, ok
}

// Appends returns every appended row.
func (f *FakeSheetsServer) Appends() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.appends
}

// FormatCalls counts spreadsheet batchUpdate (formatting) requests.
func (f *FakeSheetsServer) FormatCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.formatCalls
}

func (f *FakeSheetsServer) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	if f.fail429 > 0 {
		f.fail429--
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"rate limit exceeded","status":"RESOURCE_EXHAUSTED"}}`))
		return
	}
	f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/")
	switch {
	case strings.HasSuffix(path, "/values:batchUpdate"):
		f.handleValuesBatchUpdate(w, r)
	case strings.HasSuffix(path, ":append"):
		f.handleAppend(w, r)
	case strings.Contains(path, "/values/"):
		f.handleValuesGet(w, r, path)
	case strings.HasSuffix(path, ":batchUpdate"):
		f.handleSpreadsheetBatchUpdate(w)
	default:
		f.handleSpreadsheetGet(w)
	}
}

func (f *FakeSheetsServer) handleValuesGet(w http.ResponseWriter, _ *http.Request, path string) {
	a1 := path[strings.Index(path, "/values/")+len("/values/"):]

	f.mu.Lock()
	values := f.ranges[a1]
	f.mu.Unlock()

	writeJSON(w, map[string]any{
		"range":          a1,
		"majorDimension": "ROWS",
		"values":         values,
	})
}

func (f *FakeSheetsServer) handleValuesBatchUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Data []struct {
			Range  string  `json:"range"`
			Values [][]any `json:"values"`
		} `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	for _, d := range req.Data {
		if len(d.Values) > 0 && len(d.Values[0]) > 0 {
			f.cellWrites[d.Range] = d.Values[0][0]
		}
	}
	f.mu.Unlock()

	writeJSON(w, map[string]any{"totalUpdatedCells": len(req.Data)})
}

func (f *FakeSheetsServer) handleAppend(w http.ResponseWriter, r *http.Request) {
	var vr struct {
		Values [][]any `json:"values"`
	}
	if err := json.NewDecoder(r.Body).Decode(&vr); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	for _, row := range vr.Values {
		appended := make([]string, 0, len(row))
		for _, v := range row {
			appended = append(appended, fmt.Sprint(v))
		}
		f.appends = append(f.appends, appended)
	}
	f.mu.Unlock()

	writeJSON(w, map[string]any{})
}

func (f *FakeSheetsServer) handleSpreadsheetGet(w http.ResponseWriter) {
	f.mu.Lock()
	sheets := make([]map[string]any, 0, len(f.sheetTitles))
	for title, gid := range f.sheetTitles {
		sheets = append(sheets, map[string]any{
			"properties": map[string]any{"sheetId": gid, "title": title},
		})
	}
	f.mu.Unlock()

	writeJSON(w, map[string]any{"sheets": sheets})
}

func (f *FakeSheetsServer) handleSpreadsheetBatchUpdate(w http.ResponseWriter) {
	f.mu.Lock()
	f.formatCalls++
	f.mu.Unlock()

	writeJSON(w, map[string]any{})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}
