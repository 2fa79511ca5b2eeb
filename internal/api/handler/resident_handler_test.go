package handler

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

type stubResidentService struct {
	listFn   func(ctx context.Context, input ports.ListResidentsInput) (*ports.ListResidentsResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Resident, error)
	createFn func(ctx context.Context, input ports.CreateResidentInput, actor string) (*domain.Resident, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateResidentInput, actor string) (*domain.Resident, error)
	deleteFn func(ctx context.Context, id string, actor string) error
	exportFn func(ctx context.Context, query string, w io.Writer) error
}

func (s *stubResidentService) List(ctx context.Context, input ports.ListResidentsInput) (*ports.ListResidentsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubResidentService) Get(ctx context.Context, id string) (*domain.Resident, error) {
	return s.getFn(ctx, id)
}

func (s *stubResidentService) Create(ctx context.Context, input ports.CreateResidentInput, actor string) (*domain.Resident, error) {
	return s.createFn(ctx, input, actor)
}

func (s *stubResidentService) Update(ctx context.Context, id string, input ports.UpdateResidentInput, actor string) (*domain.Resident, error) {
	return s.updateFn(ctx, id, input, actor)
}

func (s *stubResidentService) Delete(ctx context.Context, id string, actor string) error {
	return s.deleteFn(ctx, id, actor)
}

func (s *stubResidentService) ExportCSV(ctx context.Context, query string, w io.Writer) error {
	return s.exportFn(ctx, query, w)
}

func newValidatedEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestResidentHandler_List_ParsesQueryParams(t *testing.T) {
	e := newValidatedEcho()
	stub := &stubResidentService{
		listFn: func(_ context.Context, input ports.ListResidentsInput) (*ports.ListResidentsResult, error) {
			if input.Query != "cruz" || input.Page != 2 || input.PageSize != 10 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListResidentsResult{
				Rows:  []*domain.Resident{{ID: "r1", FirstName: "Juan", LastName: "Cruz"}},
				Count: 11,
			}, nil
		},
	}
	handler := NewResidentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/residents?q=cruz&page=2&pageSize=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(11) {
		t.Fatalf("expected count 11, got %v", resp["count"])
	}
	rows, ok := resp["rows"].([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("expected 1 row, got %v", resp["rows"])
	}
}

func TestResidentHandler_List_NonNumericPageDefaults(t *testing.T) {
	e := newValidatedEcho()
	stub := &stubResidentService{
		listFn: func(_ context.Context, input ports.ListResidentsInput) (*ports.ListResidentsResult, error) {
			// strconv failures surface as zero; the service normalises.
			if input.Page != 0 || input.PageSize != 0 {
				t.Fatalf("expected zero page params, got %+v", input)
			}
			return &ports.ListResidentsResult{Rows: nil, Count: 0}, nil
		},
	}
	handler := NewResidentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/residents?page=abc&pageSize=xyz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestResidentHandler_Create_Success(t *testing.T) {
	e := newValidatedEcho()
	stub := &stubResidentService{
		createFn: func(_ context.Context, input ports.CreateResidentInput, actor string) (*domain.Resident, error) {
			if input.FirstName != "Juan" || input.Gender != domain.GenderMale {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Resident{ID: "r1", FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}
	handler := NewResidentHandler(stub)

	body := strings.NewReader(`{"first_name":"Juan","last_name":"Cruz","gender":"Male"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/residents", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestResidentHandler_Create_BadGender(t *testing.T) {
	e := newValidatedEcho()
	stub := &stubResidentService{
		createFn: func(_ context.Context, _ ports.CreateResidentInput, _ string) (*domain.Resident, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewResidentHandler(stub)

	body := strings.NewReader(`{"first_name":"Juan","last_name":"Cruz","gender":"Unknown"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/residents", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestResidentHandler_Get_NotFound(t *testing.T) {
	e := newValidatedEcho()
	stub := &stubResidentService{
		getFn: func(_ context.Context, _ string) (*domain.Resident, error) {
			return nil, domain.ErrResidentNotFound
		},
	}
	handler := NewResidentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/residents/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrResidentNotFound) {
		t.Fatalf("expected ErrResidentNotFound to propagate, got %v", err)
	}
}

func TestResidentHandler_Export(t *testing.T) {
	e := newValidatedEcho()
	stub := &stubResidentService{
		exportFn: func(_ context.Context, query string, w io.Writer) error {
			if query != "cruz" {
				t.Fatalf("unexpected query: %q", query)
			}
			cw := csv.NewWriter(w)
			_ = cw.Write([]string{"id", "first_name"})
			_ = cw.Write([]string{"r1", "Juan"})
			cw.Flush()
			return cw.Error()
		},
	}
	handler := NewResidentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/residents/export?q=cruz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, `filename="residents.csv"`) {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "Juan") {
		t.Fatalf("expected CSV body, got %q", rec.Body.String())
	}
}

func TestResidentHandler_Delete(t *testing.T) {
	e := newValidatedEcho()
	deleted := ""
	stub := &stubResidentService{
		deleteFn: func(_ context.Context, id string, _ string) error {
			deleted = id
			return nil
		},
	}
	handler := NewResidentHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/residents/r1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("r1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "r1" {
		t.Fatalf("expected delete of r1, got %q", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
