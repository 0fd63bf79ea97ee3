package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"stockroom-backend/internal/domain/batch"
	"stockroom-backend/internal/domain/holder"
	"stockroom-backend/internal/domain/ledger"
	"stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/withdrawal"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := respondDomainErr(c, err); err != nil {
		t.Fatalf("respondDomainErr: %v", err)
	}
	return rec
}

func TestRespondDomainErr_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"holder not found", holder.ErrNotFound, http.StatusNotFound},
		{"material not found", material.ErrNotFound, http.StatusNotFound},
		{"batch not found", batch.ErrNotFound, http.StatusNotFound},
		{"withdrawal not found", withdrawal.ErrNotFound, http.StatusNotFound},
		{"invalid input", ledger.ErrInvalidInput, http.StatusBadRequest},
		{"already checked out", withdrawal.ErrAlreadyCheckedOut, http.StatusConflict},
		{"already returned", withdrawal.ErrAlreadyReturned, http.StatusConflict},
		{"short code taken", holder.ErrShortCodeTaken, http.StatusConflict},
		{"conflict", ledger.ErrConflict, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := respond(t, tc.err); rec.Code != tc.want {
				t.Fatalf("want %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestRespondDomainErr_WrappedErrorStillMaps(t *testing.T) {
	wrapped := errors.Join(errors.New("checkout equipment"), withdrawal.ErrAlreadyCheckedOut)
	if rec := respond(t, wrapped); rec.Code != http.StatusConflict {
		t.Fatalf("want 409 for wrapped error, got %d", rec.Code)
	}
}

func TestRespondDomainErr_InsufficientStockPayload(t *testing.T) {
	rec := respond(t, &batch.InsufficientStockError{Available: 2, Requested: 5})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", rec.Code)
	}

	var body struct {
		Error     string `json:"error"`
		Available int64  `json:"available"`
		Requested int64  `json:"requested"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Available != 2 || body.Requested != 5 {
		t.Fatalf("shortfall payload wrong: %+v", body)
	}
	if body.Error == "" {
		t.Fatalf("error message missing")
	}
}

func TestParamID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("holder_id")
	c.SetParamValues("42")

	id, err := paramID(c, "holder_id")
	if err != nil || id != 42 {
		t.Fatalf("paramID: %d, %v", id, err)
	}

	c.SetParamValues("not-a-number")
	if _, err := paramID(c, "holder_id"); err == nil {
		t.Fatal("want parse error")
	}
}
