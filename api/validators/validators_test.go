package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
)

type samplePayload struct {
	Title string  `json:"title" validate:"required,notblank,max=10"`
	Note  *string `json:"note" validate:"omitempty,max=3"`
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Mat","note":"ok"}`))
	var payload samplePayload
	if err := DecodeJSONBody(httptest.NewRecorder(), req, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Title != "Mat" || payload.Note == nil || *payload.Note != "ok" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestDecodeJSONBodyRejections(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"malformed":     {body: `{"title":`},
		"empty":         {body: ``},
		"two objects":   {body: `{"title":"Mat"}{"title":"Lamp"}`},
		"unknown field": {body: `{"title":"Mat","color":"red"}`, field: "color"},
		"wrong type":    {body: `{"title":5}`, field: "title"},
		"blank title":   {body: `{"title":"   "}`, field: "title"},
		"missing title": {body: `{}`, field: "title"},
		"long note":     {body: `{"title":"Mat","note":"toolong"}`, field: "note"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var payload samplePayload
			err := DecodeJSONBody(httptest.NewRecorder(), req, &payload)
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if tc.field == "" {
				return
			}
			details, ok := appErr.Details().(map[string]string)
			if !ok {
				t.Fatalf("expected field details, got %#v", appErr.Details())
			}
			if _, ok := details[tc.field]; !ok {
				t.Fatalf("expected %s in details %v", tc.field, details)
			}
		})
	}
}

func TestParsePathID(t *testing.T) {
	for raw, wantOK := range map[string]bool{"7": true, "0": false, "-3": false, "abc": false} {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", raw)
		req := httptest.NewRequest(http.MethodPatch, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		id, err := ParsePathID(req, "id")
		if wantOK {
			if err != nil || id != 7 {
				t.Fatalf("%q: expected 7, got %d (%v)", raw, id, err)
			}
			continue
		}
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			t.Fatalf("%q: expected not found, got %v", raw, err)
		}
	}
}

func TestQueryStringTrimsAndCaps(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?search=%20%20macbook%20air%20", nil)
	if got := QueryString(req, "search", 7); got != "macbook" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := QueryString(req, "missing", 10); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestDecodeJSONBodyRejectsOversizedBody(t *testing.T) {
	big := `{"title":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	var payload samplePayload
	err := DecodeJSONBody(httptest.NewRecorder(), req, &payload)
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSanitizeStringIsRuneSafe(t *testing.T) {
	if got := SanitizeString("  café crème ", 4); got != "café" {
		t.Fatalf("unexpected value %q", got)
	}
	if got := SanitizeString(" keep ", 0); got != "keep" {
		t.Fatalf("unexpected value %q", got)
	}
}
