package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/shubhsinghsk/AYLB/internal/domain"
	"github.com/shubhsinghsk/AYLB/internal/service"
)

// stubIntake returns canned outcomes and records what it was called with.
type stubIntake struct {
	quoteOutcome   service.Outcome
	contactOutcome service.Outcome
	contactErr     error

	quoteSub   *domain.Submission
	contactSub *domain.Submission
}

func (s *stubIntake) Quote(ctx context.Context, sub domain.Submission) service.Outcome {
	s.quoteSub = &sub
	return s.quoteOutcome
}

func (s *stubIntake) Contact(ctx context.Context, sub domain.Submission) (service.Outcome, error) {
	s.contactSub = &sub
	return s.contactOutcome, s.contactErr
}

func newIntakeFixture(intake *stubIntake) (*http.ServeMux, *FlashCodec) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	codec := NewFlashCodec("test-secret", false)
	h := NewIntakeHandler(intake, codec, logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux, codec
}

func postForm(mux *http.ServeMux, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func flashFrom(t *testing.T, codec *FlashCodec, rec *httptest.ResponseRecorder) *Flash {
	t.Helper()

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 && c.Value != "" {
			req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	flash := codec.Pop(httptest.NewRecorder(), req)
	if flash == nil {
		t.Fatal("expected a flash cookie on the response")
	}
	return flash
}

func TestQuoteHandler_RedirectsHomeWithOutcome(t *testing.T) {
	intake := &stubIntake{
		quoteOutcome: service.Outcome{Status: service.StatusAccepted, Message: "Thank you! Your quote request has been received."},
	}
	mux, codec := newIntakeFixture(intake)

	form := url.Values{}
	form.Set("name", "  Asha ")
	form.Set("email", "a@x.com")

	rec := postForm(mux, "/quote", form)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("location = %q, want /", loc)
	}

	if intake.quoteSub == nil {
		t.Fatal("quote service not called")
	}
	if intake.quoteSub.Name != "Asha" {
		t.Errorf("name = %q, want trimmed value", intake.quoteSub.Name)
	}

	flash := flashFrom(t, codec, rec)
	if flash.Type != FlashSuccess {
		t.Errorf("flash type = %q", flash.Type)
	}
	if !strings.Contains(flash.Message, "quote request has been received") {
		t.Errorf("flash message = %q", flash.Message)
	}
}

func TestQuoteHandler_RejectionFlashesDanger(t *testing.T) {
	intake := &stubIntake{
		quoteOutcome: service.Outcome{Status: service.StatusRejected, Message: "Please provide Name and Email."},
	}
	mux, codec := newIntakeFixture(intake)

	rec := postForm(mux, "/quote", url.Values{})

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}

	flash := flashFrom(t, codec, rec)
	if flash.Type != FlashDanger {
		t.Errorf("flash type = %q, want danger", flash.Type)
	}
	if flash.Message != "Please provide Name and Email." {
		t.Errorf("flash message = %q", flash.Message)
	}
}

func TestContactHandler_NotifiedFlashesSuccess(t *testing.T) {
	intake := &stubIntake{
		contactOutcome: service.Outcome{Status: service.StatusNotified, Message: "Thank you! Your enquiry has been received."},
	}
	mux, codec := newIntakeFixture(intake)

	form := url.Values{}
	form.Set("name", "Asha")
	form.Set("email", "a@x.com")
	form.Set("phone", "9999999999")

	rec := postForm(mux, "/contact", form)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/contact" {
		t.Errorf("location = %q, want /contact", loc)
	}

	flash := flashFrom(t, codec, rec)
	if flash.Type != FlashSuccess {
		t.Errorf("flash type = %q", flash.Type)
	}
}

func TestContactHandler_NotifyFailedFlashesWarningWithDetail(t *testing.T) {
	intake := &stubIntake{
		contactOutcome: service.Outcome{
			Status:  service.StatusNotifyFailed,
			Message: "Message saved, but failed to send email. Check SMTP settings. Error: not configured",
		},
	}
	mux, codec := newIntakeFixture(intake)

	form := url.Values{}
	form.Set("name", "Asha")
	form.Set("email", "a@x.com")
	form.Set("phone", "9999999999")

	rec := postForm(mux, "/contact", form)

	flash := flashFrom(t, codec, rec)
	if flash.Type != FlashWarning {
		t.Errorf("flash type = %q, want warning", flash.Type)
	}
	if !strings.Contains(flash.Message, "not configured") {
		t.Errorf("flash message must carry the notifier detail, got %q", flash.Message)
	}
}

func TestContactHandler_PersistFailureFlashesDanger(t *testing.T) {
	intake := &stubIntake{
		contactErr: domain.Internal(errors.New("disk full"), "leads.append", "Failed to record enquiry"),
	}
	mux, codec := newIntakeFixture(intake)

	form := url.Values{}
	form.Set("name", "Asha")
	form.Set("email", "a@x.com")
	form.Set("phone", "9999999999")

	rec := postForm(mux, "/contact", form)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}

	flash := flashFrom(t, codec, rec)
	if flash.Type != FlashDanger {
		t.Errorf("flash type = %q, want danger", flash.Type)
	}
	// Internal detail stays private; the submitter gets the generic message.
	if strings.Contains(flash.Message, "disk full") {
		t.Errorf("flash leaks internal error: %q", flash.Message)
	}
	if !strings.Contains(flash.Message, "internal error") {
		t.Errorf("flash message = %q", flash.Message)
	}
}

func TestIntakeHandlers_MalformedBodyReturns400(t *testing.T) {
	intake := &stubIntake{}
	mux, _ := newIntakeFixture(intake)

	for _, path := range []string{"/quote", "/contact"} {
		// Broken percent-encoding makes ParseForm fail.
		req := httptest.NewRequest("POST", path, strings.NewReader("name=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Malformed form submission.") {
			t.Errorf("%s: body = %q", path, rec.Body.String())
		}
	}

	if intake.quoteSub != nil || intake.contactSub != nil {
		t.Error("intake service must not be called for malformed bodies")
	}
}
