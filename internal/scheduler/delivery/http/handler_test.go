package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
	schedulerHTTP "task-scheduler/internal/scheduler/delivery/http"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/log"
)

var day = time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC)

type mockUseCase struct {
	runIn    scheduler.RunInput
	runErr   error
	last     *scheduler.RunOutput
	filter   scheduler.BookingsInput
	meetings []model.BusyInterval
}

func (m *mockUseCase) Run(ctx context.Context, in scheduler.RunInput) (scheduler.RunOutput, error) {
	m.runIn = in
	if m.runErr != nil {
		return scheduler.RunOutput{}, m.runErr
	}
	b := model.NewBooking(model.Task{ID: "t1", Name: "Report", Priority: model.PriorityHigh}, day.Add(8*time.Hour), 3600, 0)
	return scheduler.RunOutput{
		RunID: "run-1",
		Days: []scheduler.DayReport{{
			Date:    day,
			Created: []model.Booking{b},
			Unscheduled: []model.UnscheduledRecord{
				{Task: model.Task{ID: "t2", Name: "Backlog"}, RemainingSeconds: 1800},
			},
		}},
		TotalBookings: 1,
	}, nil
}

func (m *mockUseCase) LastRun(ctx context.Context) (scheduler.RunOutput, error) {
	if m.last == nil {
		return scheduler.RunOutput{}, scheduler.ErrNoRunYet
	}
	return *m.last, nil
}

func (m *mockUseCase) Bookings(ctx context.Context, in scheduler.BookingsInput) ([]model.Booking, error) {
	m.filter = in
	if in.Status == "done" {
		return nil, scheduler.ErrInvalidBookingFilter
	}
	return nil, nil
}

func (m *mockUseCase) AddMeetings(ctx context.Context, meetings []model.BusyInterval) (int, error) {
	for _, mt := range meetings {
		if !mt.End.After(mt.Start) {
			return 0, scheduler.ErrInvalidMeeting
		}
	}
	m.meetings = meetings
	return len(meetings), nil
}

func newRouter(t *testing.T, uc scheduler.UseCase, requestsPerMin int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	r := gin.New()
	h := schedulerHTTP.New(log.NewNop(), uc, parser)
	schedulerHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), requestsPerMin))
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRun(t *testing.T) {
	t.Run("Empty body uses defaults", func(t *testing.T) {
		uc := &mockUseCase{}
		w, resp := do(newRouter(t, uc, 0), http.MethodPost, "/api/v1/schedule/run", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.runIn.Days != 0 {
			t.Errorf("unexpected input: %+v", uc.runIn)
		}
		data := resp["data"].(map[string]any)
		days := data["days"].([]any)
		first := days[0].(map[string]any)
		if first["date"] != "2025-09-29" {
			t.Errorf("unexpected date: %v", first["date"])
		}
		created := first["created"].([]any)[0].(map[string]any)
		if created["minutes"] != float64(60) || created["title"] != "[Task] Report" {
			t.Errorf("unexpected booking: %v", created)
		}
		if first["unscheduled"].([]any)[0].(map[string]any)["remaining_minutes"] != float64(30) {
			t.Errorf("unexpected unscheduled: %v", first["unscheduled"])
		}
	})

	t.Run("Horizon override", func(t *testing.T) {
		uc := &mockUseCase{}
		if w, _ := do(newRouter(t, uc, 0), http.MethodPost, "/api/v1/schedule/run", `{"days":3}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.runIn.Days != 3 {
			t.Errorf("expected 3 days, got %d", uc.runIn.Days)
		}
	})

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Run in progress", scheduler.ErrRunInProgress, http.StatusConflict},
		{"Invalid config", scheduler.ErrInvalidHorizon, http.StatusBadRequest},
		{"Calendar down", scheduler.ErrSourceFetch, http.StatusBadGateway},
		{"Commit failure", scheduler.ErrCommit, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{runErr: tt.err}
			if w, _ := do(newRouter(t, uc, 0), http.MethodPost, "/api/v1/schedule/run", ""); w.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, w.Code)
			}
		})
	}

	t.Run("Rate limited", func(t *testing.T) {
		r := newRouter(t, &mockUseCase{}, 10)
		do(r, http.MethodPost, "/api/v1/schedule/run", "")
		if w, _ := do(r, http.MethodPost, "/api/v1/schedule/run", ""); w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})
}

func TestLatest(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(t, uc, 0)
	if w, _ := do(r, http.MethodGet, "/api/v1/schedule/latest", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any run, got %d", w.Code)
	}
	uc.last = &scheduler.RunOutput{RunID: "run-9"}
	w, resp := do(r, http.MethodGet, "/api/v1/schedule/latest", "")
	if w.Code != http.StatusOK || resp["data"].(map[string]any)["run_id"] != "run-9" {
		t.Errorf("unexpected response %d: %v", w.Code, resp)
	}
}

func TestBookings(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(t, uc, 0)

	w, _ := do(r, http.MethodGet, "/api/v1/schedule/bookings?from=2025-09-29&to=2025-09-30&status=planned", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !uc.filter.From.Equal(day) || !uc.filter.To.Equal(day.AddDate(0, 0, 1)) || uc.filter.Status != model.BookingPlanned {
		t.Errorf("unexpected filter: %+v", uc.filter)
	}

	if w, _ := do(r, http.MethodGet, "/api/v1/schedule/bookings?from=whenever", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", w.Code)
	}
	if w, _ := do(r, http.MethodGet, "/api/v1/schedule/bookings?status=done", ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad status, got %d", w.Code)
	}
}

func TestAddMeetings(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(t, uc, 0)

	body := `{"meetings":[{"start":"2025-09-29T10:00:00Z","end":"2025-09-29T11:00:00Z","summary":"Standup"}]}`
	w, resp := do(r, http.MethodPost, "/api/v1/meetings", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp["data"].(map[string]any)["stored"] != float64(1) || uc.meetings[0].Summary != "Standup" {
		t.Errorf("unexpected response: %v", resp)
	}

	inverted := `{"meetings":[{"start":"2025-09-29T11:00:00Z","end":"2025-09-29T10:00:00Z"}]}`
	if w, _ := do(r, http.MethodPost, "/api/v1/meetings", inverted); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if w, _ := do(r, http.MethodPost, "/api/v1/meetings", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing meetings, got %d", w.Code)
	}
}
