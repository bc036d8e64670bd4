package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clubhub/clubhub-api/internal/entity"
	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStudentService / mockAdminService and friends let each test override
// just the calls it exercises; unset calls return zero values.
type mockStudentService struct {
	createRSVPFn func(ctx context.Context, studentID int64, req *service.CreateRSVPRequest) (*entity.RSVP, error)
	cancelRSVPFn func(ctx context.Context, studentID, rsvpID int64) error
	respondFn    func(ctx context.Context, studentID, invitationID int64, status entity.InvitationStatus) error
}

func (m *mockStudentService) GetAllStudents(ctx context.Context) ([]*entity.Student, error) {
	return nil, nil
}

func (m *mockStudentService) GetUpcomingRSVPs(ctx context.Context, studentID int64) ([]*entity.StudentRSVP, error) {
	return nil, nil
}

func (m *mockStudentService) CreateRSVP(ctx context.Context, studentID int64, req *service.CreateRSVPRequest) (*entity.RSVP, error) {
	if m.createRSVPFn != nil {
		return m.createRSVPFn(ctx, studentID, req)
	}
	return &entity.RSVP{}, nil
}

func (m *mockStudentService) CancelRSVP(ctx context.Context, studentID, rsvpID int64) error {
	if m.cancelRSVPFn != nil {
		return m.cancelRSVPFn(ctx, studentID, rsvpID)
	}
	return nil
}

func (m *mockStudentService) GetReceivedInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error) {
	return nil, nil
}

func (m *mockStudentService) GetAllInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error) {
	return nil, nil
}

func (m *mockStudentService) RespondToInvitation(ctx context.Context, studentID, invitationID int64, status entity.InvitationStatus) error {
	if m.respondFn != nil {
		return m.respondFn(ctx, studentID, invitationID, status)
	}
	return nil
}

type mockClubService struct{}

func (mockClubService) GetAllClubs(ctx context.Context) ([]*entity.Club, error) {
	return nil, nil
}

func (mockClubService) GetClubEvents(ctx context.Context, clubID int64, upcomingOnly bool) ([]*entity.Event, error) {
	return nil, nil
}

type mockEventService struct {
	getEventFn func(ctx context.Context, id int64) (*entity.Event, error)
	searchFn   func(ctx context.Context, query string) ([]*entity.Event, error)
}

func (m *mockEventService) CreateEvent(ctx context.Context, req *service.CreateEventRequest) (*entity.Event, error) {
	return &entity.Event{}, nil
}

func (m *mockEventService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	if m.getEventFn != nil {
		return m.getEventFn(ctx, id)
	}
	return &entity.Event{ID: id}, nil
}

func (m *mockEventService) GetAllEvents(ctx context.Context) ([]*entity.Event, error) {
	return nil, nil
}

func (m *mockEventService) UpdateEvent(ctx context.Context, id int64, req *service.UpdateEventRequest) (*entity.Event, error) {
	return &entity.Event{ID: id}, nil
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id int64) error {
	return nil
}

func (m *mockEventService) GetConflicts(ctx context.Context, start, end time.Time, excludeClubID int64) ([]*entity.EventConflict, error) {
	return nil, nil
}

func (m *mockEventService) SearchEvents(ctx context.Context, query string) ([]*entity.Event, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, nil
}

type mockInvitationService struct {
	createFn func(ctx context.Context, req *service.CreateInvitationRequest) (*entity.Invitation, error)
}

func (m *mockInvitationService) CreateInvitation(ctx context.Context, req *service.CreateInvitationRequest) (*entity.Invitation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &entity.Invitation{}, nil
}

type mockAdminService struct {
	resolveAlertFn func(ctx context.Context, alertID int64) error
	metricsFn      func(ctx context.Context) (*entity.SystemMetrics, error)
}

func (m *mockAdminService) GetAuditLogs(ctx context.Context) ([]*entity.AuditLogEntry, error) {
	return nil, nil
}

func (m *mockAdminService) GetUnresolvedAlerts(ctx context.Context) ([]*entity.Alert, error) {
	return nil, nil
}

func (m *mockAdminService) ResolveAlert(ctx context.Context, alertID int64) error {
	if m.resolveAlertFn != nil {
		return m.resolveAlertFn(ctx, alertID)
	}
	return nil
}

func (m *mockAdminService) GetSystemMetrics(ctx context.Context) (*entity.SystemMetrics, error) {
	if m.metricsFn != nil {
		return m.metricsFn(ctx)
	}
	return &entity.SystemMetrics{}, nil
}

type mockAnalyticsService struct{}

func (mockAnalyticsService) GetCurrentPeriodMetrics(ctx context.Context) (*entity.PeriodMetrics, error) {
	return &entity.PeriodMetrics{}, nil
}

func (mockAnalyticsService) GetPreviousPeriodMetrics(ctx context.Context) (*entity.PeriodMetrics, error) {
	return &entity.PeriodMetrics{}, nil
}

func (mockAnalyticsService) GetEventsByMonth(ctx context.Context) ([]*entity.MonthlyEventCount, error) {
	return nil, nil
}

func (mockAnalyticsService) GetTopClubs(ctx context.Context) ([]*entity.ClubEngagement, error) {
	return nil, nil
}

func (mockAnalyticsService) GetEngagementRate(ctx context.Context) (*entity.EngagementRate, error) {
	return &entity.EngagementRate{}, nil
}

func (mockAnalyticsService) GetSearchQueryAnalysis(ctx context.Context) ([]*entity.SearchQueryStats, error) {
	return nil, nil
}

func (mockAnalyticsService) GetSearchSummary(ctx context.Context) (*entity.SearchSummary, error) {
	return &entity.SearchSummary{}, nil
}

func (mockAnalyticsService) GetDemographics(ctx context.Context) ([]*entity.DemographicEngagement, error) {
	return nil, nil
}

func (mockAnalyticsService) GetReports(ctx context.Context) ([]*entity.EngagementReport, error) {
	return nil, nil
}

func (mockAnalyticsService) GenerateWeeklyReport(ctx context.Context) error {
	return nil
}

func (mockAnalyticsService) CleanupSearchLogs(ctx context.Context, retention time.Duration) (int64, error) {
	return 0, nil
}

type routerMocks struct {
	student    *mockStudentService
	event      *mockEventService
	invitation *mockInvitationService
	admin      *mockAdminService
}

func newTestRouter() (*gin.Engine, *routerMocks) {
	gin.SetMode(gin.TestMode)

	mocks := &routerMocks{
		student:    &mockStudentService{},
		event:      &mockEventService{},
		invitation: &mockInvitationService{},
		admin:      &mockAdminService{},
	}

	router := InitRoutes(
		NewStudentHandler(mocks.student),
		NewClubHandler(mockClubService{}),
		NewEventHandler(mocks.event),
		NewInvitationHandler(mocks.invitation),
		NewAdminHandler(mocks.admin),
		NewAnalyticsHandler(mockAnalyticsService{}),
	)

	return router, mocks
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResolveAlertStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "unresolved alert resolves", serviceErr: nil, wantStatus: http.StatusOK},
		{name: "repeat resolve is not found", serviceErr: entity.ErrAlertNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter()
			mocks.admin.resolveAlertFn = func(ctx context.Context, alertID int64) error {
				return tt.serviceErr
			}

			w := doRequest(t, router, http.MethodPut, "/admin/alerts/4", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestResolveAlertRejectsBadID(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(t, router, http.MethodPut, "/admin/alerts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsReportsNullErrorRate(t *testing.T) {
	router, mocks := newTestRouter()
	mocks.admin.metricsFn = func(ctx context.Context) (*entity.SystemMetrics, error) {
		return &entity.SystemMetrics{TotalServers: 2, ServersOnline: 2}, nil
	}

	w := doRequest(t, router, http.MethodGet, "/admin/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	rate, ok := body["error_rate_last_hour"]
	require.True(t, ok, "error_rate_last_hour must be present")
	assert.Nil(t, rate)
}

func TestDocumentationRoutesAreNotImplemented(t *testing.T) {
	router, _ := newTestRouter()

	for _, req := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/documentation"},
		{http.MethodPost, "/admin/documentation"},
		{http.MethodPut, "/admin/documentation/3"},
	} {
		w := doRequest(t, router, req.method, req.path, nil)
		assert.Equal(t, http.StatusNotImplemented, w.Code, "%s %s", req.method, req.path)
	}
}

func TestCreateRSVPStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "new rsvp is created", serviceErr: nil, wantStatus: http.StatusCreated},
		{name: "duplicate rsvp conflicts", serviceErr: entity.ErrRSVPAlreadyExists, wantStatus: http.StatusConflict},
		{name: "unknown event is not found", serviceErr: entity.ErrEventNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter()
			mocks.student.createRSVPFn = func(ctx context.Context, studentID int64, req *service.CreateRSVPRequest) (*entity.RSVP, error) {
				if tt.serviceErr != nil {
					return nil, tt.serviceErr
				}
				return &entity.RSVP{ID: 1, StudentID: studentID, EventID: req.EventID}, nil
			}

			w := doRequest(t, router, http.MethodPost, "/students/1/rsvps", map[string]interface{}{"event_id": 2})
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateRSVPRejectsMissingEventID(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/students/1/rsvps", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelRSVPNotFound(t *testing.T) {
	router, mocks := newTestRouter()
	mocks.student.cancelRSVPFn = func(ctx context.Context, studentID, rsvpID int64) error {
		return entity.ErrRSVPNotFound
	}

	w := doRequest(t, router, http.MethodDelete, "/students/1/rsvps/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateInvitationStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		serviceErr error
		wantStatus int
	}{
		{
			name:       "accepted succeeds",
			body:       map[string]interface{}{"status": "accepted"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid status is bad request",
			body:       map[string]interface{}{"status": "pending"},
			serviceErr: entity.ErrInvalidInvitationStatus,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "foreign invitation is not found",
			body:       map[string]interface{}{"status": "declined"},
			serviceErr: entity.ErrInvitationNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing status is bad request",
			body:       map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter()
			mocks.student.respondFn = func(ctx context.Context, studentID, invitationID int64, status entity.InvitationStatus) error {
				return tt.serviceErr
			}

			w := doRequest(t, router, http.MethodPut, "/students/1/invitations/5", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateInvitationSelfInviteIsBadRequest(t *testing.T) {
	router, mocks := newTestRouter()
	mocks.invitation.createFn = func(ctx context.Context, req *service.CreateInvitationRequest) (*entity.Invitation, error) {
		return nil, entity.ErrInvalidInput
	}

	w := doRequest(t, router, http.MethodPost, "/invitations", map[string]interface{}{
		"event_id":             1,
		"sender_student_id":    7,
		"recipient_student_id": 7,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEventNotFound(t *testing.T) {
	router, mocks := newTestRouter()
	mocks.event.getEventFn = func(ctx context.Context, id int64) (*entity.Event, error) {
		return nil, entity.ErrEventNotFound
	}

	w := doRequest(t, router, http.MethodGet, "/events/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRequiresQuery(t *testing.T) {
	router, mocks := newTestRouter()

	searched := false
	mocks.event.searchFn = func(ctx context.Context, query string) ([]*entity.Event, error) {
		searched = true
		return nil, nil
	}

	w := doRequest(t, router, http.MethodGet, "/events/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, searched)

	w = doRequest(t, router, http.MethodGet, "/events/search?q=chess", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, searched)
}

func TestConflictsValidatesWindow(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/events/conflicts?start_datetime=bogus&end_datetime=2026-03-01T10:00:00Z", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodGet,
		"/events/conflicts?start_datetime=2026-03-01T10:00:00Z&end_datetime=2026-03-01T12:00:00Z&exclude_club_id=3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
