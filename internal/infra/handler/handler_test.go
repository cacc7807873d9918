package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
	"github.com/KasumiMercury/primind-location-remind/internal/domain"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/device"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-location-remind/internal/location"
)

type stubReminderUseCase struct {
	saveErr   error
	saved     []app.SaveReminderInput
	listOut   app.RemindersOutput
	getErr    error
	deleteErr error
}

func (s *stubReminderUseCase) SaveReminder(_ context.Context, input app.SaveReminderInput) (app.ReminderOutput, error) {
	s.saved = append(s.saved, input)
	if s.saveErr != nil {
		return app.ReminderOutput{}, s.saveErr
	}

	return app.ReminderOutput{
		ID:            input.ID,
		Title:         input.Title,
		LocationLabel: input.LocationLabel,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
	}, nil
}

func (s *stubReminderUseCase) LoadReminders(context.Context) (app.RemindersOutput, error) {
	return s.listOut, nil
}

func (s *stubReminderUseCase) GetReminder(_ context.Context, input app.GetReminderInput) (app.ReminderOutput, error) {
	if s.getErr != nil {
		return app.ReminderOutput{}, s.getErr
	}

	return app.ReminderOutput{ID: input.ID, Title: "Gym"}, nil
}

func (s *stubReminderUseCase) DeleteReminder(context.Context, app.DeleteReminderInput) error {
	return s.deleteErr
}

func (s *stubReminderUseCase) DeleteAllReminders(context.Context) error {
	return s.deleteErr
}

type stubLocationUseCase struct {
	output app.LocationOutput
	err    error
}

func (s stubLocationUseCase) CurrentLocation(context.Context) (app.LocationOutput, error) {
	return s.output, s.err
}

type stubEventUseCase struct {
	output app.TransitionOutput
	err    error
	input  app.TransitionEventInput
}

func (s *stubEventUseCase) HandleTransition(_ context.Context, input app.TransitionEventInput) (app.TransitionOutput, error) {
	s.input = input

	return s.output, s.err
}

func newRouter(register ...func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api/v1")

	for _, r := range register {
		r(api)
	}

	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestSaveReminderErrorMapping(t *testing.T) {
	permissionErr := &domain.ResultError{
		Code:    domain.CodePermissionDenied,
		Message: "location permissions not granted: background_location",
	}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
		expectedMsg    string
		expectedField  string
	}{
		{
			name:           "empty title",
			err:            app.NewValidationError("title", "Please enter title"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation_error",
			expectedMsg:    "Please enter title",
			expectedField:  "title",
		},
		{
			name:           "missing permission",
			err:            fmt.Errorf("%w: %w", app.ErrPermissionDenied, permissionErr),
			expectedStatus: http.StatusForbidden,
			expectedError:  "permission_denied",
			expectedMsg:    "location permissions not granted: background_location",
		},
		{
			name:           "settings unresolved",
			err:            fmt.Errorf("%w: x", app.ErrSettingsUnresolved),
			expectedStatus: http.StatusConflict,
			expectedError:  "settings_resolution_required",
			expectedMsg:    domain.ErrSettingsResolutionRequired.Error(),
		},
		{
			name:           "provider rejected",
			err:            fmt.Errorf("%w: x", app.ErrRegistrationFailed),
			expectedStatus: http.StatusBadGateway,
			expectedError:  "registration_failed",
			expectedMsg:    "failed to add geofence",
		},
		{
			name:           "registration in flight",
			err:            fmt.Errorf("%w: x", app.ErrConflict),
			expectedStatus: http.StatusConflict,
			expectedError:  "conflict",
		},
		{
			name:           "store failure",
			err:            fmt.Errorf("%w: db down", app.ErrInternalError),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal_error",
			expectedMsg:    "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubReminderUseCase{saveErr: tt.err}
			router := newRouter(handler.NewReminderHandler(uc).RegisterRoutes)

			rec := doJSON(t, router, http.MethodPost, "/api/v1/reminders", map[string]any{
				"id":             "r1",
				"title":          "Gym",
				"location_label": "Gym",
				"latitude":       47.6,
				"longitude":      -122.3,
			})

			assert.Equal(t, tt.expectedStatus, rec.Code)

			resp := decodeError(t, rec)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedField, resp.Field)

			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestSaveReminderHandler(t *testing.T) {
	uc := &stubReminderUseCase{}
	router := newRouter(handler.NewReminderHandler(uc).RegisterRoutes)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reminders", map[string]any{
		"id":             "r1",
		"title":          "Gym",
		"description":    "leg day",
		"location_label": "Gym",
		"latitude":       47.6,
		"longitude":      -122.3,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, uc.saved, 1)
	assert.Equal(t, "leg day", uc.saved[0].Description)
	require.NotNil(t, uc.saved[0].Latitude)
	assert.InDelta(t, 47.6, *uc.saved[0].Latitude, 1e-9)

	var resp handler.ReminderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, "Gym", resp.Title)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")

	bad := httptest.NewRecorder()
	router.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, "validation_error", decodeError(t, bad).Error)
}

func TestLoadAndGetReminderHandler(t *testing.T) {
	uc := &stubReminderUseCase{listOut: app.RemindersOutput{Reminders: []app.ReminderOutput{}, NoData: true}}
	router := newRouter(handler.NewReminderHandler(uc).RegisterRoutes)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reminders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list handler.RemindersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.True(t, list.NoData)
	assert.Empty(t, list.Reminders)
	assert.Equal(t, int32(0), list.Count)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/reminders/r1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	uc.getErr = fmt.Errorf("%w: %w", app.ErrNotFound, domain.ErrReminderNotFound)
	rec = doJSON(t, router, http.MethodGet, "/api/v1/reminders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Reminder not found!", decodeError(t, rec).Message)
}

func TestDeleteReminderHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		err            error
		expectedStatus int
	}{
		{name: "single", path: "/api/v1/reminders/r1", expectedStatus: http.StatusNoContent},
		{name: "all", path: "/api/v1/reminders", expectedStatus: http.StatusNoContent},
		{
			name:           "registration in flight",
			path:           "/api/v1/reminders/r1",
			err:            fmt.Errorf("%w: x", app.ErrConflict),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "store failure",
			path:           "/api/v1/reminders",
			err:            fmt.Errorf("%w: x", app.ErrInternalError),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubReminderUseCase{deleteErr: tt.err}
			router := newRouter(handler.NewReminderHandler(uc).RegisterRoutes)

			rec := doJSON(t, router, http.MethodDelete, tt.path, nil)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestGeofenceEventHandler(t *testing.T) {
	uc := &stubEventUseCase{output: app.TransitionOutput{Triggered: []app.TriggerOutput{{ReminderID: "r1", Title: "Gym"}}}}
	router := newRouter(handler.NewGeofenceHandler(uc).RegisterRoutes)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/geofence/events", map[string]any{
		"request_ids": []string{"r1"},
		"transition":  "enter",
		"position":    map[string]any{"latitude": 47.6, "longitude": -122.3, "accuracy_meters": 10},
	})

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"r1"}, uc.input.RequestIDs)
	require.NotNil(t, uc.input.Position)
	assert.InDelta(t, 10.0, uc.input.Position.AccuracyMeters, 1e-9)

	var resp handler.TransitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Triggered, 1)
	assert.Equal(t, "r1", resp.Triggered[0].ReminderID)

	uc.err = app.NewValidationError("transition", "invalid geofence transition: sideways")
	rec = doJSON(t, router, http.MethodPost, "/api/v1/geofence/events", map[string]any{
		"request_ids": []string{"r1"},
		"transition":  "sideways",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "transition", decodeError(t, rec).Field)
}

func TestLocationHandler(t *testing.T) {
	recordedAt := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		uc             stubLocationUseCase
		expectedStatus int
	}{
		{
			name: "fix found",
			uc: stubLocationUseCase{output: app.LocationOutput{
				Found: true, Latitude: 47.6, Longitude: -122.3, RecordedAt: recordedAt, Tries: 3, Status: "found",
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no fix",
			uc:             stubLocationUseCase{output: app.LocationOutput{Tries: 3, Status: "exhausted"}},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "interrupted",
			uc:             stubLocationUseCase{err: fmt.Errorf("%w: %w", app.ErrInternalError, context.Canceled)},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(handler.NewLocationHandler(tt.uc).RegisterRoutes)

			rec := doJSON(t, router, http.MethodGet, "/api/v1/location/current", nil)
			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp handler.LocationResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, 3, resp.Tries)
				assert.Equal(t, recordedAt, resp.RecordedAt)
			}
		})
	}
}

func TestDeviceHandler(t *testing.T) {
	bridge := device.NewBridge(nil, nil)
	router := newRouter(handler.NewDeviceHandler(bridge).RegisterRoutes)
	ctx := context.Background()

	rec := doJSON(t, router, http.MethodPut, "/api/v1/device/position", map[string]any{
		"latitude": 47.6, "longitude": -122.3, "accuracy_meters": 5,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	pos, err := bridge.LastPosition(ctx)
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.InDelta(t, -122.3, pos.Longitude, 1e-9)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/device/position", map[string]any{"latitude": 91, "longitude": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/device/settings", map[string]any{"location_enabled": false})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.ErrorIs(t, bridge.ResolveSettings(ctx, domain.SettingsRequest{}), domain.ErrSettingsResolutionRequired)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/device/settings", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/device/permissions", map[string]any{
		"permissions": []string{"fine_location"},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, bridge.IsGranted(domain.PermissionFineLocation))
	assert.False(t, bridge.IsGranted(domain.PermissionBackgroundLocation))

	rec = doJSON(t, router, http.MethodPut, "/api/v1/device/permissions", map[string]any{
		"permissions": []string{"camera"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	require.NoError(t, bridge.AddGeofence(ctx, domain.GeofenceRequest{
		RequestID:      "r1",
		Latitude:       47.6,
		Longitude:      -122.3,
		RadiusMeters:   domain.GeofenceRadiusMeters,
		Expiration:     domain.NeverExpire,
		Transitions:    []domain.Transition{domain.TransitionEnter},
		InitialTrigger: domain.TransitionEnter,
	}, domain.CallbackHandle{Purpose: domain.SavedGeofencePurpose}))

	rec = doJSON(t, router, http.MethodGet, "/api/v1/device/geofences", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.GeofencesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "r1", resp.Geofences[0].RequestID)
	assert.Equal(t, []string{"enter"}, resp.Geofences[0].Transitions)
	assert.True(t, resp.Geofences[0].NeverExpires)
	assert.InDelta(t, 100.0, resp.Geofences[0].RadiusMeters, 1e-9)
}

func TestLocationHandlerRequiresPermission(t *testing.T) {
	bridge := device.NewBridge(nil, nil)
	bridge.ReportPosition(domain.Position{Latitude: 47.6, Longitude: -122.3, AccuracyMeters: 5})

	acquirer := location.NewAcquirer(bridge, bridge, nil, nil, location.DefaultConfig())
	router := newRouter(
		handler.NewLocationHandler(app.NewLocationUseCase(acquirer)).RegisterRoutes,
		handler.NewDeviceHandler(bridge).RegisterRoutes,
	)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/location/current", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, "permission_denied", resp.Error)
	assert.Equal(t, "location permissions not granted: fine_location", resp.Message)
	assert.NotContains(t, rec.Body.String(), "47.6")

	rec = doJSON(t, router, http.MethodPut, "/api/v1/device/permissions", map[string]any{
		"permissions": []string{"fine_location"},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/location/current", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var located handler.LocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &located))
	assert.InDelta(t, 47.6, located.Latitude, 1e-9)
	assert.Equal(t, 1, located.Tries)
}
