package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	mockrotation "github.com/digirealtydrew93/tackettweb/internal/orchestrator/mocks/rotation"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/model"
	"github.com/digirealtydrew93/tackettweb/internal/orchestrator/rotation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRotationHandler_GetRotationStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockScheduler := mockrotation.NewMockScheduler(ctrl)

	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	mockScheduler.EXPECT().Status(gomock.Any()).Return(model.RotationLog{
		Deployments: []model.RotationEntry{
			{Index: 0, Name: "A", LastDeployed: &older, DeployCount: 1},
			{Index: 1, Name: "B"},
			{Index: 2, Name: "C", LastDeployed: &newer, DeployCount: 1},
		},
		TotalDeployments: 2,
	}, nil)

	handler := NewRotationHandler(zap.NewNop(), mockScheduler)
	w, c := setupTestContext(t, http.MethodGet, "/rotation", nil)

	handler.GetRotationStatus()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	posA := strings.Index(body, `"name":"A"`)
	posB := strings.Index(body, `"name":"B"`)
	posC := strings.Index(body, `"name":"C"`)
	assert.Less(t, posC, posA)
	assert.Less(t, posA, posB)
	assert.Contains(t, body, `"totalDeployments":2`)
}

func TestRotationHandler_GetNextTarget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		setupMocks     func(mockScheduler *mockrotation.MockScheduler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().NextTarget(gomock.Any()).Return(model.RotationEntry{Index: 1, Name: "B", URL: "http://b"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"B"`,
		},
		{
			name: "Error No Deployments",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().NextTarget(gomock.Any()).Return(model.RotationEntry{}, fmt.Errorf("wrap: %w", apperrors.ErrNoDeployments))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"No deployments registered"`,
		},
		{
			name: "Error Internal Server Error",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().NextTarget(gomock.Any()).Return(model.RotationEntry{}, errors.New("store down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal Server Error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockScheduler := mockrotation.NewMockScheduler(ctrl)
			tc.setupMocks(mockScheduler)

			handler := NewRotationHandler(zap.NewNop(), mockScheduler)
			w, c := setupTestContext(t, http.MethodGet, "/rotation/next", nil)

			handler.GetNextTarget()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestRotationHandler_GetSchedule(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(mockScheduler *mockrotation.MockScheduler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Default Length",
			url:  "/rotation/schedule",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().Schedule(gomock.Any(), 5).Return(make([]model.RotationEntry, 5), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"index":0`,
		},
		{
			name: "Success Custom Length",
			url:  "/rotation/schedule?n=2",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().Schedule(gomock.Any(), 2).Return([]model.RotationEntry{{Index: 1, Name: "B"}, {Index: 0, Name: "A"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"B"`,
		},
		{
			name:           "Error Not Integer",
			url:            "/rotation/schedule?n=many",
			setupMocks:     func(mockScheduler *mockrotation.MockScheduler) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"n must be an integer between 1 and 100"`,
		},
		{
			name:           "Error Zero",
			url:            "/rotation/schedule?n=0",
			setupMocks:     func(mockScheduler *mockrotation.MockScheduler) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"n must be an integer between 1 and 100"`,
		},
		{
			name: "Error No Deployments",
			url:  "/rotation/schedule?n=3",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().Schedule(gomock.Any(), 3).Return(nil, fmt.Errorf("wrap: %w", apperrors.ErrNoDeployments))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"No deployments registered"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockScheduler := mockrotation.NewMockScheduler(ctrl)
			tc.setupMocks(mockScheduler)

			handler := NewRotationHandler(zap.NewNop(), mockScheduler)
			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)

			handler.GetSchedule()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestRotationHandler_MarkDeployed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deployedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		index          string
		setupMocks     func(mockScheduler *mockrotation.MockScheduler)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name:  "Success With Switch",
			index: "1",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().MarkDeployed(gomock.Any(), 1).Return(rotation.MarkResult{
					Entry:  model.RotationEntry{Index: 1, Name: "B", LastDeployed: &deployedAt, DeployCount: 1},
					Switch: &model.SwitchEvent{From: "A", To: "B", Trigger: model.SwitchTriggerRotation},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"deployCount":1`, `"trigger":"rotation"`},
		},
		{
			name:           "Error Index Not Integer",
			index:          "x",
			setupMocks:     func(mockScheduler *mockrotation.MockScheduler) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"message":"Index must be an integer"`},
		},
		{
			name:  "Error Invalid Index",
			index: "4",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().MarkDeployed(gomock.Any(), 4).Return(rotation.MarkResult{}, fmt.Errorf("wrap: %w", apperrors.ErrInvalidIndex))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"message":"Invalid deployment index"`},
		},
		{
			name:  "Error Internal Server Error",
			index: "1",
			setupMocks: func(mockScheduler *mockrotation.MockScheduler) {
				mockScheduler.EXPECT().MarkDeployed(gomock.Any(), 1).Return(rotation.MarkResult{}, errors.New("store down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`"message":"Internal Server Error"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockScheduler := mockrotation.NewMockScheduler(ctrl)
			tc.setupMocks(mockScheduler)

			handler := NewRotationHandler(zap.NewNop(), mockScheduler)
			w, c := setupTestContext(t, http.MethodPost, "/rotation/"+tc.index+"/mark", nil)
			c.Params = gin.Params{{Key: "index", Value: tc.index}}

			handler.MarkDeployed()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			for _, s := range tc.expectedBody {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestRotationHandler_ResetRotation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockScheduler := mockrotation.NewMockScheduler(ctrl)
	mockScheduler.EXPECT().Reset(gomock.Any()).Return(nil)

	handler := NewRotationHandler(zap.NewNop(), mockScheduler)
	w, c := setupTestContext(t, http.MethodPost, "/rotation/reset", nil)

	handler.ResetRotation()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Rotation log reset"`)
}
