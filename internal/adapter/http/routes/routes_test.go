package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crm_pipeline/internal/adapter/http/handlers"
	"crm_pipeline/internal/adapter/http/handlers/mocks"
	"crm_pipeline/internal/infrastructure/logging"
	"crm_pipeline/internal/infrastructure/metrics"
	"crm_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPipelineUseCase(ctrl)
	uc.EXPECT().Status(gomock.Any(), "org-1").Return(usecase.PipelineStatus{OrganizationID: "org-1", Origin: usecase.OriginNone}, nil)

	registry := metrics.NewRegistry()
	if _, err := metrics.NewPipelineMetrics(registry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := NewRouter(zap.NewNop(), registry, handlers.NewPipelineHandler(uc, zap.NewNop()))

	cases := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/v1/ping", http.StatusOK, "pong"},
		{http.MethodGet, "/v1/stages", http.StatusOK, `"negotiation"`},
		{http.MethodGet, "/v1/organizations/org-1/pipeline/status", http.StatusOK, `"origin":"none"`},
		{http.MethodGet, "/metrics", http.StatusOK, "go_goroutines"},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK, "/organizations/{organization_id}/pipeline/items"},
		{http.MethodGet, "/v1/unknown", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

		if w.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.status, w.Code)
		}
		if tc.body != "" && !strings.Contains(w.Body.String(), tc.body) {
			t.Fatalf("%s %s: body %q does not contain %q", tc.method, tc.path, w.Body.String(), tc.body)
		}
		if w.Header().Get(logging.RequestIDHeader) == "" {
			t.Fatalf("%s %s: missing request id header", tc.method, tc.path)
		}
	}
}
