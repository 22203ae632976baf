package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mtallentb/nes-outage-viewer/internal/config"
	"github.com/mtallentb/nes-outage-viewer/internal/models"
	"github.com/mtallentb/nes-outage-viewer/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testHome = models.Location{Lat: 36.1627, Lng: -86.7816}

// newTestHandler создает Handler с мокированными сервисами. trendsEnabled=false имитирует отсутствие DATABASE_URL
func newTestHandler(t *testing.T, trendsEnabled bool) (*mocks.MockOutageService, *mocks.MockTrendService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	outageMock := mocks.NewMockOutageService(ctrl)
	trendMock := mocks.NewMockTrendService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	lat, lng := testHome.Lat, testHome.Lng
	cfg := &config.Config{
		HomeLat:     &lat,
		HomeLng:     &lng,
		RadiusMiles: 1,
		TrendHours:  6,
	}

	var handler *Handler
	if trendsEnabled {
		handler = NewHandler(outageMock, trendMock, logger, cfg)
	} else {
		handler = NewHandler(outageMock, nil, logger, cfg)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLoggerMiddleware(logger))
	handler.RegisterRoutes(router.Group("/api"))

	return outageMock, trendMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetConfig(t *testing.T) {
	_, _, router := newTestHandler(t, false)

	w := makeRequest(router, http.MethodGet, "/api/config", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"homeLat":36.1627,"homeLng":-86.7816,"radiusMiles":1}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetConfig_NullCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	handler := NewHandler(nil, nil, logger, &config.Config{RadiusMiles: 2.5})
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))

	w := makeRequest(router, http.MethodGet, "/api/config", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"homeLat":null,"homeLng":null,"radiusMiles":2.5}`, w.Body.String())
}

func TestGetOutages_Success(t *testing.T) {
	outageMock, _, router := newTestHandler(t, false)
	report := &models.NearbyReport{
		Outages: []models.NearbyOutage{{
			OutageEvent: models.OutageEvent{
				ID: "123", Lat: 36.165, Lng: -86.78, NumPeople: 1234, Status: "Assigned",
				LastUpdated: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
			},
			Distance: 0.18,
		}},
		Totals: models.OutageTotals{
			ServiceArea: models.AreaTotals{Events: 10, PeopleAffected: 5000},
			Nearby:      models.AreaTotals{Events: 1, PeopleAffected: 1234},
		},
	}

	outageMock.EXPECT().
		NearbyOutages(gomock.Any(), testHome, 2.5).
		Return(report, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/outages?lat=36.1627&lng=-86.7816&radius=2.5", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp OutagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Outages, 1)
	assert.Equal(t, "123", resp.Outages[0].ID)
	assert.Equal(t, 0.18, resp.Outages[0].Distance)
	assert.Equal(t, report.Totals, resp.Totals)
	assert.Equal(t, 2.5, resp.Config.RadiusMiles)
	require.NotNil(t, resp.Config.HomeLat)
	assert.Equal(t, testHome.Lat, *resp.Config.HomeLat)

	// Сводка по всей зоне обслуживания отдается под ключом nashville
	assert.Contains(t, w.Body.String(), `"nashville":{"events":10,"peopleAffected":5000}`)
}

func TestGetOutages_EmptyListIsArray(t *testing.T) {
	outageMock, _, router := newTestHandler(t, false)

	outageMock.EXPECT().
		NearbyOutages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.NearbyReport{Outages: []models.NearbyOutage{}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/outages?lat=36.1627&lng=-86.7816", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outages":[]`)
}

func TestGetOutages_DefaultRadius(t *testing.T) {
	for name, query := range map[string]string{
		"missing":     "",
		"non-numeric": "&radius=abc",
		"zero":        "&radius=0",
		"negative":    "&radius=-3",
		"not finite":  "&radius=Inf",
	} {
		t.Run(name, func(t *testing.T) {
			outageMock, _, router := newTestHandler(t, false)

			outageMock.EXPECT().
				NearbyOutages(gomock.Any(), testHome, 1.0).
				Return(&models.NearbyReport{Outages: []models.NearbyOutage{}}, nil).
				Times(1)

			w := makeRequest(router, http.MethodGet, "/api/outages?lat=36.1627&lng=-86.7816"+query, nil)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestGetOutages_InvalidCoordinates(t *testing.T) {
	for name, query := range map[string]string{
		"missing lat":     "?lng=-86.7816",
		"missing lng":     "?lat=36.1627",
		"missing both":    "",
		"non-numeric lat": "?lat=abc&lng=-86.7816",
		"NaN lng":         "?lat=36.1627&lng=NaN",
		"infinite lat":    "?lat=Inf&lng=-86.7816",
	} {
		t.Run(name, func(t *testing.T) {
			outageMock, _, router := newTestHandler(t, false)

			outageMock.EXPECT().NearbyOutages(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			w := makeRequest(router, http.MethodGet, "/api/outages"+query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"lat and lng query parameters are required"}`, w.Body.String())
		})
	}
}

func TestGetOutages_FetchError(t *testing.T) {
	outageMock, _, router := newTestHandler(t, false)

	outageMock.EXPECT().
		NearbyOutages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &models.FetchError{StatusCode: 502, Err: errors.New("bad gateway")}).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/outages?lat=36.1627&lng=-86.7816", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch outages"}`, w.Body.String())
}

func TestGetTrends_Success(t *testing.T) {
	_, trendMock, router := newTestHandler(t, true)
	t1 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour)
	trends := &models.TrendData{
		TimeRange:       models.TimeRange{Start: t1, End: t2},
		ResolutionRate:  0.5,
		NetPeopleChange: -30,
		DataPoints: []models.TrendDataPoint{
			{Time: t1, TotalOutages: 3, TotalPeopleAffected: 100},
			{Time: t2, TotalOutages: 2, TotalPeopleAffected: 70},
		},
	}

	trendMock.EXPECT().ComputeTrends(gomock.Any(), 12.0).Return(trends, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/trends?hours=12", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TrendData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.5, resp.ResolutionRate)
	assert.Equal(t, -30, resp.NetPeopleChange)
	assert.Len(t, resp.DataPoints, 2)
}

func TestGetTrends_DefaultHours(t *testing.T) {
	_, trendMock, router := newTestHandler(t, true)

	trendMock.EXPECT().ComputeTrends(gomock.Any(), 6.0).Return(nil, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/trends", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TrendsEmptyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.NotNil(t, resp.DataPoints)
	assert.Empty(t, resp.DataPoints)
	assert.Contains(t, w.Body.String(), `"dataPoints":[]`)
}

func TestGetTrends_InvalidHours(t *testing.T) {
	_, trendMock, router := newTestHandler(t, true)

	trendMock.EXPECT().ComputeTrends(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/trends?hours=soon", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTrends_StorageError(t *testing.T) {
	_, trendMock, router := newTestHandler(t, true)

	trendMock.EXPECT().
		ComputeTrends(gomock.Any(), gomock.Any()).
		Return(nil, &models.StorageError{Op: "query snapshot times", Err: errors.New("connection refused")}).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/trends", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetTrends_Disabled(t *testing.T) {
	_, trendMock, router := newTestHandler(t, false)

	trendMock.EXPECT().ComputeTrends(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/trends", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t, false)
	w := makeRequest(router, http.MethodGet, "/api/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","trends":"disabled"}`, w.Body.String())

	_, _, router = newTestHandler(t, true)
	w = makeRequest(router, http.MethodGet, "/api/system/health", nil)
	assert.JSONEq(t, `{"status":"ok","trends":"enabled"}`, w.Body.String())
}

func TestRequestLoggerMiddleware_KeepsValidRequestID(t *testing.T) {
	_, _, router := newTestHandler(t, false)
	id := "7f1c2f4e-7d4a-4c61-9a57-2f0d9b1b8a11"

	req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
	req.Header.Set("X-Request-ID", id)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}

func TestParseFinite(t *testing.T) {
	v, ok := parseFinite("36.5")
	assert.True(t, ok)
	assert.Equal(t, 36.5, v)

	for _, s := range []string{"", "abc", "NaN", "Inf", "-Inf", "1e400"} {
		_, ok := parseFinite(s)
		assert.False(t, ok, s)
	}
}
