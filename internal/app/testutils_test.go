package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/cinema-operations/api"
	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/metinatakli/cinema-operations/internal/mocks"
	"github.com/metinatakli/cinema-operations/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const testHoldMinutes = 10

// testNow is a Tuesday afternoon.
var (
	testNow          = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	testSessionStart = testNow.Add(24 * time.Hour)

	decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
)

type testMocks struct {
	sessionRepo   *mocks.MockSessionRepo
	screenings    *mocks.MockScreeningFinder
	roomRepo      *mocks.MockRoomRepo
	movieRepo     *mocks.MockMovieRepo
	customerRepo  *mocks.MockCustomerRepo
	eventRepo     *mocks.MockEventReservationRepo
	promotionRepo *mocks.MockPromotionRuleRepo
	locker        *mocks.MockSessionLocker
	roomLocker    *mocks.MockSessionLocker
	publisher     *mocks.MockEventPublisher
}

func newTestMocks() *testMocks {
	return &testMocks{
		sessionRepo:   new(mocks.MockSessionRepo),
		screenings:    new(mocks.MockScreeningFinder),
		roomRepo:      new(mocks.MockRoomRepo),
		movieRepo:     new(mocks.MockMovieRepo),
		customerRepo:  new(mocks.MockCustomerRepo),
		eventRepo:     new(mocks.MockEventReservationRepo),
		promotionRepo: new(mocks.MockPromotionRuleRepo),
		locker:        new(mocks.MockSessionLocker),
		roomLocker:    new(mocks.MockSessionLocker),
		publisher:     new(mocks.MockEventPublisher),
	}
}

func (m *testMocks) apply(app *Application) {
	app.sessionRepo = m.sessionRepo
	app.screenings = m.screenings
	app.roomRepo = m.roomRepo
	app.movieRepo = m.movieRepo
	app.customerRepo = m.customerRepo
	app.eventReservationRepo = m.eventRepo
	app.promotionRepo = m.promotionRepo
	app.locker = m.locker
	app.roomLocker = m.roomLocker
	app.publisher = m.publisher
}

func (m *testMocks) assertExpectations(t *testing.T) {
	m.sessionRepo.AssertExpectations(t)
	m.screenings.AssertExpectations(t)
	m.roomRepo.AssertExpectations(t)
	m.movieRepo.AssertExpectations(t)
	m.customerRepo.AssertExpectations(t)
	m.eventRepo.AssertExpectations(t)
	m.promotionRepo.AssertExpectations(t)
	m.locker.AssertExpectations(t)
	m.roomLocker.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

// expectLock expects the lock to be taken and released exactly once.
func expectLock(locker *mocks.MockSessionLocker, id int) {
	locker.On("Lock", mock.Anything, id).Return(nil).Once()
	locker.On("Unlock", id).Return().Once()
}

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env: "test",
			Sessions: SessionConfig{
				HoldMinutes: testHoldMinutes,
			},
		},
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		pricing:   domain.NewPricingEngine(),
		metrics:   newTestMetrics(noop.NewMeterProvider().Meter(serviceName)),
		now:       func() time.Time { return testNow },
	}

	for _, opt := range opts {
		opt(app)
	}

	app.conflicts = domain.NewRoomConflictChecker(app.screenings, app.eventReservationRepo)

	return app
}

func newTestMetrics(meter metric.Meter) *appMetrics {
	metrics, err := newAppMetrics(meter)
	if err != nil {
		panic(err)
	}

	return metrics
}

// withMetricReader records the application metrics into reader.
func withMetricReader(reader sdkmetric.Reader) func(*Application) {
	return func(app *Application) {
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		app.metrics = newTestMetrics(provider.Meter(serviceName))
	}
}

// counterValue sums the data points of an int64 counter collected by reader.
func counterValue(t *testing.T, reader sdkmetric.Reader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}

			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)

			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}

	return total
}

// newTestSession returns an open session 5 for movie 1 in room 1 with seats
// A1 A2 B1 B2 and a base price of 30.
func newTestSession(t *testing.T) *domain.Session {
	t.Helper()

	session, err := domain.NewSession(
		&domain.Movie{ID: 1, DurationMinutes: 120},
		&domain.Room{ID: 1, Capacity: 4, SeatsPerRow: 2},
		testSessionStart,
		decimal.NewFromInt(30))
	require.NoError(t, err)
	require.NoError(t, session.OpenForSale())

	session.ID = 5
	session.Version = 1

	return session
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
		reader = http.NoBody
	case string:
		reader = strings.NewReader(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
