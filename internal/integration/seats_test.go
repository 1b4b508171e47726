package integration_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/metinatakli/cinema-operations/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SeatTestSuite struct {
	BaseSuite
}

func TestSeatSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(SeatTestSuite))
}

func customerBody(id int) *strings.Reader {
	return strings.NewReader(fmt.Sprintf(`{"customerId": %d}`, id))
}

func (s *SeatTestSuite) TestHoldSeat() {
	scenarios := []Scenario{
		{
			Name:           "returns 200 and holds an available seat",
			Method:         "POST",
			URL:            "/v1/sessions/1/seats/A1/hold",
			Body:           customerBody(TestRegularCustomerId),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"sessionId": 1,
				"seat": {"label": "A1", "class": "standard", "status": "held", "holderId": 1}
			}`,
			BeforeTestFunc: setupBaseState,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, "held", seatStatus(t, app.DB, 1, "A1"))
			},
		},
		{
			Name:           "returns 200 when reclaiming an expired hold",
			Method:         "POST",
			URL:            "/v1/sessions/1/seats/A2/hold",
			Body:           customerBody(TestRegularCustomerId),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"sessionId": 1,
				"seat": {"label": "A2", "class": "standard", "status": "held", "holderId": 1}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/holds_up.sql")
			},
		},
		{
			Name:             "returns 409 for a seat held by another customer",
			Method:           "POST",
			URL:              "/v1/sessions/1/seats/B1/hold",
			Body:             customerBody(TestRegularCustomerId),
			ExpectedStatus:   http.StatusConflict,
			ExpectedResponse: `{"message": "state conflict: seat B1 is held"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/holds_up.sql")
			},
		},
		{
			Name:             "returns 404 for an unknown seat",
			Method:           "POST",
			URL:              "/v1/sessions/1/seats/C1/hold",
			Body:             customerBody(TestRegularCustomerId),
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "The requested resource not found"}`,
			BeforeTestFunc:   setupBaseState,
		},
		{
			Name:             "returns 404 for an unknown customer",
			Method:           "POST",
			URL:              "/v1/sessions/1/seats/A1/hold",
			Body:             customerBody(99),
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "The requested resource not found"}`,
			BeforeTestFunc:   setupBaseState,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

// Concurrent holds on one seat must leave exactly one winner.
func (s *SeatTestSuite) TestConcurrentHoldsOnOneSeat() {
	setupBaseState(s.T(), s.app)

	const attempts = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = map[int]int{}
	)

	for i := range attempts {
		wg.Add(1)

		go func(customerID int) {
			defer wg.Done()

			req, err := prepareRequest("POST", "/v1/sessions/1/seats/A1/hold", customerBody(customerID), nil)
			if err != nil {
				return
			}

			rec := httptest.NewRecorder()
			s.app.App.Routes().ServeHTTP(rec, req)

			mu.Lock()
			statuses[rec.Code]++
			mu.Unlock()
		}(i%4 + 1)
	}

	wg.Wait()

	s.Equal(1, statuses[http.StatusOK])
	s.Equal(attempts-1, statuses[http.StatusConflict])
	s.Equal("held", seatStatus(s.T(), s.app.DB, 1, "A1"))
}

func (s *SeatTestSuite) TestConfirmSeat() {
	scenarios := []Scenario{
		{
			Name:           "student pays the statutory half price",
			Method:         "POST",
			URL:            "/v1/sessions/1/seats/A1/confirm",
			Body:           customerBody(TestStudentCustomerId),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"sessionId": 1,
				"sessionStatus": "open_for_sale",
				"seat": {"label": "A1", "class": "standard", "status": "occupied"},
				"price": {"originalPrice": "30", "discount": "15", "finalPrice": "15", "ruleId": null, "statutory": true}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/promotions_up.sql")
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, "occupied", seatStatus(t, app.DB, 1, "A1"))

				events := app.Events.Published()
				require.Len(t, events, 1)

				confirmed, ok := events[0].(domain.SeatConfirmedEvent)
				require.True(t, ok)
				assert.Equal(t, "A1", confirmed.SeatLabel)
				assert.Equal(t, "15", confirmed.Amount.String())
				assert.True(t, confirmed.Statutory)
			},
		},
		{
			Name:           "teacher gets the largest promotion",
			Method:         "POST",
			URL:            "/v1/sessions/1/seats/A1/confirm",
			Body:           customerBody(TestTeacherCustomerId),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"sessionId": 1,
				"sessionStatus": "open_for_sale",
				"seat": {"label": "A1", "class": "standard", "status": "occupied"},
				"price": {"originalPrice": "30", "discount": "6", "finalPrice": "24", "ruleId": 1, "statutory": false}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/promotions_up.sql")
			},
		},
		{
			Name:           "the last seat sells the session out",
			Method:         "POST",
			URL:            "/v1/sessions/1/seats/A2/confirm",
			Body:           customerBody(TestRegularCustomerId),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"sessionId": 1,
				"sessionStatus": "sold_out",
				"seat": {"label": "A2", "class": "standard", "status": "occupied"},
				"price": {"originalPrice": "30", "discount": "0", "finalPrice": "30", "ruleId": null, "statutory": false}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/occupied_up.sql")
				executeSQLFile(t, app.DB, "testdata/blocked_up.sql")
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Equal(t, "sold_out", sessionStatus(t, app.DB, 1))
			},
		},
		{
			Name:             "returns 409 over a live hold of another customer",
			Method:           "POST",
			URL:              "/v1/sessions/1/seats/B1/confirm",
			Body:             customerBody(TestRegularCustomerId),
			ExpectedStatus:   http.StatusConflict,
			ExpectedResponse: `{"message": "state conflict: seat B1 is held by another customer"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/holds_up.sql")
			},
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				assert.Empty(t, app.Events.Published())
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *SeatTestSuite) TestBlockAndRelease() {
	scenarios := []Scenario{
		{
			Name:           "blocks a held seat",
			Method:         "POST",
			URL:            "/v1/sessions/1/seats/B1/block",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"sessionId": 1,
				"sessionStatus": "open_for_sale",
				"seat": {"label": "B1", "class": "standard", "status": "blocked"}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/holds_up.sql")
			},
		},
		{
			Name:             "returns 409 when blocking a sold seat",
			Method:           "POST",
			URL:              "/v1/sessions/1/seats/A1/block",
			ExpectedStatus:   http.StatusConflict,
			ExpectedResponse: `{"message": "state conflict: seat A1 is already sold"}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/occupied_up.sql")
			},
		},
		{
			Name:           "releasing a sold seat reopens a sold out session",
			Method:         "POST",
			URL:            "/v1/sessions/1/seats/A1/release",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"sessionId": 1,
				"sessionStatus": "open_for_sale",
				"seat": {"label": "A1", "class": "standard", "status": "available"}
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupBaseState(t, app)
				executeSQLFile(t, app.DB, "testdata/occupied_up.sql")
				executeSQLFile(t, app.DB, "testdata/blocked_up.sql")
				executeSQLFile(t, app.DB, "testdata/sold_out_up.sql")
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *SeatTestSuite) TestPromotionRuleAppliesToQuotes() {
	scenarios := []Scenario{
		{
			Name:   "creates a weekday rule",
			Method: "POST",
			URL:    "/v1/promotion-rules",
			Body: strings.NewReader(`{
				"name": "Early evening",
				"kind": "off_peak",
				"fixedAmount": "7.50",
				"weekdays": [2]
			}`),
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 1,
				"name": "Early evening",
				"kind": "off_peak",
				"fixedAmount": "7.5",
				"weekdays": [2],
				"active": true
			}`,
			BeforeTestFunc: setupBaseState,
		},
		{
			Name:           "quotes the new rule",
			Method:         "POST",
			URL:            "/v1/sessions/1/price-quote",
			Body:           customerBody(TestRegularCustomerId),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"originalPrice": "30",
				"discount": "7.5",
				"finalPrice": "22.5",
				"ruleId": 1,
				"statutory": false
			}`,
		},
		{
			Name:   "returns 400 for an expression that does not compile",
			Method: "POST",
			URL:    "/v1/promotion-rules",
			Body: strings.NewReader(`{
				"name": "Broken",
				"kind": "expression",
				"percentage": "0.1",
				"expression": "room_id =="
			}`),
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
