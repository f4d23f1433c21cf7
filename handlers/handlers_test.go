package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	planRepo "courtcredits/database/repository/plan"
	"courtcredits/handlers"
	"courtcredits/models"
	"courtcredits/routes"
	"courtcredits/services/actions"
	"courtcredits/services/booking"
	"courtcredits/services/catalog"
	"courtcredits/services/roster"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type fakeQueue struct{ count int }

func (q *fakeQueue) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	q.count++
	return &asynq.TaskInfo{ID: "id", Queue: "actions", Type: task.Type()}, nil
}

type fakeClaimer struct{ held map[string]bool }

func (c *fakeClaimer) Claim(_ context.Context, key string, _ time.Duration) (bool, error) {
	if c.held[key] {
		return false, nil
	}
	c.held[key] = true
	return true, nil
}

func (c *fakeClaimer) Release(_ context.Context, key string) error {
	delete(c.held, key)
	return nil
}

type fakePlanRepo struct {
	plans []models.WeekPlan
}

func (r *fakePlanRepo) Save(_ context.Context, plan models.WeekPlan) (*models.WeekPlan, error) {
	now := time.Now()
	for i := range r.plans {
		if r.plans[i].WeekStarting == plan.WeekStarting {
			r.plans[i].Sessions = plan.Sessions
			r.plans[i].UpdatedAt = now
			saved := r.plans[i]
			return &saved, nil
		}
	}
	plan.ID = "plan-" + plan.WeekStarting
	plan.CreatedAt, plan.UpdatedAt = now, now
	r.plans = append(r.plans, plan)
	return &plan, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id string) (*models.WeekPlan, error) {
	for _, p := range r.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, planRepo.ErrPlanNotFound
}

func (r *fakePlanRepo) GetByWeek(_ context.Context, week string) (*models.WeekPlan, error) {
	for _, p := range r.plans {
		if p.WeekStarting == week {
			return &p, nil
		}
	}
	return nil, planRepo.ErrPlanNotFound
}

func (r *fakePlanRepo) Latest(_ context.Context) (*models.WeekPlan, error) {
	if len(r.plans) == 0 {
		return nil, planRepo.ErrPlanNotFound
	}
	p := r.plans[len(r.plans)-1]
	return &p, nil
}

func (r *fakePlanRepo) EnsureIndexes() error { return nil }

type handlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	queue  *fakeQueue
	plans  *fakePlanRepo
	store  *catalog.Store
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}

func (s *handlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.store = catalog.NewStore(catalog.Default(models.FallbackDefaultCourtType), "", models.FallbackDefaultCourtType, zap.NewNop())
	s.queue = &fakeQueue{}
	s.plans = &fakePlanRepo{}
	perth := time.FixedZone("AWST", 8*3600)
	students := roster.New([]models.Student{{Name: "Alex Tan", ContactPreference: "Email", ContactInfo: "alex@example.com"}})

	quotes := booking.NewQuoteService(s.store, zap.NewNop())
	actionSvc := &actions.DefaultActionService{
		Queue:    s.queue,
		Claims:   &fakeClaimer{held: map[string]bool{}},
		Quotes:   quotes,
		Roster:   students,
		Location: perth,
		DedupTTL: time.Minute,
		Logger:   zap.NewNop(),
	}

	catalogHandler := handlers.NewCatalogHandler(quotes, s.store)
	actionHandler := handlers.NewActionHandler(actionSvc)
	planHandler := handlers.NewPlanHandler(s.plans, quotes, students, perth)

	s.router = gin.New()
	routes.RegisterRoutes(s.router, &handlers.HandlerBundle{
		GetLocationsHandler:   catalogHandler.GetLocationsHandler,
		GetSlotsHandler:       catalogHandler.GetSlotsHandler,
		QuoteHandler:          catalogHandler.QuoteHandler,
		BuyCreditsHandler:     actionHandler.BuyCreditsHandler,
		BookCourtHandler:      actionHandler.BookCourtHandler,
		MessageStudentHandler: actionHandler.MessageStudentHandler,
		AddToCalendarHandler:  actionHandler.AddToCalendarHandler,
		GetStudentsHandler:    planHandler.GetStudentsHandler,
		GetPlanHandler:        planHandler.GetPlanHandler,
		SavePlanHandler:       planHandler.SavePlanHandler,
		ReloadCatalogHandler:  catalogHandler.ReloadCatalogHandler,
		HealthHandler:         handlers.HealthHandler,
	})
}

func (s *handlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *handlersTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func (s *handlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *handlersTestSuite) TestLocations() {
	w := s.do(http.MethodGet, "/api/catalog/locations", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Locations []models.LocationSummary `json:"locations"`
	}
	s.decode(w, &resp)
	s.Require().Len(resp.Locations, 2)
	s.Equal(models.CourtTypeRequired, resp.Locations[0].CourtTypePolicy)
}

func (s *handlersTestSuite) TestSlots() {
	w := s.do(http.MethodGet, "/api/slots?location=PBA%20Malaga&day=Thursday", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp models.SlotsResponse
	s.decode(w, &resp)
	s.Len(resp.Slots, 27)
	s.Equal("9:00 AM", resp.Slots[0].Label)

	w = s.do(http.MethodGet, "/api/slots?location=PBA%20Malaga&day=Thursday&start=21:00", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &resp)
	s.Equal("21:00", resp.Start)
	s.Len(resp.Slots, 2)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/slots?location=PBA%20Malaga&day=Someday", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/slots?location=PBA%20Malaga&day=Monday&start=late", nil).Code)
}

func (s *handlersTestSuite) TestQuote() {
	w := s.do(http.MethodPost, "/api/quote", models.BookingRequestInput{
		DayOfWeek: "Monday", CourtLocation: "PBA Malaga", SessionStart: "16:00", SessionEnd: "18:00",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	var q models.Quote
	s.decode(w, &q)
	s.Equal(models.OutcomeOk, q.Outcome)
	s.Equal([]string{"1x $19.00", "1x $29.00"}, q.Lines)
	s.Equal("48.00", q.Total)

	w = s.do(http.MethodPost, "/api/quote", models.BookingRequestInput{CourtLocation: "PBA Canningvale"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &q)
	s.Equal(models.OutcomeIncomplete, q.Outcome)
	s.Empty(q.Segments)
}

func (s *handlersTestSuite) TestQuoteMisaligned() {
	w := s.do(http.MethodPost, "/api/quote", models.BookingRequestInput{
		DayOfWeek: "Monday", CourtLocation: "PBA Malaga", SessionStart: "16:10", SessionEnd: "18:00",
	})
	s.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (s *handlersTestSuite) TestBuyCredits() {
	w := s.do(http.MethodPost, "/api/credits/buy", gin.H{"creditsToBuy": "2x $19.00\n1x $14.50"})
	s.Require().Equal(http.StatusAccepted, w.Code)
	var resp struct {
		Credits []models.CreditUnit `json:"credits"`
		Skipped []string            `json:"skipped"`
	}
	s.decode(w, &resp)
	s.Len(resp.Credits, 3)
	s.Empty(resp.Skipped)

	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/api/credits/buy", gin.H{"creditsToBuy": "2x $19.00\n1x $14.50"}).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/credits/buy", gin.H{"creditsToBuy": "nothing"}).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/credits/buy", gin.H{}).Code)
	s.Equal(1, s.queue.count)
}

func (s *handlersTestSuite) session() gin.H {
	return gin.H{
		"weekStarting":  "2024-03-04",
		"studentName":   "Alex Tan",
		"dayOfWeek":     "Friday",
		"courtLocation": "PBA Canningvale",
		"courtType":     "Super Court",
		"sessionStart":  "17:00",
		"sessionEnd":    "18:30",
	}
}

func (s *handlersTestSuite) TestSessionActions() {
	w := s.do(http.MethodPost, "/api/court/book", s.session())
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())
	var booked models.CourtBookingPayload
	s.decode(w, &booked)
	s.Equal("Super Court", booked.CourtType)

	w = s.do(http.MethodPost, "/api/students/message", s.session())
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/calendar", s.session())
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())
	var event models.CalendarEventPayload
	s.decode(w, &event)
	s.Equal("2024-03-08T17:00:00+08:00", event.Start)

	s.Equal(3, s.queue.count)
}

func (s *handlersTestSuite) TestSessionActionErrors() {
	notMonday := s.session()
	notMonday["weekStarting"] = "2024-03-05"
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/court/book", notMonday).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/calendar", notMonday).Code)

	stranger := s.session()
	stranger["studentName"] = "Jordan"
	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/api/students/message", stranger).Code)

	noCourt := s.session()
	delete(noCourt, "courtType")
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/court/book", noCourt).Code)

	s.Equal(0, s.queue.count)
}

func (s *handlersTestSuite) TestStudents() {
	w := s.do(http.MethodGet, "/api/students", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp struct {
		Students []models.Student `json:"students"`
	}
	s.decode(w, &resp)
	s.Require().Len(resp.Students, 1)
	s.Equal("Alex Tan", resp.Students[0].Name)
}

func (s *handlersTestSuite) TestPlanLifecycle() {
	w := s.do(http.MethodGet, "/api/config", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var empty models.WeekPlanResponse
	s.decode(w, &empty)
	s.Empty(empty.Sessions)

	plan := gin.H{
		"weekStarting": "2024-03-04",
		"sessions": []gin.H{{
			"studentName": "Alex Tan", "dayOfWeek": "Monday", "courtLocation": "PBA Malaga",
			"sessionStart": "16:00", "sessionEnd": "18:00", "statusBooked": true,
		}},
	}
	w = s.do(http.MethodPost, "/api/config", plan)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var saved models.WeekPlanResponse
	s.decode(w, &saved)
	s.Equal("plan-2024-03-04", saved.ID)
	s.Require().Len(saved.Sessions, 1)
	s.True(saved.Sessions[0].StatusBooked)
	s.Equal("1x $19.00\n1x $29.00", saved.Sessions[0].Quote.Credits)

	w = s.do(http.MethodGet, "/api/config", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var latest models.WeekPlanResponse
	s.decode(w, &latest)
	s.Equal("2024-03-04", latest.WeekStarting)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/config?id=missing", nil).Code)
}

func (s *handlersTestSuite) TestSavePlanRequiresMonday() {
	w := s.do(http.MethodPost, "/api/config", gin.H{"weekStarting": "2024-03-06"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Empty(s.plans.plans)
}

func (s *handlersTestSuite) TestReloadCatalog() {
	w := s.do(http.MethodPost, "/api/admin/catalog/reload", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var resp struct {
		Version uint64 `json:"version"`
	}
	s.decode(w, &resp)
	s.Equal(uint64(2), resp.Version)
}
