//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gymgain/internal/domain/booking"
	"gymgain/internal/handler/api"
	"gymgain/internal/infra/session"
	"gymgain/internal/usecase/commands"
	commandsmock "gymgain/tests/mock/commands"
	queriesmock "gymgain/tests/mock/queries"
	sessionmock "gymgain/tests/mock/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerSuite struct {
	suite.Suite

	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockScheduleQueries
	mockSessions *sessionmock.MockStore

	engine *gin.Engine
	sess   *session.Session
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerSuite))
}

func (s *ScheduleHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.mockSessions = sessionmock.NewMockStore(s.mockCtrl)

	s.sess = &session.Session{
		ID:           "sess-1",
		UserID:       uuid.New(),
		Username:     "alice",
		TokenBalance: 20,
		Tier:         "base",
	}

	handler := api.NewScheduleHandler(s.mockQueries, s.mockCommands, s.mockSessions)

	s.engine = gin.New()
	injectSession := func(c *gin.Context) {
		c.Set("session", s.sess)
	}
	s.engine.GET("/", handler.Index)
	s.engine.POST("/schedule/book", injectSession, handler.Book)
	s.engine.POST("/schedule/cancel", injectSession, handler.Cancel)
}

func (s *ScheduleHandlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ScheduleHandlerSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *ScheduleHandlerSuite) expectSessionSaved() {
	s.mockSessions.EXPECT().
		Save(gomock.Any(), s.sess).
		Return(nil)
}

func (s *ScheduleHandlerSuite) TestBookSuccess() {
	s.mockCommands.EXPECT().
		Book(gomock.Any(), s.sess.UserID, int64(7), "2024-03-04").
		Return(&commands.BookResult{BookingID: 1, ActivityName: "Spin Class", NewBalance: 15}, nil)
	s.expectSessionSaved()

	w := s.postForm("/schedule/book", url.Values{
		"schedule_id":  {"7"},
		"booking_date": {"2024-03-04"},
	})

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/dashboard", w.Header().Get("Location"))
	s.Require().NotNil(s.sess.Flash)
	s.Equal("success", s.sess.Flash.Kind)
	s.Equal("Class booked successfully!", s.sess.Flash.Message)
	s.Equal(int32(15), s.sess.TokenBalance)
}

func (s *ScheduleHandlerSuite) TestBookRejectionsFlashTheContractStrings() {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"invalid date", booking.ErrInvalidDate, "Invalid booking date selected."},
		{"class not found", commands.ErrClassNotFound, "Class not found."},
		{"already booked", booking.ErrAlreadyBooked, "You have already booked this class!"},
		{"class full", booking.ErrClassFull, "Class is full!"},
		{"insufficient tokens", booking.ErrInsufficientTokens, "Insufficient tokens! Please top up."},
		{"tier too low", booking.ErrTierTooLow, "This class requires a higher membership tier!"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.sess.Flash = nil
			s.mockCommands.EXPECT().
				Book(gomock.Any(), s.sess.UserID, int64(7), "2024-03-04").
				Return(nil, tt.err)
			s.expectSessionSaved()

			w := s.postForm("/schedule/book", url.Values{
				"schedule_id":  {"7"},
				"booking_date": {"2024-03-04"},
			})

			s.Equal(http.StatusFound, w.Code)
			s.Equal("/", w.Header().Get("Location"))
			s.Require().NotNil(s.sess.Flash)
			s.Equal("error", s.sess.Flash.Kind)
			s.Equal(tt.message, s.sess.Flash.Message)
			s.Equal(int32(20), s.sess.TokenBalance)
		})
	}
}

func (s *ScheduleHandlerSuite) TestBookMissingScheduleID() {
	// No command call; the bad form never reaches the engine.
	s.expectSessionSaved()

	w := s.postForm("/schedule/book", url.Values{
		"booking_date": {"2024-03-04"},
	})

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/", w.Header().Get("Location"))
	s.Require().NotNil(s.sess.Flash)
	s.Equal("Class not found.", s.sess.Flash.Message)
}

func (s *ScheduleHandlerSuite) TestCancelSuccess() {
	s.mockCommands.EXPECT().
		Cancel(gomock.Any(), s.sess.UserID, int64(3)).
		Return(&commands.CancelResult{ActivityName: "Spin Class", RefundAmount: 5, NewBalance: 25}, nil)
	s.expectSessionSaved()

	w := s.postForm("/schedule/cancel", url.Values{"booking_id": {"3"}})

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/dashboard", w.Header().Get("Location"))
	s.Require().NotNil(s.sess.Flash)
	s.Equal("success", s.sess.Flash.Kind)
	s.Equal("Booking cancelled and tokens refunded.", s.sess.Flash.Message)
	s.Equal(int32(25), s.sess.TokenBalance)
}

func (s *ScheduleHandlerSuite) TestCancelMissingBooking() {
	s.mockCommands.EXPECT().
		Cancel(gomock.Any(), s.sess.UserID, int64(42)).
		Return(nil, commands.ErrBookingNotFound)
	s.expectSessionSaved()

	w := s.postForm("/schedule/cancel", url.Values{"booking_id": {"42"}})

	s.Equal(http.StatusFound, w.Code)
	s.Equal("/dashboard", w.Header().Get("Location"))
	s.Require().NotNil(s.sess.Flash)
	s.Equal("Booking not found.", s.sess.Flash.Message)
	s.Equal(int32(20), s.sess.TokenBalance)
}

func (s *ScheduleHandlerSuite) TestIndexListsSchedule() {
	s.mockQueries.EXPECT().
		WeeklySchedule(gomock.Any(), "yoga").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/?search=yoga", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "schedule")
}
