//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	group := s.router.Group("/bookings", middleware.RequireSharerID())
	group.POST("", s.handler.CreateBooking)
	group.GET("", s.handler.ListBookings)
	group.GET("/owner", s.handler.ListOwnerBookings)
	group.GET("/:bookingId", s.handler.GetBooking)
	group.PATCH("/:bookingId", s.handler.DecideBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BookerID, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, b.BookerID)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("WAITING", response.Status)
		s.Equal(b.ItemID, response.Item.ID)
		s.Equal(b.BookerID, response.Booker.ID)
	})

	s.Run("error: 400 Bad Request when identity header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, uuid.Nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil)},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil)},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil)},
			{name: "malformed start", mutate: testutil.Field("start", "not-a-time")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, b.BookerID)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown booker",
				commandsError:  errs.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "unknown or own item",
				commandsError:  errs.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "item unavailable",
				commandsError:  errs.ErrItemUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not available",
			},
			{
				name:           "invalid period",
				commandsError:  errs.ErrInvalidBookingPeriod,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking period",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), b.BookerID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, b.BookerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecideBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecideBooking() {
	b := builder.NewBookingBuilder()
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	approvedView := b.With(func(b *builder.BookingBuilder) { b.Status = booking.StatusApproved }).BuildView()
	approvedView.ID = bookingID

	s.Run("success: owner approves", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), b.OwnerID, bookingID, true).
			Return(approvedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, b.OwnerID)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("APPROVED", response.Status)
	})

	s.Run("success: owner rejects", func() {
		rejectedView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusRejected }).BuildView()
		s.mockCommands.EXPECT().Approve(gomock.Any(), b.OwnerID, bookingID, false).
			Return(rejectedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, b.OwnerID)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("REJECTED", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid booking UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid?approved=true", nil, b.OwnerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request for missing or malformed approved parameter", func() {
		for _, query := range []string{"", "?approved=", "?approved=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+query, nil, b.OwnerID)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking invisible to the caller",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already decided",
				commandsError:  errs.ErrBookingAlreadyProcessed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already been decided",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), b.OwnerID, bookingID, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, b.OwnerID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildView()
	url := "/bookings/" + returnView.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.BookerID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, b.BookerID)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(b.ItemName, response.Item.Name)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, b.BookerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for unrelated viewer", func() {
		strangerID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), strangerID, returnView.ID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, strangerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	b := builder.NewBookingBuilder()
	views := []*queries.BookingView{b.BuildView(), b.BuildView()}

	s.Run("success: defaults to ALL when state is absent", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), b.BookerID, booking.StateAll).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, b.BookerID)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: state filter is case-insensitive", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), b.BookerID, booking.StateWaiting).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=waiting", nil, b.BookerID)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for unknown state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=SOMETIMES", nil, b.BookerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: SOMETIMES")
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), b.BookerID, booking.StateAll).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, b.BookerID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("success: owner listing goes through the owner query", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), b.OwnerID, booking.StatePast).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=PAST", nil, b.OwnerID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
