package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/handler/dto"
	hmocks "github.com/mauryatalluru/neartools/internal/handler/mocks"
	"github.com/mauryatalluru/neartools/internal/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	listing *hmocks.MockListingSvc
	search  *hmocks.MockSearchSvc
	booking *hmocks.MockBookingSvc
	review  *hmocks.MockReviewSvc
	user    *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		listing: hmocks.NewMockListingSvc(t),
		search:  hmocks.NewMockSearchSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		review:  hmocks.NewMockReviewSvc(t),
		user:    hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.listing, m.search, m.booking, m.review, m.user)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/tools", h.CreateTool)
		api.GET("/tools", h.SearchTools)
		api.GET("/tools/:id", h.GetTool)
		api.DELETE("/tools/:id", h.DeleteTool)
		api.POST("/tools/:id/book", h.BookTool)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/tools/:id/reviews", h.AddReview)
		api.GET("/tools/:id/reviews", h.ListReviews)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.GET("/users/:id/tools", h.GetUserTools)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Tools ---

func TestHandler_CreateTool_Success(t *testing.T) {
	m, r := setupRouter(t)

	ownerID := uuid.New().String()
	tool := &domain.Tool{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Name:       "Extension Ladder",
		Category:   "ladders",
		DailyPrice: 15,
		Location:   "Springfield",
		CreatedAt:  time.Now(),
	}

	m.listing.EXPECT().CreateTool(mock.Anything, mock.Anything).Return(tool, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tools", dto.CreateToolRequest{
		OwnerID:    ownerID,
		Name:       "Extension Ladder",
		Category:   "ladders",
		DailyPrice: 15,
		Location:   "Springfield",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Extension Ladder", resp.Name)
}

func TestHandler_CreateTool_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tools", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateTool_InvalidWindowDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tools", dto.CreateToolRequest{
		OwnerID:       uuid.New().String(),
		Name:          "Drill",
		DailyPrice:    5,
		Location:      "here",
		AvailableFrom: "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTool_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	details := &domain.ToolDetails{
		Tool:   domain.Tool{ID: id, Name: "Ladder", CreatedAt: time.Now()},
		Rating: domain.RatingStats{Mean: 4.5, Count: 2},
	}

	m.listing.EXPECT().GetDetails(mock.Anything, id).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tools/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ToolDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ladder", resp.Tool.Name)
	assert.Equal(t, 4.5, resp.MeanRating)
}

func TestHandler_GetTool_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/tools/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTool_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.listing.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrToolNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/tools/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SearchTools_Success(t *testing.T) {
	m, r := setupRouter(t)

	results := []rank.Result{
		{
			Tool:    &domain.Tool{ID: uuid.New().String(), Name: "Ladder", CreatedAt: time.Now()},
			Score:   5.6,
			Reasons: []string{"available for your dates", "matches your task: ladder"},
		},
	}

	m.search.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q domain.SearchQuery) bool {
		return q.Text == "ladder" && q.Start != nil && q.End != nil
	})).Return(results, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tools?q=ladder&start=2026-03-01&end=2026-03-03", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RankedToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 5.6, resp[0].Score)
	assert.Len(t, resp[0].Reasons, 2)
}

func TestHandler_SearchTools_UnpairedDates(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/tools?start=2026-03-01", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchTools_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/tools?start=bogus&end=2026-03-03", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteTool_Success(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()
	ownerID := uuid.New().String()

	m.listing.EXPECT().Delete(mock.Anything, toolID, ownerID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/tools/"+toolID, dto.DeleteToolRequest{OwnerID: ownerID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteTool_FutureBookings(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()
	ownerID := uuid.New().String()

	m.listing.EXPECT().Delete(mock.Anything, toolID, ownerID).Return(domain.ErrHasFutureBookings)

	w := doJSON(t, r, http.MethodDelete, "/api/tools/"+toolID, dto.DeleteToolRequest{OwnerID: ownerID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteTool_NotOwner(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()
	ownerID := uuid.New().String()

	m.listing.EXPECT().Delete(mock.Anything, toolID, ownerID).Return(domain.ErrNotOwnedByCaller)

	w := doJSON(t, r, http.MethodDelete, "/api/tools/"+toolID, dto.DeleteToolRequest{OwnerID: ownerID})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Bookings ---

func TestHandler_BookTool_Success(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()
	borrowerID := uuid.New().String()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ToolID:     toolID,
		BorrowerID: borrowerID,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		TotalCost:  60,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}

	m.booking.EXPECT().Book(mock.Anything, toolID, borrowerID, mock.Anything, mock.Anything).
		Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tools/"+toolID+"/book", dto.BookRequest{
		BorrowerID: borrowerID,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-03",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 60.0, resp.TotalCost)
}

func TestHandler_BookTool_InvalidToolID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tools/nope/book", dto.BookRequest{
		BorrowerID: uuid.New().String(),
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-03",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookTool_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tools/"+uuid.New().String()+"/book", dto.BookRequest{
		BorrowerID: uuid.New().String(),
		StartDate:  "March 1st",
		EndDate:    "2026-03-03",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookTool_NotAvailable(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()
	borrowerID := uuid.New().String()

	m.booking.EXPECT().Book(mock.Anything, toolID, borrowerID, mock.Anything, mock.Anything).
		Return(nil, domain.ErrNotAvailable)

	w := doJSON(t, r, http.MethodPost, "/api/tools/"+toolID+"/book", dto.BookRequest{
		BorrowerID: borrowerID,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-03",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	borrowerID := uuid.New().String()

	m.booking.EXPECT().Cancel(mock.Anything, bookingID, borrowerID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", dto.CancelRequest{
		BorrowerID: borrowerID,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	borrowerID := uuid.New().String()

	m.booking.EXPECT().Cancel(mock.Anything, bookingID, borrowerID).
		Return(domain.ErrBookingNotConfirmed)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", dto.CancelRequest{
		BorrowerID: borrowerID,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.BorrowerBooking{
		{
			Booking:  domain.Booking{ID: uuid.New().String(), Status: domain.BookingStatusConfirmed},
			ToolName: "Ladder",
		},
	}

	m.booking.EXPECT().ListByBorrower(mock.Anything, userID).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BorrowerBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Ladder", resp[0].ToolName)
}

func TestHandler_GetUserTools_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	tools := []*domain.Tool{
		{ID: uuid.New().String(), OwnerID: userID, Name: "Ladder", CreatedAt: time.Now()},
		{ID: uuid.New().String(), OwnerID: userID, Name: "Drill", CreatedAt: time.Now()},
	}

	m.listing.EXPECT().ListByOwner(mock.Anything, userID).Return(tools, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/tools", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ToolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/nope/bookings", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reviews ---

func TestHandler_AddReview_Success(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()
	reviewerID := uuid.New().String()
	review := &domain.Review{
		ID:         uuid.New().String(),
		ToolID:     toolID,
		ReviewerID: reviewerID,
		Rating:     5,
		Comment:    "great",
		CreatedAt:  time.Now(),
	}

	m.review.EXPECT().Add(mock.Anything, mock.Anything).Return(review, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tools/"+toolID+"/reviews", dto.AddReviewRequest{
		ReviewerID: reviewerID,
		Rating:     5,
		Comment:    "great",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Rating)
}

func TestHandler_AddReview_NotAllowed(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()

	m.review.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, domain.ErrReviewNotAllowed)

	w := doJSON(t, r, http.MethodPost, "/api/tools/"+toolID+"/reviews", dto.AddReviewRequest{
		ReviewerID: uuid.New().String(),
		Rating:     4,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_AddReview_RatingOutOfRange(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tools/"+uuid.New().String()+"/reviews", map[string]any{
		"reviewer_id": uuid.New().String(),
		"rating":      9,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListReviews_Success(t *testing.T) {
	m, r := setupRouter(t)

	toolID := uuid.New().String()
	reviews := []*domain.Review{
		{ID: uuid.New().String(), ToolID: toolID, Rating: 5, CreatedAt: time.Now()},
		{ID: uuid.New().String(), ToolID: toolID, Rating: 3, CreatedAt: time.Now()},
	}

	m.review.EXPECT().ListByTool(mock.Anything, toolID).Return(reviews, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tools/"+toolID+"/reviews", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]any{"name": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	m, r := setupRouter(t)

	users := []*domain.User{
		{ID: uuid.New().String(), Name: "Alice", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Bob", CreatedAt: time.Now()},
	}

	m.user.EXPECT().List(mock.Anything).Return(users, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.user.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused"))

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
