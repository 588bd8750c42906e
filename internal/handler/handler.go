package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/handler/dto"
	"github.com/mauryatalluru/neartools/internal/rank"
	"github.com/wb-go/wbf/ginext"
)

type ListingSvc interface {
	CreateTool(ctx context.Context, input domain.CreateToolInput) (*domain.Tool, error)
	GetDetails(ctx context.Context, id string) (*domain.ToolDetails, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tool, error)
	Delete(ctx context.Context, toolID, ownerID string) error
}

type SearchSvc interface {
	Search(ctx context.Context, query domain.SearchQuery) ([]rank.Result, error)
}

type BookingSvc interface {
	Book(ctx context.Context, toolID, borrowerID string, start, end time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, borrowerID string) error
	ListByBorrower(ctx context.Context, borrowerID string) ([]*domain.BorrowerBooking, error)
}

type ReviewSvc interface {
	Add(ctx context.Context, input domain.AddReviewInput) (*domain.Review, error)
	ListByTool(ctx context.Context, toolID string) ([]*domain.Review, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	listingService ListingSvc
	searchService  SearchSvc
	bookingService BookingSvc
	reviewService  ReviewSvc
	userService    UserSvc
}

func NewHandler(
	listingService ListingSvc,
	searchService SearchSvc,
	bookingService BookingSvc,
	reviewService ReviewSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		listingService: listingService,
		searchService:  searchService,
		bookingService: bookingService,
		reviewService:  reviewService,
		userService:    userService,
	}
}

// Tools

func (h *Handler) CreateTool(c *ginext.Context) {
	var req dto.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	from, ok := h.optionalDate(c, req.AvailableFrom, "available_from")
	if !ok {
		return
	}
	to, ok := h.optionalDate(c, req.AvailableTo, "available_to")
	if !ok {
		return
	}

	input := domain.CreateToolInput{
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		DailyPrice:    req.DailyPrice,
		Location:      req.Location,
		AvailableFrom: from,
		AvailableTo:   to,
	}

	tool, err := h.listingService.CreateTool(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToToolResponse(tool))
}

func (h *Handler) GetTool(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tool id"})
		return
	}

	details, err := h.listingService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToToolDetailsResponse(details))
}

// SearchTools ranks listings for the query. Dates are optional but must
// come as a pair.
func (h *Handler) SearchTools(c *ginext.Context) {
	query := domain.SearchQuery{
		Text:     c.Query("q"),
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}

	startRaw, endRaw := c.Query("start"), c.Query("end")
	if (startRaw == "") != (endRaw == "") {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start and end must be supplied together",
		})
		return
	}
	if startRaw != "" {
		start, err := time.Parse(dto.DateLayout, startRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start date, expected YYYY-MM-DD"})
			return
		}
		end, err := time.Parse(dto.DateLayout, endRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end date, expected YYYY-MM-DD"})
			return
		}
		query.Start, query.End = &start, &end
	}

	results, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RankedToolResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.ToRankedToolResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteTool(c *ginext.Context) {
	toolID := c.Param("id")
	if _, err := uuid.Parse(toolID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tool id"})
		return
	}

	var req dto.DeleteToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), toolID, req.OwnerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

func (h *Handler) BookTool(c *ginext.Context) {
	toolID := c.Param("id")
	if _, err := uuid.Parse(toolID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tool id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), toolID, req.BorrowerID, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), bookingID, req.BorrowerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByBorrower(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BorrowerBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBorrowerBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserTools(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	tools, err := h.listingService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ToolResponse, 0, len(tools))
	for _, t := range tools {
		resp = append(resp, dto.ToToolResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Reviews

func (h *Handler) AddReview(c *ginext.Context) {
	toolID := c.Param("id")
	if _, err := uuid.Parse(toolID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tool id"})
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.reviewService.Add(c.Request.Context(), domain.AddReviewInput{
		ToolID:     toolID,
		ReviewerID: req.ReviewerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ListReviews(c *ginext.Context) {
	toolID := c.Param("id")
	if _, err := uuid.Parse(toolID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tool id"})
		return
	}

	reviews, err := h.reviewService.ListByTool(c.Request.Context(), toolID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Location:       req.Location,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) optionalDate(c *ginext.Context, raw, field string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + field + ", expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &t, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrToolNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAvailable),
		errors.Is(err, domain.ErrBookingNotConfirmed),
		errors.Is(err, domain.ErrHasFutureBookings),
		errors.Is(err, domain.ErrReviewNotAllowed),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwnedByCaller):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
