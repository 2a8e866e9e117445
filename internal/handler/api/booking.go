package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		bookingQueries: bookingQueries,
	}
}

// @Summary Quote booking price
// @Description Compute the price breakdown for the current wizard selection
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) QuotePrice(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid request format"},
		})
		return
	}

	breakdown, err := h.bookingUseCase.QuotePrice(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPriceBreakdown(breakdown))
}

// @Summary Create booking
// @Description Submit a booking; the server recomputes the price and rejects a stale quote
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid request format"},
		})
		return
	}

	view, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req.ToParams(userID))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingDetailView(view))
}

// @Summary List bookings
// @Description List bookings with optional status/date narrowing, sorting, and free-text search
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param from query string false "Earliest check-in date (YYYY-MM-DD)"
// @Param to query string false "Latest check-in date (YYYY-MM-DD)"
// @Param sort query string false "Sort field" Enums(id, customer, check_in, status, payment_status, total, created_at)
// @Param direction query string false "Sort direction" Enums(asc, desc)
// @Param q query string false "Free-text filter"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": err.Error()},
		})
		return
	}

	sortSpec := queries.ParseSortSpec(c.Query("sort"), c.Query("direction"))

	views, err := h.bookingQueries.List(c.Request.Context(), filter, sortSpec, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}

	c.JSON(http.StatusOK, toListResponse(views))
}

// @Summary List own bookings
// @Description List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/mine [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
		return
	}

	c.JSON(http.StatusOK, toListResponse(views))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid booking ID format"},
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingDetailView(view))
}

// @Summary Update booking status
// @Description Change a booking's status; the payment status is derived and persisted with it
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid booking ID format"},
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid request format"},
		})
		return
	}

	view, err := h.bookingUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingDetailView(view))
}

// @Summary Delete booking
// @Description Delete a booking by ID
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid booking ID format"},
		})
		return
	}

	if err := h.bookingUseCase.DeleteBooking(c.Request.Context(), id); err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"message": "Room not found"},
		})
	case errors.Is(err, usecase.ErrExtraNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"message": "Extra not found"},
		})
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"message": "Booking not found"},
		})
	case errors.Is(err, usecase.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"message": "Invalid booking status"},
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{"message": "Booking validation failed"},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"message": "Internal server error"},
		})
	}
}

func toListResponse(views []*queries.BookingView) []*resdto.BookingListItemResponse {
	items := make([]*resdto.BookingListItemResponse, len(views))
	for i, v := range views {
		items[i] = resdto.FromBookingView(v)
	}
	return items
}

func parseListFilter(c *gin.Context) (queries.ListFilter, error) {
	var filter queries.ListFilter

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if from := c.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return queries.ListFilter{}, errors.New("invalid 'from' date")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return queries.ListFilter{}, errors.New("invalid 'to' date")
		}
		filter.To = &t
	}

	return filter, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
