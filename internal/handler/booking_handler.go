package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sittha/dorm-booking/internal/dto"
	"github.com/sittha/dorm-booking/internal/middleware"
	"github.com/sittha/dorm-booking/internal/models"
	"github.com/sittha/dorm-booking/internal/service"
	"github.com/sittha/dorm-booking/pkg/upload"
)

type BookingHandler struct {
	svc   service.BookingService
	slips *upload.Store
}

func NewBookingHandler(svc service.BookingService, slips *upload.Store) *BookingHandler {
	return &BookingHandler{svc: svc, slips: slips}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	authed := e.Group("/api/bookings", middleware.RequireAuth(jwtSecret))
	authed.POST("", h.SubmitBooking)
	authed.GET("/me", h.ListMyBookings)

	admin := e.Group("/api/admin/bookings", middleware.RequireAuth(jwtSecret), middleware.RequireAdmin())
	admin.GET("", h.ListAllBookings)
	admin.POST("/:id/approve", h.ApproveBooking)
	admin.POST("/:id/reject", h.RejectBooking)
}

func (h *BookingHandler) SubmitBooking(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
	}

	var req dto.SubmitBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RoomID == 0 || req.TermID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "room_id and term_id are required")
	}
	method := models.PayMethod(req.PayMethod)
	if method != models.PaySlip && method != models.PayOnline {
		return echo.NewHTTPError(http.StatusBadRequest, "pay_method must be slip or online")
	}

	// Stage the slip before the admission decision runs; discard it again on
	// any failure so no orphaned uploads remain.
	var slipRef *string
	if method == models.PaySlip {
		if file, err := c.FormFile("slip"); err == nil {
			src, err := file.Open()
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "unreadable slip file")
			}
			ref, err := h.slips.Save(src, file.Filename)
			src.Close()
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to store slip")
			}
			slipRef = &ref
		}
	}

	booking, err := h.svc.Submit(c.Request().Context(), service.SubmitInput{
		UserID:    claims.UserID,
		RoomID:    req.RoomID,
		TermID:    req.TermID,
		PayMethod: method,
		Note:      req.Note,
		SlipURL:   slipRef,
	})
	if err != nil {
		if slipRef != nil {
			_ = h.slips.Remove(*slipRef)
		}
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDuplicateBooking):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrRoomFull):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrMissingSlip):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
	}

	bookings, err := h.svc.ListByUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListAllBookings(c echo.Context) error {
	bookings, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ApproveBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.Approve(c.Request().Context(), uint(bookingID), actorFrom(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound), errors.Is(err, service.ErrRoomNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRoomFull), errors.Is(err, service.ErrNotPending):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) RejectBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.Reject(c.Request().Context(), uint(bookingID), actorFrom(c))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func actorFrom(c echo.Context) string {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return "unknown"
	}
	return fmt.Sprintf("admin:%d", claims.UserID)
}
