package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sittha/dorm-booking/internal/dto"
	"github.com/sittha/dorm-booking/internal/repository"
	"github.com/sittha/dorm-booking/internal/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/rooms", h.ListRooms)
	e.GET("/api/terms", h.ListTerms)
}

func (h *CatalogHandler) ListRooms(c echo.Context) error {
	filter := repository.RoomFilter{
		Gender:  c.QueryParam("gender"),
		Type:    c.QueryParam("type"),
		Cooling: c.QueryParam("cooling"),
		Query:   c.QueryParam("q"),
	}

	rooms, err := h.svc.ListRooms(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = dto.ToRoomResponse(r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListTerms(c echo.Context) error {
	terms, err := h.svc.ListTerms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TermResponse, len(terms))
	for i := range terms {
		resp[i] = dto.ToTermResponse(&terms[i])
	}
	return c.JSON(http.StatusOK, resp)
}
