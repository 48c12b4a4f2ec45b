package controllers

import (
	"hotelops/constants"
	"hotelops/dto"
	"hotelops/response"
	"hotelops/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Facade       *services.BookingFacade
	Reservations *services.ReservationService
}

func NewReservationController(facade *services.BookingFacade, reservations *services.ReservationService) ReservationController {
	return ReservationController{
		Facade:       facade,
		Reservations: reservations,
	}
}

func (rc ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	reservation, err := rc.Facade.CreateReservation(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, dto.ReservationCreatedResponse{
		ID:    reservation.ID,
		Price: reservation.Price,
	})
}

func (rc ReservationController) GetReservations(c *gin.Context) {
	var query dto.ReservationQuery
	if err := bindQuery(c, &query); err != nil {
		fail(c, err)
		return
	}
	query.Page, query.Limit = pageLimit(query.Page, query.Limit, constants.DefaultLimit)

	list, total, err := rc.Reservations.List(c.Request.Context(), query)
	if err != nil {
		fail(c, err)
		return
	}

	response.SuccessWithPagination(c, dto.ToReservationResponses(list), query.Page, query.Limit, int(total))
}

func (rc ReservationController) GetReservationDetail(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	reservation, err := rc.Reservations.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToReservationResponse(*reservation))
}

func (rc ReservationController) UpdateReservation(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.UpdateReservationRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	reservation, err := rc.Facade.UpdateReservation(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToReservationResponse(*reservation))
}

func (rc ReservationController) CheckIn(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	reservation, err := rc.Facade.CheckIn(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToReservationResponse(*reservation))
}

func (rc ReservationController) CheckOut(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	reservation, err := rc.Facade.CheckOut(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToReservationResponse(*reservation))
}

// CancelReservation: body không bắt buộc, chỉ chứa lý do hủy
func (rc ReservationController) CancelReservation(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.CancelReservationRequest
	if c.Request.ContentLength > 0 {
		if err := bindJSON(c, &req); err != nil {
			fail(c, err)
			return
		}
	}

	reservation, err := rc.Facade.CancelReservation(c.Request.Context(), id, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToReservationResponse(*reservation))
}
