package controllers

import (
	"hotelops/constants"
	"hotelops/dto"
	"hotelops/response"
	"hotelops/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) CustomerController {
	return CustomerController{Customers: customers}
}

func (cc CustomerController) CreateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	customer, err := cc.Customers.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.ToCustomerResponse(*customer))
}

func (cc CustomerController) GetCustomers(c *gin.Context) {
	var query dto.PageQuery
	if err := bindQuery(c, &query); err != nil {
		fail(c, err)
		return
	}
	page, limit := pageLimit(query.Page, query.Limit, constants.DefaultLimit)

	list, total, err := cc.Customers.List(c.Request.Context(), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.SuccessWithPagination(c, dto.ToCustomerResponses(list), page, limit, int(total))
}

func (cc CustomerController) GetCustomerDetail(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	customer, err := cc.Customers.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToCustomerResponse(*customer))
}
