package controllers

import (
	"hotelops/dto"
	"hotelops/response"
	"hotelops/services"

	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	Facade      *services.BookingFacade
	Maintenance *services.MaintenanceService
}

func NewMaintenanceController(facade *services.BookingFacade, maintenance *services.MaintenanceService) MaintenanceController {
	return MaintenanceController{
		Facade:      facade,
		Maintenance: maintenance,
	}
}

func (mc MaintenanceController) ReportIssue(c *gin.Context) {
	roomID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.ReportIssueRequest
	if err := bindJSON(c, &req); err != nil {
		fail(c, err)
		return
	}

	issue, err := mc.Facade.ReportIssue(c.Request.Context(), roomID, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.ToIssueResponse(*issue, mc.Maintenance.Today()))
}

func (mc MaintenanceController) GetRoomIssues(c *gin.Context) {
	roomID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}

	var query dto.IssueQuery
	if err := bindQuery(c, &query); err != nil {
		fail(c, err)
		return
	}

	issues, err := mc.Maintenance.ListByRoom(c.Request.Context(), roomID, query.OpenOnly)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToIssueResponses(issues, mc.Maintenance.Today()))
}

func (mc MaintenanceController) ResolveIssue(c *gin.Context) {
	roomID, err := paramID(c, "id")
	if err != nil {
		fail(c, err)
		return
	}
	issueID, err := paramID(c, "issueId")
	if err != nil {
		fail(c, err)
		return
	}

	var req dto.ResolveIssueRequest
	if c.Request.ContentLength > 0 {
		if err := bindJSON(c, &req); err != nil {
			fail(c, err)
			return
		}
	}

	issue, err := mc.Facade.ResolveIssue(c.Request.Context(), roomID, issueID, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToIssueResponse(*issue, mc.Maintenance.Today()))
}

// GetOverdueIssues sự cố còn mở đã quá ngày dự kiến, chỉ để tham khảo
func (mc MaintenanceController) GetOverdueIssues(c *gin.Context) {
	issues, err := mc.Maintenance.ListOverdue(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.ToIssueResponses(issues, mc.Maintenance.Today()))
}
