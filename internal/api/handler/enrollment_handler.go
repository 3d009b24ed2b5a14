package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Daza111111/axx/internal/dto"
	"github.com/Daza111111/axx/internal/service"
	"github.com/Daza111111/axx/pkg/response"
)

// EnrollmentHandler 选课模块 HTTP 处理器
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler 创建 EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// Redeem 学生凭访问码加入课程
// POST /api/v1/enrollments
func (h *EnrollmentHandler) Redeem(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.enrollmentSvc.Redeem(c.Request.Context(), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccessCodeNotFound):
			response.NotFound(c, 31001, "访问码无效")
		case errors.Is(err, service.ErrAlreadyEnrolled):
			response.BadRequest(c, 31002, "已加入该课程")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}
