package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Daza111111/axx/internal/dto"
	"github.com/Daza111111/axx/internal/service"
	"github.com/Daza111111/axx/pkg/response"
)

// GradeHandler 成绩模块 HTTP 处理器
type GradeHandler struct {
	gradeSvc service.GradeService
}

// NewGradeHandler 创建 GradeHandler
func NewGradeHandler(gradeSvc service.GradeService) *GradeHandler {
	return &GradeHandler{gradeSvc: gradeSvc}
}

// SetCorte 教师录入或更新某一 corte 成绩
// POST /api/v1/grades
func (h *GradeHandler) SetCorte(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetCorteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	grade, err := h.gradeSvc.SetCorte(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.OK(c, grade)
}

// ListCourseGrades 课程全体学生成绩（仅所属教师）
// GET /api/v1/grades/course/:id
func (h *GradeHandler) ListCourseGrades(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	grades, err := h.gradeSvc.ListCourseGrades(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.OK(c, grades)
}

// GetMyGrade 学生查看自己在某课程的成绩
// GET /api/v1/grades/student/course/:id
func (h *GradeHandler) GetMyGrade(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	grade, err := h.gradeSvc.GetStudentGrade(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.handleGradeError(c, err)
		return
	}

	response.OK(c, grade)
}

// ── 错误映射 ──

func (h *GradeHandler) handleGradeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 30001, "课程不存在")
	case errors.Is(err, service.ErrNotCourseOwner):
		response.Forbidden(c, 30003, "无权操作该课程")
	case errors.Is(err, service.ErrGradeNotFound):
		response.NotFound(c, 32001, "成绩记录不存在")
	case errors.Is(err, service.ErrInvalidScore):
		response.BadRequest(c, 32002, "成绩须在 0.0 至 5.0 之间")
	case errors.Is(err, service.ErrInvalidCorte):
		response.BadRequest(c, 32003, "corte 序号须为 1、2 或 3")
	default:
		response.InternalError(c)
	}
}
