package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Daza111111/axx/internal/dto"
	"github.com/Daza111111/axx/internal/service"
	"github.com/Daza111111/axx/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc     service.CourseService
	enrollmentSvc service.EnrollmentService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService, enrollmentSvc service.EnrollmentService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc, enrollmentSvc: enrollmentSvc}
}

// CreateCourse 创建课程（教师）
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, course)
}

// ListTeacherCourses 教师名下课程列表
// GET /api/v1/courses/teacher
func (h *CourseHandler) ListTeacherCourses(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	courses, err := h.enrollmentSvc.ListTeacherCourses(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}

// ListStudentCourses 学生已加入课程列表
// GET /api/v1/courses/student
func (h *CourseHandler) ListStudentCourses(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	courses, err := h.enrollmentSvc.ListStudentCourses(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}

// GetCourse 课程详情（所属教师或已选课学生）
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), c.Param("id"), callerID, role)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// UpdateCourse 更新课程（仅所属教师）
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// DeleteCourse 删除课程及其选课与成绩（仅所属教师）
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// ListStudents 课程学生名单（仅所属教师）
// GET /api/v1/courses/:id/students
func (h *CourseHandler) ListStudents(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	students, err := h.courseSvc.ListStudents(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, students)
}

// ── 错误映射 ──

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 30001, "课程不存在")
	case errors.Is(err, service.ErrCourseCodeExists):
		response.BadRequest(c, 30002, "课程代码已存在")
	case errors.Is(err, service.ErrNotCourseOwner):
		response.Forbidden(c, 30003, "无权操作该课程")
	case errors.Is(err, service.ErrNotEnrolled):
		response.Forbidden(c, 30004, "未加入该课程")
	default:
		response.InternalError(c)
	}
}
