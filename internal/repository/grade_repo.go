package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Daza111111/axx/internal/model"
)

// GradeRepository 成绩记录数据访问接口
type GradeRepository interface {
	Create(ctx context.Context, grade *model.GradeRecord) error
	GetByStudentCourse(ctx context.Context, studentID, courseID string) (*model.GradeRecord, error)
	// GetByStudentCourseForUpdate 使用 SELECT ... FOR UPDATE 行级锁查询成绩记录，
	// 保证 corte 写入与 final_grade 重算的原子性。必须在事务连接上调用。
	GetByStudentCourseForUpdate(ctx context.Context, studentID, courseID string) (*model.GradeRecord, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.GradeRecord, error)
	Update(ctx context.Context, grade *model.GradeRecord) error
	DeleteByCourse(ctx context.Context, courseID string) error
}

// gradeRepo GradeRepository 的 GORM 实现
type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo 创建 GradeRepository 实例
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) Create(ctx context.Context, grade *model.GradeRecord) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepo) GetByStudentCourse(ctx context.Context, studentID, courseID string) (*model.GradeRecord, error) {
	var grade model.GradeRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) GetByStudentCourseForUpdate(ctx context.Context, studentID, courseID string) (*model.GradeRecord, error) {
	var grade model.GradeRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) ListByCourse(ctx context.Context, courseID string) ([]model.GradeRecord, error) {
	var grades []model.GradeRecord
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("course_id = ?", courseID).
		Order("created_at ASC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *gradeRepo) Update(ctx context.Context, grade *model.GradeRecord) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *gradeRepo) DeleteByCourse(ctx context.Context, courseID string) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&model.GradeRecord{}).Error
}
