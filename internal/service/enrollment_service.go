package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Daza111111/axx/internal/dto"
	"github.com/Daza111111/axx/internal/model"
	"github.com/Daza111111/axx/internal/repository"
)

// ── 选课模块业务错误 ──

var (
	ErrAccessCodeNotFound = errors.New("访问码无效")
	ErrAlreadyEnrolled    = errors.New("已加入该课程")
)

// EnrollmentService 选课业务接口
type EnrollmentService interface {
	// Redeem 学生兑换访问码加入课程
	// 课程查找、(student, course) 唯一性检查、选课与空白成绩记录的创建
	// 在同一事务内完成（both-or-neither）；并发兑换同一访问码时败者收到 ErrAlreadyEnrolled
	Redeem(ctx context.Context, req *dto.RedeemRequest, studentID string) (*dto.RedeemResponse, error)
	// ListStudentCourses 学生已加入的课程
	ListStudentCourses(ctx context.Context, studentID string) ([]dto.CourseResponse, error)
	// ListTeacherCourses 教师名下的课程（含访问码）
	ListTeacherCourses(ctx context.Context, teacherID string) ([]dto.CourseResponse, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

// ────────────────────── Redeem ──────────────────────

func (s *enrollmentService) Redeem(ctx context.Context, req *dto.RedeemRequest, studentID string) (*dto.RedeemResponse, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	// 行级锁定课程，串行化同一访问码的并发兑换
	course, err := txRepo.Course.GetByAccessCodeForUpdate(ctx, req.AccessCode)
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessCodeNotFound
		}
		s.logger.Error("按访问码查询课程失败", zap.Error(err))
		return nil, err
	}

	// 唯一性检查（事务内）；(student_id, course_id) 唯一索引兜底
	if _, err := txRepo.Enrollment.GetByStudentCourse(ctx, studentID, course.CourseID); err == nil {
		if tx != nil {
			tx.Rollback()
		}
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("查询选课关系失败", zap.Error(err))
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID: studentID,
		CourseID:  course.CourseID,
	}
	if err := txRepo.Enrollment.Create(ctx, enrollment); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		s.logger.Error("创建选课关系失败", zap.Error(err))
		return nil, err
	}

	// 空白成绩记录与选课同事务创建（三个 corte 均未录入）
	grade := &model.GradeRecord{
		EnrollmentID: enrollment.EnrollmentID,
		CourseID:     course.CourseID,
		StudentID:    studentID,
	}
	if err := txRepo.Grade.Create(ctx, grade); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("创建成绩记录失败", zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrAlreadyEnrolled
			}
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	return &dto.RedeemResponse{
		EnrollmentID: enrollment.EnrollmentID,
		EnrolledAt:   enrollment.EnrolledAt.Format("2006-01-02T15:04:05Z"),
		Course:       *toCourseSummary(course),
	}, nil
}

// ────────────────────── ListStudentCourses ──────────────────────

func (s *enrollmentService) ListStudentCourses(ctx context.Context, studentID string) ([]dto.CourseResponse, error) {
	enrollments, err := s.repo.Enrollment.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询选课关系失败", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}

	courseIDs := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	courses, err := s.repo.Course.ListByIDs(ctx, courseIDs)
	if err != nil {
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseSummary(&courses[i]))
	}

	return result, nil
}

// ────────────────────── ListTeacherCourses ──────────────────────

func (s *enrollmentService) ListTeacherCourses(ctx context.Context, teacherID string) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("查询教师课程失败", zap.String("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i], true))
	}

	return result, nil
}

// ── 内部辅助方法 ──

// toCourseSummary 面向学生的课程摘要（不含访问码）
func toCourseSummary(c *model.Course) *dto.CourseResponse {
	return toCourseResponse(c, false)
}
