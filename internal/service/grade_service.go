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

// ── 成绩模块业务错误 ──

var (
	ErrGradeNotFound  = errors.New("成绩记录不存在")
	ErrInvalidScore   = errors.New("成绩必须在 0.0 到 5.0 之间")
	ErrInvalidCorte   = errors.New("corte 序号必须为 1-3")
	ErrNotCourseOwner = errors.New("无权操作该课程")
)

// GradeService 成绩业务接口
type GradeService interface {
	// SetCorte 录入/修改单个 corte 成绩
	// corte 写入与 final_grade 重算在同一事务内完成；事务提交后触发通知
	SetCorte(ctx context.Context, req *dto.SetCorteRequest, callerID string) (*dto.GradeResponse, error)
	// GetStudentGrade 学生查询自己在某课程的成绩记录
	GetStudentGrade(ctx context.Context, courseID, studentID string) (*dto.GradeResponse, error)
	// ListCourseGrades 教师查询课程全部成绩（仅课程所属教师）
	ListCourseGrades(ctx context.Context, courseID, callerID string) ([]dto.GradeResponse, error)
}

type gradeService struct {
	repo     *repository.Repository
	notifSvc NotificationService
	logger   *zap.Logger
}

// NewGradeService 创建 GradeService 实例
func NewGradeService(repo *repository.Repository, notifSvc NotificationService, logger *zap.Logger) GradeService {
	return &gradeService{repo: repo, notifSvc: notifSvc, logger: logger}
}

// ────────────────────── SetCorte ──────────────────────

func (s *gradeService) SetCorte(ctx context.Context, req *dto.SetCorteRequest, callerID string) (*dto.GradeResponse, error) {
	if req.Corte < 1 || req.Corte > 3 {
		return nil, ErrInvalidCorte
	}
	if req.Value == nil || !ValidScore(*req.Value) {
		return nil, ErrInvalidScore
	}

	// 归属校验：只有课程所属教师可以改分
	course, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}
	if course.TeacherID != callerID {
		return nil, ErrNotCourseOwner
	}

	// 事务：行级锁取成绩记录 → 写 corte → 重算 final_grade → 落库
	// 读方不会观察到 corte 与 final_grade 不一致的中间状态
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

	grade, err := txRepo.Grade.GetByStudentCourseForUpdate(ctx, req.StudentID, req.CourseID)
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		s.logger.Error("查询成绩记录失败",
			zap.String("course_id", req.CourseID),
			zap.String("student_id", req.StudentID),
			zap.Error(err))
		return nil, err
	}

	finalWasSet := grade.FinalGrade != nil

	grade.SetCorte(req.Corte, *req.Value)
	grade.FinalGrade = FinalGrade(grade.Corte1, grade.Corte2, grade.Corte3)

	if err := txRepo.Grade.Update(ctx, grade); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("更新成绩记录失败", zap.String("id", grade.GradeRecordID), zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	// 通知派发相对成绩写入为 fire-and-forget：
	// 写入已提交，派发失败只记日志，不回滚、不向教师报错
	evt := GradeChangeEvent{
		StudentID:     grade.StudentID,
		CourseName:    course.Name,
		Corte:         req.Corte,
		Value:         *req.Value,
		FinalGradeSet: grade.FinalGrade != nil && !finalWasSet,
	}
	if grade.FinalGrade != nil {
		evt.FinalGrade = *grade.FinalGrade
	}
	if err := s.notifSvc.OnGradeChanged(ctx, evt); err != nil {
		s.logger.Warn("成绩变更通知派发失败",
			zap.String("student_id", grade.StudentID),
			zap.Error(err))
	}

	return s.toGradeResponse(grade, s.studentOf(ctx, grade.StudentID)), nil
}

// ────────────────────── GetStudentGrade ──────────────────────

func (s *gradeService) GetStudentGrade(ctx context.Context, courseID, studentID string) (*dto.GradeResponse, error) {
	grade, err := s.repo.Grade.GetByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		s.logger.Error("查询成绩记录失败",
			zap.String("course_id", courseID),
			zap.String("student_id", studentID),
			zap.Error(err))
		return nil, err
	}

	return s.toGradeResponse(grade, s.studentOf(ctx, studentID)), nil
}

// ────────────────────── ListCourseGrades ──────────────────────

func (s *gradeService) ListCourseGrades(ctx context.Context, courseID, callerID string) ([]dto.GradeResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	if course.TeacherID != callerID {
		return nil, ErrNotCourseOwner
	}

	grades, err := s.repo.Grade.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程成绩失败", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.GradeResponse, 0, len(grades))
	for i := range grades {
		result = append(result, *s.toGradeResponse(&grades[i], grades[i].Student))
	}

	return result, nil
}

// ── 内部辅助方法 ──

// studentOf 取学生信息用于响应展示，查不到或查询失败时返回 nil，不阻断主流程
func (s *gradeService) studentOf(ctx context.Context, studentID string) *model.User {
	student, err := s.repo.User.GetByID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("查询学生信息失败", zap.String("student_id", studentID), zap.Error(err))
		}
		return nil
	}
	return student
}

func (s *gradeService) toGradeResponse(g *model.GradeRecord, student *model.User) *dto.GradeResponse {
	resp := &dto.GradeResponse{
		ID:           g.GradeRecordID,
		EnrollmentID: g.EnrollmentID,
		CourseID:     g.CourseID,
		StudentID:    g.StudentID,
		Corte1:       g.Corte1,
		Corte2:       g.Corte2,
		Corte3:       g.Corte3,
		FinalGrade:   g.FinalGrade,
		Progress:     Progress(g.Corte1, g.Corte2, g.Corte3),
		Status:       PassStatus(g.FinalGrade),
		UpdatedAt:    g.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if student != nil {
		resp.StudentName = student.FullName
	}
	return resp
}
