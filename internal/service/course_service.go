package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Daza111111/axx/internal/dto"
	"github.com/Daza111111/axx/internal/model"
	"github.com/Daza111111/axx/internal/repository"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound   = errors.New("课程不存在")
	ErrCourseCodeExists = errors.New("课程代码已存在")
	ErrNotEnrolled      = errors.New("未加入该课程")
)

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest, teacherID string) (*dto.CourseResponse, error)
	// GetByID 按归属返回课程：所属教师或已选课学生可见，其余 Forbidden
	GetByID(ctx context.Context, id, callerID, callerRole string) (*dto.CourseResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCourseRequest, callerID string) (*dto.CourseResponse, error)
	// Delete 删除课程及其全部选课关系与成绩记录（同一事务）
	Delete(ctx context.Context, id, callerID string) error
	// ListStudents 课程学生名单（仅课程所属教师）
	ListStudents(ctx context.Context, courseID, callerID string) ([]dto.CourseStudentResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest, teacherID string) (*dto.CourseResponse, error) {
	// 课程代码唯一性检查（数据库唯一索引兜底）
	if _, err := s.repo.Course.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrCourseCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	accessCode, err := generateAccessCode()
	if err != nil {
		s.logger.Error("生成访问码失败", zap.Error(err))
		return nil, err
	}

	course := &model.Course{
		Name:           req.Name,
		Code:           req.Code,
		Description:    req.Description,
		AcademicPeriod: req.AcademicPeriod,
		TeacherID:      teacherID,
		AccessCode:     accessCode,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCourseCodeExists
		}
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course, true), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id, callerID, callerRole string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if callerRole == model.RoleTeacher {
		if course.TeacherID != callerID {
			return nil, ErrNotCourseOwner
		}
		return toCourseResponse(course, true), nil
	}

	// 学生必须已加入该课程
	if _, err := s.repo.Enrollment.GetByStudentCourse(ctx, callerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		s.logger.Error("查询选课关系失败", zap.Error(err))
		return nil, err
	}

	return toCourseSummary(course), nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, id string, req *dto.UpdateCourseRequest, callerID string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if course.TeacherID != callerID {
		return nil, ErrNotCourseOwner
	}

	if req.Code != nil && *req.Code != course.Code {
		if _, err := s.repo.Course.GetByCode(ctx, *req.Code); err == nil {
			return nil, ErrCourseCodeExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		course.Code = *req.Code
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.AcademicPeriod != nil {
		course.AcademicPeriod = *req.AcademicPeriod
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course, true), nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id, callerID string) error {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if course.TeacherID != callerID {
		return ErrNotCourseOwner
	}

	// 级联删除：成绩记录 → 选课关系 → 课程（同一事务）
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return err
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

	if err := txRepo.Grade.DeleteByCourse(ctx, id); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除课程成绩失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := txRepo.Enrollment.DeleteByCourse(ctx, id); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除选课关系失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := txRepo.Course.Delete(ctx, id); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return err
		}
	}

	return nil
}

// ────────────────────── ListStudents ──────────────────────

func (s *courseService) ListStudents(ctx context.Context, courseID, callerID string) ([]dto.CourseStudentResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", courseID), zap.Error(err))
		return nil, err
	}
	if course.TeacherID != callerID {
		return nil, ErrNotCourseOwner
	}

	enrollments, err := s.repo.Enrollment.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程学生失败", zap.String("id", courseID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseStudentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		item := dto.CourseStudentResponse{
			UserID:     e.StudentID,
			EnrolledAt: e.EnrolledAt.Format("2006-01-02T15:04:05Z"),
		}
		if e.Student != nil {
			item.FullName = e.Student.FullName
			item.Email = e.Student.Email
		}
		result = append(result, item)
	}

	return result, nil
}

// ── 内部辅助方法 ──

// accessCodeBytes 访问码随机字节数，base64url 编码后为 11 字符
const accessCodeBytes = 8

// generateAccessCode 生成全局唯一的课程访问码
func generateAccessCode() (string, error) {
	buf := make([]byte, accessCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// toCourseResponse 构造课程响应；withAccessCode 控制是否携带访问码（仅教师可见）
func toCourseResponse(c *model.Course, withAccessCode bool) *dto.CourseResponse {
	resp := &dto.CourseResponse{
		ID:             c.CourseID,
		Name:           c.Name,
		Code:           c.Code,
		Description:    c.Description,
		AcademicPeriod: c.AcademicPeriod,
		TeacherID:      c.TeacherID,
		CreatedAt:      c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if withAccessCode {
		resp.AccessCode = c.AccessCode
	}
	return resp
}
