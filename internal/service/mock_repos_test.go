package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Daza111111/axx/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
	nextID  int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	for _, c := range m.courses {
		if c.Code == course.Code || c.AccessCode == course.AccessCode {
			return gorm.ErrDuplicatedKey
		}
	}
	if course.CourseID == "" {
		m.nextID++
		course.CourseID = fmt.Sprintf("course-%d", m.nextID)
	}
	course.CreatedAt = time.Now()
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByCode(_ context.Context, code string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByAccessCode(_ context.Context, accessCode string) (*model.Course, error) {
	for _, c := range m.courses {
		if c.AccessCode == accessCode {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) GetByAccessCodeForUpdate(ctx context.Context, accessCode string) (*model.Course, error) {
	return m.GetByAccessCode(ctx, accessCode)
}

func (m *mockCourseRepo) ListByTeacher(_ context.Context, teacherID string) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		if c.TeacherID == teacherID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockCourseRepo) ListByIDs(_ context.Context, ids []string) ([]model.Course, error) {
	var result []model.Course
	for _, id := range ids {
		if c, ok := m.courses[id]; ok {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	delete(m.courses, id)
	return nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments map[string]*model.Enrollment
	nextID      int
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[string]*model.Enrollment)}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	for _, e := range m.enrollments {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			return gorm.ErrDuplicatedKey
		}
	}
	if enrollment.EnrollmentID == "" {
		m.nextID++
		enrollment.EnrollmentID = fmt.Sprintf("enr-%d", m.nextID)
	}
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now()
	}
	m.enrollments[enrollment.EnrollmentID] = enrollment
	return nil
}

func (m *mockEnrollmentRepo) GetByStudentCourse(_ context.Context, studentID, courseID string) (*model.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EnrolledAt.After(result[j].EnrolledAt) })
	return result, nil
}

func (m *mockEnrollmentRepo) ListByCourse(_ context.Context, courseID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.CourseID == courseID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EnrolledAt.Before(result[j].EnrolledAt) })
	return result, nil
}

func (m *mockEnrollmentRepo) DeleteByCourse(_ context.Context, courseID string) error {
	for id, e := range m.enrollments {
		if e.CourseID == courseID {
			delete(m.enrollments, id)
		}
	}
	return nil
}

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	grades map[string]*model.GradeRecord
	nextID int
}

func newMockGradeRepo() *mockGradeRepo {
	return &mockGradeRepo{grades: make(map[string]*model.GradeRecord)}
}

func (m *mockGradeRepo) Create(_ context.Context, grade *model.GradeRecord) error {
	for _, g := range m.grades {
		if g.EnrollmentID == grade.EnrollmentID {
			return gorm.ErrDuplicatedKey
		}
	}
	if grade.GradeRecordID == "" {
		m.nextID++
		grade.GradeRecordID = fmt.Sprintf("grade-%d", m.nextID)
	}
	m.grades[grade.GradeRecordID] = grade
	return nil
}

func (m *mockGradeRepo) GetByStudentCourse(_ context.Context, studentID, courseID string) (*model.GradeRecord, error) {
	for _, g := range m.grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeRepo) GetByStudentCourseForUpdate(ctx context.Context, studentID, courseID string) (*model.GradeRecord, error) {
	return m.GetByStudentCourse(ctx, studentID, courseID)
}

func (m *mockGradeRepo) ListByCourse(_ context.Context, courseID string) ([]model.GradeRecord, error) {
	var result []model.GradeRecord
	for _, g := range m.grades {
		if g.CourseID == courseID {
			result = append(result, *g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GradeRecordID < result[j].GradeRecordID })
	return result, nil
}

func (m *mockGradeRepo) Update(_ context.Context, grade *model.GradeRecord) error {
	m.grades[grade.GradeRecordID] = grade
	return nil
}

func (m *mockGradeRepo) DeleteByCourse(_ context.Context, courseID string) error {
	for id, g := range m.grades {
		if g.CourseID == courseID {
			delete(m.grades, id)
		}
	}
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications map[string]*model.Notification
	nextID        int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{notifications: make(map[string]*model.Notification)}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if notification.NotificationID == "" {
		m.nextID++
		notification.NotificationID = fmt.Sprintf("notif-%d", m.nextID)
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	m.notifications[notification.NotificationID] = notification
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id string) (*model.Notification, error) {
	if n, ok := m.notifications[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			result = append(result, *n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].NotificationID > result[j].NotificationID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) Update(_ context.Context, notification *model.Notification) error {
	m.notifications[notification.NotificationID] = notification
	return nil
}
