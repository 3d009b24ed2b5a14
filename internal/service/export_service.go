package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Daza111111/axx/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoGrades     = errors.New("该课程暂无成绩记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 课程成绩导出为 Excel (.xlsx)，一行一个学生，列为三个 corte、总评与状态
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportCourseGrades 导出课程成绩表（仅课程所属教师）
	ExportCourseGrades(ctx context.Context, courseID, callerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportCourseGrades — 导出课程成绩为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：课程名 (课程代码) — 学期
//   - 表头：学生 | Corte 1 (30%) | Corte 2 (35%) | Corte 3 (35%) | 总评 | 状态
//   - 未录入的 corte 显示 "-"
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportCourseGrades(ctx context.Context, courseID, callerID string) (*bytes.Buffer, string, error) {
	// 1. 查询课程并校验归属
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("id", courseID), zap.Error(err))
		return nil, "", err
	}
	if course.TeacherID != callerID {
		return nil, "", ErrNotCourseOwner
	}

	// 2. 查询成绩记录（含学生信息）
	grades, err := s.repo.Grade.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程成绩失败", zap.String("id", courseID), zap.Error(err))
		return nil, "", err
	}
	if len(grades) == 0 {
		return nil, "", ErrExportNoGrades
	}

	// 3. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "成绩表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s (%s) — %s", course.Name, course.Code, course.AcademicPeriod))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"学生", "Corte 1 (30%)", "Corte 2 (35%)", "Corte 3 (35%)", "总评", "状态"}
	for i, h := range headers {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cellName, h)
		f.SetCellStyle(sheetName, cellName, cellName, headerStyle)
	}

	// 数据行
	for row, g := range grades {
		studentName := g.StudentID
		if g.Student != nil {
			studentName = g.Student.FullName
		}

		values := []interface{}{
			studentName,
			scoreCell(g.Corte1),
			scoreCell(g.Corte2),
			scoreCell(g.Corte3),
			scoreCell(g.FinalGrade),
			statusCell(PassStatus(g.FinalGrade)),
		}
		for col, v := range values {
			cellName, _ := excelize.CoordinatesToCellName(col+1, row+3)
			f.SetCellValue(sheetName, cellName, v)
		}
	}

	// 4. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("成绩表_%s.xlsx", course.Code)
	return buf, filename, nil
}

// ── 辅助函数 ──

func scoreCell(v *float64) interface{} {
	if v == nil {
		return "-"
	}
	return *v
}

func statusCell(status string) string {
	switch status {
	case StatusPassed:
		return "通过"
	case StatusFailed:
		return "未通过"
	default:
		return "-"
	}
}
