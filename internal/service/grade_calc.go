package service

import "math"

// ── 成绩计算（纯函数，无状态）──
//
// 派生值（总评、进度、通过状态）一律由存储的 corte 值即时计算，
// 只有 final_grade 在写入路径上落库（写时重算），避免读侧各自推导造成口径不一。

// 三个 corte 的固定权重（合计 1.0，浮点余量统一由 corte3 吸收）
const (
	WeightCorte1 = 0.30
	WeightCorte2 = 0.35
	WeightCorte3 = 0.35
)

// PassThreshold 及格线：0.0–5.0 等级制下 final_grade ≥ 3.0 为通过
const PassThreshold = 3.0

// 课程进度：每个已录入的 corte 贡献固定份额，
// corte3 吸收舍入余量，三项齐全时恰为 100 而不是 99.99
const (
	progressShareCorte1 = 33.33
	progressShareCorte2 = 33.33
	progressShareCorte3 = 33.34
)

// 通过状态
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// FinalGrade 计算期末总评
// 三个 corte 全部录入时返回加权和（round-half-up 保留 1 位小数），任一缺失返回 nil
//
// 分值落库为 numeric(3,1)，先化为整数十分位做精确十进制运算：
// 权重 0.30/0.35/0.35 即 6/20、7/20、7/20，逢五进位用整数除法完成，
// 避免二进制浮点把 2.85 这类恰好半值的加权和表示成略小的近似值而被舍去。
func FinalGrade(c1, c2, c3 *float64) *float64 {
	if c1 == nil || c2 == nil || c3 == nil {
		return nil
	}
	t1 := int64(math.Round(*c1 * 10))
	t2 := int64(math.Round(*c2 * 10))
	t3 := int64(math.Round(*c3 * 10))
	n := 6*t1 + 7*t2 + 7*t3
	final := float64((n+10)/20) / 10
	return &final
}

// Progress 计算课程进度百分比，返回 0–100 的整数（四舍五入到整数百分比）
func Progress(c1, c2, c3 *float64) int {
	var p float64
	if c1 != nil {
		p += progressShareCorte1
	}
	if c2 != nil {
		p += progressShareCorte2
	}
	if c3 != nil {
		p += progressShareCorte3
	}
	return int(math.Floor(p + 0.5))
}

// PassStatus 根据期末总评判定通过状态；总评未生成时返回空串
func PassStatus(final *float64) string {
	if final == nil {
		return ""
	}
	if *final >= PassThreshold {
		return StatusPassed
	}
	return StatusFailed
}

// ValidScore 校验 corte 分值是否在 [0.0, 5.0] 闭区间内
func ValidScore(v float64) bool {
	return v >= 0.0 && v <= 5.0
}
