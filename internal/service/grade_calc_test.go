package service

import "testing"

func fp(v float64) *float64 { return &v }

// ── FinalGrade ──

func TestFinalGrade_AllSet(t *testing.T) {
	// 0.30*4.0 + 0.35*3.5 + 0.35*4.5 = 1.2 + 1.225 + 1.575 = 4.0
	final := FinalGrade(fp(4.0), fp(3.5), fp(4.5))
	if final == nil {
		t.Fatal("三个 corte 齐全时总评不应为 nil")
	}
	if *final != 4.0 {
		t.Errorf("期望总评=4.0，实际=%v", *final)
	}
}

func TestFinalGrade_PartialMissing(t *testing.T) {
	cases := []struct {
		name       string
		c1, c2, c3 *float64
	}{
		{"全空", nil, nil, nil},
		{"仅corte1", fp(4.0), nil, nil},
		{"仅corte2", nil, fp(4.0), nil},
		{"仅corte3", nil, nil, fp(4.0)},
		{"缺corte3", fp(4.0), fp(3.5), nil},
		{"缺corte2", fp(4.0), nil, fp(4.5)},
		{"缺corte1", nil, fp(3.5), fp(4.5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if final := FinalGrade(tc.c1, tc.c2, tc.c3); final != nil {
				t.Errorf("corte 不齐全时总评应为 nil，实际=%v", *final)
			}
		})
	}
}

func TestFinalGrade_RoundHalfUp(t *testing.T) {
	cases := []struct {
		name       string
		c1, c2, c3 float64
		want       float64
	}{
		// 0.30*3.5 + 0.35*3.5 + 0.35*3.6 = 1.05 + 1.225 + 1.26 = 3.535 → 3.5
		{"逢五以下舍去", 3.5, 3.5, 3.6, 3.5},
		// 0.30*3.0 + 0.35*3.2 + 0.35*3.2 = 0.9 + 1.12 + 1.12 = 3.14 → 3.1
		{"四舍", 3.0, 3.2, 3.2, 3.1},
		// 0.30*2.5 + 0.35*3.0 + 0.35*3.0 = 0.75 + 1.05 + 1.05 = 2.85 → 2.9（half-up 进位）
		// 浮点直加会得到 2.8499999…，按十分位整数运算才能保住这一位
		{"逢五进位", 2.5, 3.0, 3.0, 2.9},
		// 0.30*0.5 + 0.35*3.0 + 0.35*3.0 = 0.15 + 1.05 + 1.05 = 2.25 → 2.3
		{"逢五进位低分段", 0.5, 3.0, 3.0, 2.3},
		// 0.30*4.5 + 0.35*4.0 + 0.35*4.0 = 1.35 + 1.40 + 1.40 = 4.15 → 4.2
		{"逢五进位高分段", 4.5, 4.0, 4.0, 4.2},
		{"满分", 5.0, 5.0, 5.0, 5.0},
		{"零分", 0.0, 0.0, 0.0, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			final := FinalGrade(fp(tc.c1), fp(tc.c2), fp(tc.c3))
			if final == nil {
				t.Fatal("总评不应为 nil")
			}
			if *final != tc.want {
				t.Errorf("期望=%v，实际=%v", tc.want, *final)
			}
		})
	}
}

// ── Progress ──

func TestProgress(t *testing.T) {
	cases := []struct {
		name       string
		c1, c2, c3 *float64
		want       int
	}{
		{"无录入", nil, nil, nil, 0},
		{"一个corte", fp(4.0), nil, nil, 33},
		{"两个corte", fp(4.0), fp(3.0), nil, 67},
		{"仅corte3", nil, nil, fp(4.0), 33},
		{"corte2和corte3", nil, fp(3.0), fp(4.0), 67},
		{"三个齐全", fp(4.0), fp(3.0), fp(5.0), 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Progress(tc.c1, tc.c2, tc.c3); got != tc.want {
				t.Errorf("期望进度=%d，实际=%d", tc.want, got)
			}
		})
	}
}

// ── PassStatus ──

func TestPassStatus(t *testing.T) {
	if got := PassStatus(nil); got != "" {
		t.Errorf("总评未生成时状态应为空串，实际=%q", got)
	}
	if got := PassStatus(fp(3.0)); got != StatusPassed {
		t.Errorf("3.0 恰好及格，期望 passed，实际=%s", got)
	}
	if got := PassStatus(fp(2.9)); got != StatusFailed {
		t.Errorf("2.9 未及格，期望 failed，实际=%s", got)
	}
	if got := PassStatus(fp(5.0)); got != StatusPassed {
		t.Errorf("5.0 应通过，实际=%s", got)
	}
}

// ── ValidScore ──

func TestValidScore(t *testing.T) {
	valid := []float64{0.0, 0.1, 2.5, 5.0}
	for _, v := range valid {
		if !ValidScore(v) {
			t.Errorf("%v 应为合法分值", v)
		}
	}
	invalid := []float64{-0.1, 5.1, 100}
	for _, v := range invalid {
		if ValidScore(v) {
			t.Errorf("%v 应为非法分值", v)
		}
	}
}
