package pdf

// Layout 集中保存表格复刻所需的全部版面常量。
// 这些数值是照着纸质表逐项调出来的配置数据，不是算法，调整外观只改这里。
type Layout struct {
	PageOrientation string
	PageSize        string

	MarginLeft   float64
	MarginTop    float64
	MarginBottom float64
	RowHeight    float64

	LogoX          float64
	LogoScale      float64
	SignatureScale float64

	// 日网格 14 列：Day + 三组 (In, Out, Tot, Cd) + Total
	DayColWidths []float64
	// 科目网格 13 列：Fund ... Total
	AccountColWidths []float64
}

func DefaultLayout() Layout {
	return Layout{
		PageOrientation: "P",
		PageSize:        "A4",

		MarginLeft:   50,
		MarginTop:    50,
		MarginBottom: 50,
		RowHeight:    20,

		LogoX:          50,
		LogoScale:      0.25,
		SignatureScale: 0.5,

		DayColWidths:     []float64{30, 38, 38, 38, 28, 38, 38, 38, 28, 38, 38, 38, 28, 50},
		AccountColWidths: []float64{35, 35, 35, 35, 35, 35, 35, 35, 50, 35, 35, 50, 62},
	}
}
