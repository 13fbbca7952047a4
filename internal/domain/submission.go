package domain

// 半月窗口和纸质表格保持一致：月 1 填 16-31 号，月 2 填 1-15 号
const (
	Window1FirstDay = 16
	Window1LastDay  = 31
	Window2FirstDay = 1
	Window2LastDay  = 15
)

const (
	ShiftsPerDay    = 3
	AccountCodeRows = 3
)

type EmployeeType string

const (
	EmployeeTypeClassified   EmployeeType = "Classified"
	EmployeeTypeCertificated EmployeeType = "Certificated"
)

// Shift 是一天内的一段上下班时间，时间用 24 小时制的 "HH:MM" 表示，允许为空。
// Total 是派生字段，由服务端统一重算，客户端提交的值会被覆盖。
type Shift struct {
	In    string `json:"in"`
	Out   string `json:"out"`
	Code  string `json:"code"`
	Total string `json:"total"`
}

type DayEntry struct {
	Day        int                 `json:"day"`
	Shifts     [ShiftsPerDay]Shift `json:"shifts"`
	DailyTotal string              `json:"dailyTotal"`
}

// AccountCode 是会计科目行，各维度字段按表格原样保存为字符串。
// TotalPay 是派生字段，仅当 Hours 和 PayRate 都存在且合法时才有值。
type AccountCode struct {
	Fund     string `json:"fund"`
	Location string `json:"location"`
	Program  string `json:"program"`
	Goal     string `json:"goal"`
	Function string `json:"function"`
	Object   string `json:"object"`
	Resource string `json:"resource"`
	Year     string `json:"year"`
	Manager  string `json:"manager"`
	Alpha    string `json:"alpha"`
	Hours    string `json:"hours"`
	PayRate  string `json:"payRate"`
	TotalPay string `json:"totalPay"`
}

// Signature 携带签名图片。Data 可以是裸 base64，也可以是带 data URI 前缀的字符串。
// Format 是显式格式标签（"png" 或 "jpeg"），优先于从 data URI 推断；
// 旧客户端不发这个字段，此时回退到前缀推断。
type Signature struct {
	Data   string `json:"data"`
	Format string `json:"format,omitempty"`
}

// Submission 是提交时刻的完整表单快照，服务端不保留它的任何状态。
type Submission struct {
	School        string                        `json:"school" validate:"required"`
	EmployeeName  string                        `json:"employeeName" validate:"required"`
	EmployeeID    string                        `json:"employeeId"`
	FTE           string                        `json:"fte"`
	HoursPerWeek  string                        `json:"hoursPerWeek"`
	Month1        string                        `json:"month1"`
	Month2        string                        `json:"month2"`
	Year          string                        `json:"year"`
	Position      string                        `json:"position"`
	EmployeeType  EmployeeType                  `json:"employeeType" validate:"required,oneof=Classified Certificated"`
	Email         string                        `json:"email" validate:"required,email"`
	Days          []DayEntry                    `json:"days"`
	AccountCodes  [AccountCodeRows]AccountCode  `json:"accountCodes"`
	GrandTotal    string                        `json:"grandTotal"`
	AlphaL        string                        `json:"alphaL"`
	AlphaM        string                        `json:"alphaM"`
	AlphaN        string                        `json:"alphaN"`
	Signature     Signature                     `json:"signature"`
	DateEmployee  string                        `json:"dateEmployee"`
	DatePrincipal string                        `json:"datePrincipal"`
	DateManager   string                        `json:"dateManager"`
}

// Signed 表示提交是否带有签名，没有签名的提交不允许生成文档
func (s *Submission) Signed() bool {
	return s.Signature.Data != ""
}

// DayEntryFor 返回某一天的条目，没填写过的天返回 nil
func (s *Submission) DayEntryFor(day int) *DayEntry {
	for i := range s.Days {
		if s.Days[i].Day == day {
			return &s.Days[i]
		}
	}
	return nil
}

// Window1Days 返回月 1 窗口的所有天数（16 到 31），顺序固定
func Window1Days() []int {
	days := make([]int, 0, Window1LastDay-Window1FirstDay+1)
	for d := Window1FirstDay; d <= Window1LastDay; d++ {
		days = append(days, d)
	}
	return days
}

// Window2Days 返回月 2 窗口的所有天数（1 到 15），顺序固定
func Window2Days() []int {
	days := make([]int, 0, Window2LastDay-Window2FirstDay+1)
	for d := Window2FirstDay; d <= Window2LastDay; d++ {
		days = append(days, d)
	}
	return days
}

// InWindow 判断天数是否落在两个半月窗口之一
func InWindow(day int) bool {
	if day >= Window1FirstDay && day <= Window1LastDay {
		return true
	}
	return day >= Window2FirstDay && day <= Window2LastDay
}
