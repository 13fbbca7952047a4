package domain

type AlphaCode struct {
	Code        string
	Description string
}

// StandardAlphaCodes 是表格底部固定印刷的考勤代码图例，
// L、M、N 三项由提交者自由填写，不在这里
var StandardAlphaCodes = []AlphaCode{
	{Code: "A", Description: "Sub - Personal Necessity 436-1150"},
	{Code: "B", Description: "Sub - Illness 436-1151"},
	{Code: "C", Description: "Sub - School Business 437-1152"},
	{Code: "D", Description: "Sub - Vacant 437-1153"},
	{Code: "E", Description: "Home Teaching 194"},
	{Code: "F", Description: "Home Teaching Handicapped 383"},
	{Code: "G", Description: "Saturday School 176"},
	{Code: "H", Description: "Summer Counselor"},
	{Code: "I", Description: "Extra Class 1113"},
	{Code: "J", Description: "Summer School 187-1110"},
	{Code: "K", Description: "Admin Supervision 1119"},
}
