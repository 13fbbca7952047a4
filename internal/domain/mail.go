package domain

// ReceiptMailData 是回执邮件模板的数据
type ReceiptMailData struct {
	EmployeeName string `json:"employeeName"`
	Reference    string `json:"reference"`
	FileName     string `json:"fileName"`
	FileID       string `json:"fileId"`
	SubmittedAt  string `json:"submittedAt"`
}
