// Package mailer 在上传成功后给提交者发送回执邮件。
// 发送是同步且尽力而为的：失败只记日志，绝不影响提交结果。
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/config"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
)

const receiptTemplateText = `<html>
<body>
	<p>Hi {{ .EmployeeName }},</p>
	<p>Your daily timesheet was received and filed on {{ .SubmittedAt }}.</p>
	<ul>
		<li>Reference: <strong>{{ .Reference }}</strong></li>
		<li>File: {{ .FileName }}</li>
		<li>Drive file id: {{ .FileID }}</li>
	</ul>
	<p>Keep this email as your submission receipt. If anything on the form needs to be corrected, submit the timesheet again and notify your site office.</p>
</body>
</html>`

type Mailer struct {
	client      *mail.Client
	from        string
	sendTimeout time.Duration
	tmpl        *template.Template
}

func New(cfg *config.Config) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}

	// 启动时拨号验证一次，配置错误尽早暴露
	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(dialCtx); err != nil {
		return nil, fmt.Errorf("dial mail server: %w", err)
	}

	tmpl, err := template.New("receipt").Parse(receiptTemplateText)
	if err != nil {
		return nil, err
	}

	return &Mailer{
		client:      client,
		from:        cfg.Email.From,
		sendTimeout: time.Duration(cfg.Email.SMTP.SendTimeout) * time.Second,
		tmpl:        tmpl,
	}, nil
}

func (m *Mailer) Close() error {
	return m.client.Close()
}

// SendReceipt 给提交者发送一封回执邮件
func (m *Mailer) SendReceipt(ctx context.Context, to string, data domain.ReceiptMailData) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Timesheet received - reference %s", data.Reference))

	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, data); err != nil {
		return err
	}
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	sendCtx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()
	return m.client.DialAndSendWithContext(sendCtx, msg)
}
