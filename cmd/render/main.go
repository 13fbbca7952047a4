// render 是运维用的离线工具：把一份提交快照的 JSON 文件渲染成本地 PDF，
// 不需要 Google Drive 和 SMTP 凭证，方便调版面和排查渲染问题。
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/pdf"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/timesheet"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var (
		inPath   = flag.String("in", "submission.json", "提交快照 JSON 文件")
		outPath  = flag.String("out", "timesheet.pdf", "输出 PDF 文件")
		logoPath = flag.String("logo", "public/logo.png", "logo 文件，允许不存在")
	)
	flag.Parse()

	data, err := os.ReadFile(*inPath)
	if err != nil {
		logger.Error("无法读取提交快照", "path", *inPath, "error", err)
		os.Exit(1)
	}

	var sub domain.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		logger.Error("提交快照不是合法的 JSON", "path", *inPath, "error", err)
		os.Exit(1)
	}

	// 和线上提交一样，派生字段以重算结果为准
	sub = timesheet.Recompute(sub)

	out, err := pdf.New(*logoPath).Render(&sub)
	if err != nil {
		logger.Error("渲染失败", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		logger.Error("无法写出 PDF 文件", "path", *outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("渲染完成", "out", *outPath, "bytes", len(out))
}
