package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/domain"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/signature"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/storage"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/timesheet"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/utils"
)

// SubmitTimesheet 是唯一的业务操作：接收完整的表单快照，重算全部派生字段，
// 渲染 PDF 并上传，一次成功或整体失败，服务端不保留任何状态。
func (h *Handler) SubmitTimesheet(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := h.readJSON(r, &sub); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(&sub); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateSubmissionDays(&sub); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// 没有签名的表格没有法律效力，直接拒收
	if !sub.Signed() {
		h.errorResponse(w, r, http.StatusBadRequest, "please sign the timesheet before submitting")
		return
	}

	// 派生字段一律以服务端重算的为准，客户端传来的值只是回显
	sub = timesheet.Recompute(sub)

	pdfBytes, err := h.renderer.Render(&sub)
	if err != nil {
		var decodeErr *signature.DecodeError
		switch {
		case errors.As(err, &decodeErr):
			h.errorResponse(w, r, http.StatusBadRequest, decodeErr.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	now := time.Now()
	fileName := storage.FileName(sub.EmployeeName, now)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Drive.UploadTimeout)*time.Second)
	defer cancel()

	fileID, err := h.uploader.Upload(ctx, fileName, pdfBytes)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	reference := utils.GenerateReference()

	// 回执邮件尽力而为，失败只记日志，不影响已经上传成功的提交
	if h.mailer != nil {
		receipt := domain.ReceiptMailData{
			EmployeeName: sub.EmployeeName,
			Reference:    reference,
			FileName:     fileName,
			FileID:       fileID,
			SubmittedAt:  now.Format("2006-01-02 15:04"),
		}
		if err := h.mailer.SendReceipt(r.Context(), sub.Email, receipt); err != nil {
			slog.Error("发送回执邮件失败", "email", sub.Email, "reference", reference, "error", err)
		}
	}

	h.writeJSON(w, r, http.StatusOK, Response{
		Success:   true,
		FileID:    fileID,
		Reference: reference,
	})
}
