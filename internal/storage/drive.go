// Package storage 封装渲染结果的远端存储：只需要"把这些字节存进目标目录并拿回一个 id"。
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/config"
)

// Uploader 是远端存储的最小能力：创建一个文件并返回它的不透明 id。
// 只有创建语义，没有读改写，失败不重试，由提交者手动重新提交。
type Uploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

// DriveUploader 把文件上传到服务账号可写的共享 Google Drive 目录
type DriveUploader struct {
	service  *drive.Service
	folderID string
}

func NewDriveUploader(ctx context.Context, cfg *config.Config) (*DriveUploader, error) {
	// 环境变量里的私钥通常把换行转义成了字面量 \n，先还原
	privateKey := strings.ReplaceAll(cfg.Drive.PrivateKey, `\n`, "\n")

	jwtCfg := &jwt.Config{
		Email:      cfg.Drive.ClientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{drive.DriveFileScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create google drive service: %w", err)
	}

	return &DriveUploader{
		service:  service,
		folderID: cfg.Drive.FolderID,
	}, nil
}

func (u *DriveUploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: "application/pdf",
		Parents:  []string{u.folderID},
	}

	created, err := u.service.Files.Create(file).
		Media(bytes.NewReader(data), googleapi.ContentType("application/pdf")).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload to google drive: %w", err)
	}

	return created.Id, nil
}

// FileName 生成上传文件名，和既有的纸件归档命名保持一致
func FileName(employeeName string, now time.Time) string {
	return fmt.Sprintf("Timesheet_%s_%s.pdf", employeeName, now.Format("2006-01-02"))
}
