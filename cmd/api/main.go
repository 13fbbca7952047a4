package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/config"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/handler"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/mailer"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/storage"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	// 本地开发时允许用 .env 提供环境变量，文件不存在不算错误
	if err := godotenv.Load(); err != nil {
		logger.Info("未找到 .env 文件，直接使用进程环境变量")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		return
	}

	/**********************************************
	 * 创建 Google Drive 上传器
	 **********************************************/
	uploader, err := storage.NewDriveUploader(context.Background(), cfg)
	if err != nil {
		logger.Error("无法创建 Google Drive 上传器", "error", err)
		return
	}

	/**********************************************
	 * 创建回执邮件客户端（可选）
	 **********************************************/
	var m *mailer.Mailer
	if cfg.Email.Enabled {
		m, err = mailer.New(cfg)
		if err != nil {
			logger.Error("无法创建邮件客户端", "error", err)
			return
		}
		defer m.Close()
	}

	/**********************************************
	 * 创建 handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, uploader, m)
	if err != nil {
		logger.Error("无法创建 handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动服务器...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", slog.String("error", err.Error()))
	}
	logger.Info("服务器已成功关闭")
}
