package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentinspect/internal/photo"
	"rentinspect/internal/server"
	"rentinspect/internal/session"
	"rentinspect/internal/storage"

	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger := newLogger(config)

	s3Client, err := newS3Client(ctx, config)
	if err != nil {
		return err
	}

	var archive *storage.ReportArchive
	if s3Client != nil {
		archive = storage.NewReportArchive(s3Client, config.S3BucketName)
		logger.WithField("bucket", config.S3BucketName).Info("report archive enabled")
	}

	sessions := session.NewStore(time.Duration(config.SessionMaxAgeSec)*time.Second, logger)
	ingestor := photo.NewIngestor(logger, config.MaxPhotoBytes, config.PhotoConcurrency)

	srv, err := server.New(config, logger, sessions, ingestor, archive)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
