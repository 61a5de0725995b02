package main

import (
	"fmt"

	"rentinspect/internal/storage"

	"github.com/urfave/cli/v2"
)

var unarchiveCommand = &cli.Command{
	Name:      "unarchive",
	Usage:     "Remove an archived report from S3_BUCKET_NAME",
	ArgsUsage: "<report filename>",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("expected one report filename, got %d arguments", c.NArg())
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(cfg)

		s3Client, err := newS3Client(c.Context, cfg)
		if err != nil {
			return err
		}
		if s3Client == nil {
			return fmt.Errorf("set S3_BUCKET_NAME to manage archived reports")
		}

		key := storage.Key(c.Args().First())
		if err := storage.NewReportArchive(s3Client, cfg.S3BucketName).Delete(c.Context, key); err != nil {
			return err
		}

		logger.WithField("key", key).Info("archived report removed")

		return nil
	},
}
