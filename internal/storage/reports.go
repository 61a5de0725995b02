package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"rentinspect/internal/report"
	"rentinspect/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const reportPrefix = "reports"

// ObjectAPI is the subset of the S3 client the archive uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ReportArchive keeps a copy of each generated report in an S3 bucket
type ReportArchive struct {
	client ObjectAPI
	bucket string
}

func NewReportArchive(client ObjectAPI, bucket string) *ReportArchive {
	return &ReportArchive{client: client, bucket: bucket}
}

// Key returns the object key for a report filename
func Key(filename string) string {
	return path.Join(reportPrefix, report.SafeFilename(filename)+".html")
}

// Put uploads a rendered report and returns its key
func (a *ReportArchive) Put(ctx context.Context, filename string, body []byte) (string, error) {
	key := Key(filename)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", key, err)
	}

	return key, nil
}

// Delete removes an archived report
func (a *ReportArchive) Delete(ctx context.Context, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})

	return utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to delete report %s", key))
}
