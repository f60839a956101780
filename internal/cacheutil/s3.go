// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	awsx "github.com/staranto/feedpassgo/internal/aws"
)

const s3Scheme = "s3://"

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	GetObject(context.Context, *s3v2.GetObjectInput, ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(context.Context, *s3v2.PutObjectInput, ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
	DeleteObject(context.Context, *s3v2.DeleteObjectInput, ...func(*s3v2.Options)) (*s3v2.DeleteObjectOutput, error)
}

// S3Store keeps the cache entry in a single S3 object.
type S3Store struct {
	Bucket string
	Key    string
	Client S3API
}

// ParseS3Location splits s3://bucket/key into its parts.
func ParseS3Location(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("not an s3 location: %s", location)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("s3 location must be s3://bucket/key: %s", location)
	}
	return bucket, key, nil
}

// NewS3Store builds an S3Store using the shell's AWS configuration. The
// FEEDPASS_S3_ENDPOINT env variable selects an S3-compatible endpoint.
func NewS3Store(ctx context.Context, location string) (*S3Store, error) {
	bucket, key, err := ParseS3Location(location)
	if err != nil {
		return nil, err
	}

	cfg, err := awsx.LoadAWSConfig(ctx, awsx.EnvOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var optFns []func(*s3v2.Options)
	if ep := os.Getenv("FEEDPASS_S3_ENDPOINT"); ep != "" {
		log.Debugf("using s3 endpoint %s", ep)
		optFns = append(optFns, awsx.WithS3Endpoint(ep))
	}

	return &S3Store{
		Bucket: bucket,
		Key:    key,
		Client: awsx.NewS3(cfg, optFns...),
	}, nil
}

func (s *S3Store) Location() string {
	return s3Scheme + s.Bucket + "/" + s.Key
}

func (s *S3Store) Read(ctx context.Context) (*Entry, error) {
	if !Enabled() {
		return nil, ErrNotCached
	}

	out, err := s.Client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(s.Key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.Location(), err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Location(), err)
	}

	size := awsv2.ToInt64(out.ContentLength)
	if size == 0 {
		size = int64(len(b))
	}

	return &Entry{
		Location: s.Location(),
		Data:     bytes.TrimSpace(b),
		Size:     size,
		ModTime:  awsv2.ToTime(out.LastModified),
	}, nil
}

func (s *S3Store) Write(ctx context.Context, data []byte) error {
	if !Enabled() {
		return nil
	}

	_, err := s.Client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.Bucket),
		Key:         awsv2.String(s.Key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", s.Location(), err)
	}
	return nil
}

func (s *S3Store) Remove(ctx context.Context) error {
	_, err := s.Client.DeleteObject(ctx, &s3v2.DeleteObjectInput{
		Bucket: awsv2.String(s.Bucket),
		Key:    awsv2.String(s.Key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.Location(), err)
	}
	return nil
}
