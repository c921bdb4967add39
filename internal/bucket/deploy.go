// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dustin/go-humanize"

	"github.com/sspa/sspa/internal/log"
)

// Deploy uploads every regular file under dir to the bucket, public-read,
// keyed by its path relative to dir. The sync is one-way and additive:
// objects present remotely but absent locally are left alone.
func (s *Service) Deploy(ctx context.Context, name, dir string) error {
	var count int
	var total int64

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		size, err := s.putFile(ctx, name, key, path)
		if err != nil {
			return err
		}

		count++
		total += size
		log.Debugf("object uploaded: key=%s, size=%d", key, size)
		return nil
	})
	if err != nil {
		return fmt.Errorf("deploying %s to bucket %s: %w", dir, name, err)
	}

	log.Infof("deploy complete: bucket=%s, objects=%d, bytes=%s", name, count, humanize.Bytes(uint64(total)))
	return nil
}

// putFile uploads one local file as a public-read object and returns its
// size.
func (s *Service) putFile(ctx context.Context, name, key, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.S3.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(name),
		Key:         awsv2.String(key),
		Body:        f,
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: awsv2.String(contentType),
	})
	if err != nil {
		return 0, fmt.Errorf("uploading %s: %w", key, err)
	}

	return fi.Size(), nil
}
