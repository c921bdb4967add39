// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	awsapi "github.com/sspa/sspa/internal/aws"
	"github.com/sspa/sspa/internal/log"
)

// Service provisions and deploys one S3 static-website bucket. Region and
// document names are explicit; nothing is read from ambient process state.
type Service struct {
	S3     awsapi.S3API
	Region string

	// IndexDocument and ErrorDocument are the website document names,
	// conventionally index.html and error.html.
	IndexDocument string
	ErrorDocument string
}

// WebsiteEndpoint derives the static-website URL for a bucket name and
// region. Purely informational; S3 serves the site whether or not anyone
// computes this.
func WebsiteEndpoint(name, region string) string {
	return fmt.Sprintf("http://%s.s3-website-%s.amazonaws.com", name, region)
}

// Create creates the bucket and configures it as a static website. A bucket
// this account already owns is treated as already provisioned; a name owned
// by someone else surfaces as the SDK error. Returns the website endpoint.
func (s *Service) Create(ctx context.Context, name string) (string, error) {
	input := &s3v2.CreateBucketInput{
		Bucket: awsv2.String(name),
		ACL:    types.BucketCannedACLPublicRead,
	}
	// us-east-1 is the default location and must not be named explicitly.
	if s.Region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.Region),
		}
	}

	if _, err := s.S3.CreateBucket(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "BucketAlreadyOwnedByYou" {
			log.Warnf("bucket already exists and is owned by you: bucket=%s", name)
		} else {
			return "", fmt.Errorf("creating bucket %s: %w", name, err)
		}
	} else {
		log.Infof("bucket created: bucket=%s, region=%s", name, s.Region)
	}

	_, err := s.S3.PutBucketWebsite(ctx, &s3v2.PutBucketWebsiteInput{
		Bucket: awsv2.String(name),
		WebsiteConfiguration: &types.WebsiteConfiguration{
			IndexDocument: &types.IndexDocument{Suffix: awsv2.String(s.IndexDocument)},
			ErrorDocument: &types.ErrorDocument{Key: awsv2.String(s.ErrorDocument)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("configuring website on bucket %s: %w", name, err)
	}
	log.Infof("website configured: bucket=%s, index=%s, error=%s", name, s.IndexDocument, s.ErrorDocument)

	return WebsiteEndpoint(name, s.Region), nil
}
