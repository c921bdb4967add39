// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package bucket

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockS3 records bucket provisioning and upload calls.
type mockS3 struct {
	createIn  *s3v2.CreateBucketInput
	createErr error

	websiteIn *s3v2.PutBucketWebsiteInput

	putIns []*s3v2.PutObjectInput
}

func (m *mockS3) CreateBucket(ctx context.Context, params *s3v2.CreateBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.CreateBucketOutput, error) {
	m.createIn = params
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &s3v2.CreateBucketOutput{}, nil
}

func (m *mockS3) PutBucketWebsite(ctx context.Context, params *s3v2.PutBucketWebsiteInput, optFns ...func(*s3v2.Options)) (*s3v2.PutBucketWebsiteOutput, error) {
	m.websiteIn = params
	return &s3v2.PutBucketWebsiteOutput{}, nil
}

func (m *mockS3) PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error) {
	m.putIns = append(m.putIns, params)
	return &s3v2.PutObjectOutput{}, nil
}

func newService(region string) (*Service, *mockS3) {
	m := &mockS3{}
	return &Service{
		S3:            m,
		Region:        region,
		IndexDocument: "index.html",
		ErrorDocument: "error.html",
	}, m
}

func TestWebsiteEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		region   string
		expected string
	}{
		{
			name:     "us-east-1",
			bucket:   "learnjs",
			region:   "us-east-1",
			expected: "http://learnjs.s3-website-us-east-1.amazonaws.com",
		},
		{
			name:     "eu-west-1",
			bucket:   "my-spa",
			region:   "eu-west-1",
			expected: "http://my-spa.s3-website-eu-west-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WebsiteEndpoint(tt.bucket, tt.region))
		})
	}
}

func TestCreate(t *testing.T) {
	svc, m := newService("eu-west-1")

	endpoint, err := svc.Create(context.Background(), "learnjs")
	require.NoError(t, err)
	assert.Equal(t, "http://learnjs.s3-website-eu-west-1.amazonaws.com", endpoint)

	require.NotNil(t, m.createIn)
	assert.Equal(t, "learnjs", awsv2.ToString(m.createIn.Bucket))
	require.NotNil(t, m.createIn.CreateBucketConfiguration)
	assert.Equal(t, types.BucketLocationConstraint("eu-west-1"), m.createIn.CreateBucketConfiguration.LocationConstraint)

	require.NotNil(t, m.websiteIn)
	assert.Equal(t, "index.html", awsv2.ToString(m.websiteIn.WebsiteConfiguration.IndexDocument.Suffix))
	assert.Equal(t, "error.html", awsv2.ToString(m.websiteIn.WebsiteConfiguration.ErrorDocument.Key))
}

// us-east-1 is the default location and must not be named in the request.
func TestCreateUsEast1OmitsLocation(t *testing.T) {
	svc, m := newService("us-east-1")

	_, err := svc.Create(context.Background(), "learnjs")
	require.NoError(t, err)
	assert.Nil(t, m.createIn.CreateBucketConfiguration)
}

func TestCreateAlreadyOwned(t *testing.T) {
	svc, m := newService("us-east-1")
	m.createErr = &smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou", Message: "already yours"}

	// Owned-by-you reads as already provisioned: website config still
	// applied, endpoint still derived.
	endpoint, err := svc.Create(context.Background(), "learnjs")
	require.NoError(t, err)
	assert.Equal(t, "http://learnjs.s3-website-us-east-1.amazonaws.com", endpoint)
	assert.NotNil(t, m.websiteIn)
}

func TestCreateNameTaken(t *testing.T) {
	svc, m := newService("us-east-1")
	m.createErr = &smithy.GenericAPIError{Code: "BucketAlreadyExists", Message: "taken"}

	_, err := svc.Create(context.Background(), "learnjs")
	require.Error(t, err)
	assert.Nil(t, m.websiteIn)
}
