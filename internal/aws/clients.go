// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/sspa/sspa/internal/log"
)

// S3API is the subset of the S3 API used for bucket provisioning and
// deployment. Narrow interfaces keep the provisioning code mockable in tests.
type S3API interface {
	CreateBucket(ctx context.Context, params *s3v2.CreateBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.CreateBucketOutput, error)
	PutBucketWebsite(ctx context.Context, params *s3v2.PutBucketWebsiteInput, optFns ...func(*s3v2.Options)) (*s3v2.PutBucketWebsiteOutput, error)
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// IAMAPI is the subset of the IAM API used to ensure the authenticated role.
type IAMAPI interface {
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
}

// CognitoIdentityAPI is the subset of the Cognito Identity API used to ensure
// an identity pool and bind its authenticated role.
type CognitoIdentityAPI interface {
	CreateIdentityPool(ctx context.Context, params *cognitoidentity.CreateIdentityPoolInput, optFns ...func(*cognitoidentity.Options)) (*cognitoidentity.CreateIdentityPoolOutput, error)
	SetIdentityPoolRoles(ctx context.Context, params *cognitoidentity.SetIdentityPoolRolesInput, optFns ...func(*cognitoidentity.Options)) (*cognitoidentity.SetIdentityPoolRolesOutput, error)
}

// Compile-time checks that the SDK clients satisfy the interfaces.
var (
	_ S3API              = (*s3v2.Client)(nil)
	_ IAMAPI             = (*iam.Client)(nil)
	_ CognitoIdentityAPI = (*cognitoidentity.Client)(nil)
)

// NewS3 constructs a v2 S3 client from the provided config. Additional
// service options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// NewIAM constructs a v2 IAM client from the provided config.
func NewIAM(cfg awsv2.Config, optFns ...func(*iam.Options)) *iam.Client {
	client := iam.NewFromConfig(cfg, optFns...)
	log.Debugf("iam client created")
	return client
}

// NewCognitoIdentity constructs a v2 Cognito Identity client from the
// provided config.
func NewCognitoIdentity(cfg awsv2.Config, optFns ...func(*cognitoidentity.Options)) *cognitoidentity.Client {
	client := cognitoidentity.NewFromConfig(cfg, optFns...)
	log.Debugf("cognito identity client created")
	return client
}
