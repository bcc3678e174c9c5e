package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ParentFolderID is the fixed container every upload lands under. The value
// is part of the deployed bucket layout and must not change between releases.
const ParentFolderID = "17dDMHkoWFjy30ao7HutKbY7qiew1HKyu"

// contentMarker prefixes the database content field of drive-backed files,
// so inline content and external pointers can be told apart.
const contentMarker = "drive"

// Credentials is the JSON shape accepted via DRIVE_CREDENTIALS or the
// credentials file fallback.
type Credentials struct {
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	Endpoint        string `json:"endpoint,omitempty"`
}

// Client wraps the S3 client used as the external drive provider.
type Client struct {
	uploader *manager.Uploader
	bucket   string
}

func NewClient(ctx context.Context, creds Credentials) (*Client, error) {
	if creds.Bucket == "" {
		return nil, fmt.Errorf("drive credentials missing bucket")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(creds.Region),
		awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load drive config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if creds.Endpoint != "" {
			o.BaseEndpoint = aws.String(creds.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{
		uploader: manager.NewUploader(client),
		bucket:   creds.Bucket,
	}, nil
}

// Upload streams body to the provider under the fixed parent container and
// returns the object id of the stored copy.
func (c *Client) Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	key := ParentFolderID + "/" + uuid.New().String() + "_" + name

	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("drive upload: %w", err)
	}
	return key, nil
}

// Sentinel builds the content field value stored for a drive-backed file.
func Sentinel(objectID string) string {
	return contentMarker + ": " + objectID
}

// ParseSentinel returns the object id embedded in a sentinel content value,
// or false when the content is inline data.
func ParseSentinel(content string) (string, bool) {
	rest, ok := strings.CutPrefix(content, contentMarker+": ")
	if !ok {
		return "", false
	}
	return rest, true
}
