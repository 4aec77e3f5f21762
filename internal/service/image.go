package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pageza/ghibli-kitchen/backend/config"
)

// ObjectPutter is the part of the S3 client the image service uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService moves uploaded images out of recipe records and into S3. With
// no bucket configured, uploads stay inline as data URLs.
type ImageService struct {
	client    ObjectPutter
	bucket    string
	publicURL func(key string) string
}

// NewImageService creates an ImageService. s3Config may be nil.
func NewImageService(s3Config *config.S3Config) *ImageService {
	if s3Config == nil {
		return &ImageService{}
	}
	return NewImageServiceWithClient(s3Config.Client, s3Config.BucketName, s3Config.PublicURL)
}

// NewImageServiceWithClient offloads to bucket through client; publicURL maps
// an object key to the address stored in the recipe.
func NewImageServiceWithClient(client ObjectPutter, bucket string, publicURL func(key string) string) *ImageService {
	return &ImageService{client: client, bucket: bucket, publicURL: publicURL}
}

// Enabled reports whether uploads are offloaded to S3.
func (s *ImageService) Enabled() bool {
	return s.client != nil
}

// Offload uploads the image in dataURL under the kitchen's prefix and returns
// its public URL. If offloading is disabled or fails, dataURL is returned as is.
func (s *ImageService) Offload(ctx context.Context, kitchenID, dataURL string) string {
	if !s.Enabled() || !strings.HasPrefix(dataURL, "data:") {
		return dataURL
	}

	contentType, data, err := decodeDataURL(dataURL)
	if err != nil {
		log.Printf("[ImageService] Not offloading image: %v", err)
		return dataURL
	}

	ext := ""
	if m := mimetype.Lookup(contentType); m != nil {
		ext = m.Extension()
	}
	key := fmt.Sprintf("recipe-images/%s/%s%s", kitchenID, uuid.New().String(), ext)
	url, err := s.UploadImageToS3(ctx, data, key, contentType)
	if err != nil {
		log.Printf("[ImageService] Keeping image inline: %v", err)
		return dataURL
	}
	return url
}

// UploadImageToS3 uploads image data to S3 and returns the public URL
func (s *ImageService) UploadImageToS3(ctx context.Context, imageData []byte, objectKey, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := s.publicURL(objectKey)
	log.Printf("[ImageService] Successfully uploaded image to S3: %s", publicURL)
	return publicURL, nil
}

func decodeDataURL(dataURL string) (string, []byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !ok || !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	contentType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data URL: %w", err)
	}
	return contentType, data, nil
}
