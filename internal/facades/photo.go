package facades

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/models"
)

// S3ObjectAPI is the subset of the S3 client the photo store reads and deletes with.
type S3ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// S3Uploader uploads a single object.
type S3Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// PhotoS3Facade stores photo bytes in an S3-compatible bucket.
type PhotoS3Facade struct {
	api      S3ObjectAPI
	uploader S3Uploader
	bucket   string
}

// NewPhotoS3Facade creates a photo store on top of an S3 client.
func NewPhotoS3Facade(client *s3.Client, bucket string) *PhotoS3Facade {
	return newPhotoS3Facade(client, manager.NewUploader(client), bucket)
}

func newPhotoS3Facade(api S3ObjectAPI, uploader S3Uploader, bucket string) *PhotoS3Facade {
	return &PhotoS3Facade{api: api, uploader: uploader, bucket: bucket}
}

// UserPhotoKey is the object key of a user's profile photo.
func UserPhotoKey(id uuid.UUID) string {
	return fmt.Sprintf("users/%s/photo", id)
}

// PostPhotoKey is the object key of a post photo.
func PostPhotoKey(id uuid.UUID) string {
	return fmt.Sprintf("posts/%s/photo", id)
}

// Put uploads photo under key, replacing any previous object.
func (f *PhotoS3Facade) Put(ctx context.Context, key string, photo models.Photo) error {
	_, err := f.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(photo.Data),
		ContentType:   aws.String(photo.ContentType),
		ContentLength: aws.Int64(int64(len(photo.Data))),
		ACL:           types.ObjectCannedACLPrivate,
	})
	if err != nil {
		logger.Log.Errorw("failed to upload photo", "bucket", f.bucket, "key", key, "error", err)
		return apperr.Internal(fmt.Errorf("upload %s: %w", key, err))
	}

	logger.Log.Infow("photo uploaded", "bucket", f.bucket, "key", key, "size", len(photo.Data))
	return nil
}

// Get downloads the photo under key. A missing object fails with apperr.ErrNotFound.
func (f *PhotoS3Facade) Get(ctx context.Context, key string) (*models.Photo, error) {
	out, err := f.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: photo", apperr.ErrNotFound)
		}
		logger.Log.Errorw("failed to get photo", "bucket", f.bucket, "key", key, "error", err)
		return nil, apperr.Internal(fmt.Errorf("get %s: %w", key, err))
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("read %s: %w", key, err))
	}

	return &models.Photo{
		Data:        data,
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

// Delete removes the objects under keys. Missing objects are not an error.
func (f *PhotoS3Facade) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	out, err := f.api.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(f.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		logger.Log.Errorw("failed to delete photos", "bucket", f.bucket, "keys", keys, "error", err)
		return apperr.Internal(fmt.Errorf("delete objects: %w", err))
	}
	if len(out.Errors) > 0 {
		first := out.Errors[0]
		return apperr.Internal(fmt.Errorf("delete %s: %s", aws.ToString(first.Key), aws.ToString(first.Message)))
	}

	logger.Log.Infow("photos deleted", "bucket", f.bucket, "keys", keys)
	return nil
}
