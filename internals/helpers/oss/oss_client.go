package helper

import (
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"kidride_backend/internals/configs"
)

/* =======================================================
   OSS client (avatars live browser→bucket via presigned PUT)
   ======================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
	ExpiresIn  int64 // presigned URL lifetime in seconds
}

// NewOSSServiceFromEnv builds the client from ALI_OSS_* env vars.
// prefix is optional (e.g. "uploads").
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := configs.GetEnv("ALI_OSS_ENDPOINT")
	ak := configs.GetEnv("ALI_OSS_ACCESS_KEY")
	sk := configs.GetEnv("ALI_OSS_SECRET_KEY")
	sts := configs.GetEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := configs.GetEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// Light verification of bucket location
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
		ExpiresIn:  int64(configs.GetEnvInt("OSS_PRESIGN_EXPIRES", 900)),
	}, nil
}

// PublicURL returns the virtual-hosted URL of an object key.
func (s *OSSService) PublicURL(key string) string {
	host := s.Endpoint
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, strings.TrimPrefix(key, "/"))
}

/* =======================================================
   Presigned uploads
   ======================================================= */

type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	ExpiresIn int64  `json:"expires_in"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

// SignUploadURL issues a presigned PUT URL for the given key.
func (s *OSSService) SignUploadURL(key, contentType string) (*PresignedUpload, error) {
	opts := []oss.Option{}
	if strings.TrimSpace(contentType) != "" {
		opts = append(opts, oss.ContentType(contentType))
	}

	url, err := s.Bucket.SignURL(key, oss.HTTPPut, s.ExpiresIn, opts...)
	if err != nil {
		return nil, fmt.Errorf("sign url: %w", err)
	}

	return &PresignedUpload{
		UploadURL: url,
		ExpiresIn: s.ExpiresIn,
		Key:       key,
		PublicURL: s.PublicURL(key),
	}, nil
}

// AvatarKey builds the object key for an avatar upload, e.g.
// "avatars/kids/<id>/<random><ext>". The original file name only
// contributes its extension.
func (s *OSSService) AvatarKey(resource, resourceID, fileName string) string {
	ext := path.Ext(strings.TrimSpace(fileName))
	key := fmt.Sprintf("avatars/%s/%s/%s%s", resource, resourceID, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	if s.Prefix != "" {
		key = s.Prefix + "/" + key
	}
	return key
}
