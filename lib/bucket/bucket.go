// Copyright (C) 2026 The Reel Authors.
//
// This file is part of Reel.
//
// Reel is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Reel is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Reel.  If not, see <https://www.gnu.org/licenses/>.

package bucket

import (
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/reelhouse/reel/config"
)

// Bucket is an S3 compatible bucket holding catalog artwork.
type Bucket struct {
	config *config.BucketConfig
	s3     *s3.S3
}

func Open(config config.BucketConfig) (*Bucket, error) {
	creds := credentials.NewStaticCredentials(
		config.AccessKeyID,
		config.SecretAccessKey, "")
	s3Config := &aws.Config{
		Credentials:      creds,
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		DisableSSL:       aws.Bool(!config.UseSSL),
		S3ForcePathStyle: aws.Bool(true)}
	session, err := session.NewSession(s3Config)
	bucket := &Bucket{
		s3:     s3.New(session),
		config: &config,
	}
	return bucket, err
}

// Key maps a catalog relative path to the object key.
func (b *Bucket) Key(p string) string {
	p = strings.TrimPrefix(p, "/")
	if b.config.ObjectPrefix == "" {
		return p
	}
	return path.Join(b.config.ObjectPrefix, p)
}

func (b *Bucket) Presign(p string) (*url.URL, error) {
	req, _ := b.s3.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(b.config.BucketName),
		Key:    aws.String(b.Key(p))})
	urlStr, err := req.Presign(b.config.URLExpiration)
	if err != nil {
		return nil, err
	}
	return url.Parse(urlStr)
}
