package storage

import (
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7/pkg/policy"
)

const policyVersion = "2012-10-17"

// PublicReadPolicy renders a bucket policy that lets anyone list and read
// objects under the given locations. It returns "" when there is nothing
// to make public.
func PublicReadPolicy(bucket string, locations []string) (string, error) {
	doc := policy.BucketAccessPolicy{Version: policyVersion}
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		doc.Statements = policy.SetPolicy(doc.Statements, policy.BucketPolicyReadOnly, bucket, loc)
	}
	if len(doc.Statements) == 0 {
		return "", nil
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode bucket policy: %w", err)
	}
	return string(b), nil
}
