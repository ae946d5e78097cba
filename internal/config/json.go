package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file overlay the runtime Config.
type JsonConfig struct {
	Backend        *string `json:"backend"`
	VaultPath      *string `json:"vault_path"`
	KVPath         *string `json:"kv_path"`
	RemoteKind     *string `json:"remote_kind"`
	DatabaseDSN    *string `json:"database_dsn"`
	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3AccessKey    *string `json:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
	AccountPath    *string `json:"account_path"`
}

// parseJson overlays cfg with values loaded from the JSON file at path.
// An empty path means no JSON overlay. Absent fields keep their current
// values.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&cfg.Backend, jc.Backend)
	apply(&cfg.VaultPath, jc.VaultPath)
	apply(&cfg.KVPath, jc.KVPath)
	apply(&cfg.RemoteKind, jc.RemoteKind)
	apply(&cfg.DatabaseDSN, jc.DatabaseDSN)
	apply(&cfg.S3Bucket, jc.S3Bucket)
	apply(&cfg.S3Region, jc.S3Region)
	apply(&cfg.S3AccessKey, jc.S3AccessKey)
	apply(&cfg.S3SecretKey, jc.S3SecretKey)
	apply(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	apply(&cfg.AccountPath, jc.AccountPath)
	return nil
}
