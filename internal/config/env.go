package config

import "os"

// parseEnv overlays cfg with values from MICROLOG_* environment variables.
// Unset variables keep the current values.
func parseEnv(cfg *Config) {
	overlay := func(dst *string, name string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}
	overlay(&cfg.Backend, "MICROLOG_BACKEND")
	overlay(&cfg.VaultPath, "MICROLOG_VAULT_PATH")
	overlay(&cfg.KVPath, "MICROLOG_KV_PATH")
	overlay(&cfg.RemoteKind, "MICROLOG_REMOTE_KIND")
	overlay(&cfg.DatabaseDSN, "MICROLOG_DATABASE_DSN")
	overlay(&cfg.S3Bucket, "MICROLOG_S3_BUCKET")
	overlay(&cfg.S3Region, "MICROLOG_S3_REGION")
	overlay(&cfg.S3AccessKey, "MICROLOG_S3_ACCESS_KEY")
	overlay(&cfg.S3SecretKey, "MICROLOG_S3_SECRET_KEY")
	overlay(&cfg.S3BaseEndpoint, "MICROLOG_S3_BASE_ENDPOINT")
	overlay(&cfg.AccountPath, "MICROLOG_ACCOUNT_PATH")
}
