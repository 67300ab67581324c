// Package config provides loading and environment overlay for Opsq
// runtime configuration. It exposes a Default() baseline, file loading
// in JSON or YAML, and an OPSQ_* env overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/opsq.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
