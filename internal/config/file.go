package config

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional config.yaml shape. Every field is optional;
// values only apply when the matching env var is unset.
type fileConfig struct {
	AppAddr       string   `yaml:"app_addr"`
	GinMode       string   `yaml:"gin_mode"`
	DBDSN         string   `yaml:"db_dsn"`
	JWTSecret     string   `yaml:"jwt_secret"`
	TokenTTLHours int      `yaml:"token_ttl_hours"`
	CORSOrigins   []string `yaml:"cors_allowed_origins"`
	UploadDir     string   `yaml:"upload_dir"`
	UploadBaseURL string   `yaml:"upload_base_url"`
}

func applyFileOverrides(env *Env) {
	raw, err := os.ReadFile(env.ConfigFile)
	if err != nil {
		log.Printf("warning: gagal membaca config file %s: %v", env.ConfigFile, err)
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Printf("warning: config file %s tidak valid: %v", env.ConfigFile, err)
		return
	}

	unset := func(key string) bool {
		return strings.TrimSpace(os.Getenv(key)) == ""
	}

	if fc.AppAddr != "" && unset("APP_ADDR") {
		env.AppAddr = fc.AppAddr
	}
	if fc.GinMode != "" && unset("GIN_MODE") {
		env.GinMode = fc.GinMode
	}
	if fc.DBDSN != "" && unset("DB_DSN") {
		env.DBDSN = fc.DBDSN
	}
	if fc.JWTSecret != "" && unset("JWT_SECRET") {
		env.JWTSecret = fc.JWTSecret
	}
	if fc.TokenTTLHours > 0 && unset("TOKEN_TTL_HOURS") {
		env.TokenTTLHours = fc.TokenTTLHours
	}
	if len(fc.CORSOrigins) > 0 && unset("CORS_ALLOWED_ORIGINS") {
		env.CORSOrigins = fc.CORSOrigins
	}
	if fc.UploadDir != "" && unset("UPLOAD_DIR") {
		env.UploadDir = fc.UploadDir
	}
	if fc.UploadBaseURL != "" && unset("UPLOAD_BASE_URL") {
		env.UploadBaseURL = fc.UploadBaseURL
	}
}
