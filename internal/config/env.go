package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr       string
	GinMode       string
	DBDSN         string
	JWTSecret     string
	TokenTTLHours int
	CORSOrigins   []string
	UploadDir     string
	UploadBaseURL string
	ConfigFile    string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:         getenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/dealership?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),
		JWTSecret:     getenv("JWT_SECRET", "super-secret-key-change-me"),
		TokenTTLHours: 24,
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: getenv("UPLOAD_BASE_URL", "/uploads"),
		ConfigFile:    strings.TrimSpace(os.Getenv("CONFIG_FILE")),
	}

	if v := strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.TokenTTLHours = n
		}
	}

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}
	if len(env.CORSOrigins) == 0 {
		env.CORSOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	// File overrides menang atas default, env var menang atas file.
	if env.ConfigFile != "" {
		applyFileOverrides(&env)
	}

	return env
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
