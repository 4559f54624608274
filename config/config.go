package config

import (
	"cocooriginal_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "CocoOriginal_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8081"),
				ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20),          // 1 MB
				MaxUploadBytes: getEnvAsInt64("SERVER_MAX_UPLOAD_BYTES", 10*1024*1024), // 10 MB
			},
			Cors: &structs.CorsConfig{
				AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"https://cocooriginalmm.com"}),
				AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Content-Type", "Authorization", "X-Requested-With"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
			},
			Email: &structs.EmailConfig{
				ApiKey:    getEnvAsString("RESEND_API_KEY", ""),
				From:      getEnvAsString("RESEND_FROM", ""),
				ShopOwner: getEnvAsString("SHOP_OWNER_EMAIL", ""),
			},
			Sheets: &structs.SheetsConfig{
				ServiceAccountEmail: getEnvAsString("SERVICE_ACCOUNT_EMAIL", ""),
				PrivateKey:          getEnvAsMultiline("SERVICE_ACCOUNT_KEY", ""),
				SpreadsheetID:       getEnvAsString("SPREADSHEET_ID", ""),
				ReadRange:           getEnvAsString("SPREADSHEET_RANGE", "Sheet1"),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
