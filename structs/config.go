package structs

import "time"

type Config struct {
	Server *ServerConfig
	Cors   *CorsConfig
	Email  *EmailConfig
	Sheets *SheetsConfig
}

type ServerConfig struct {
	AppName        string        // CocoOriginal
	Environment    string        // development, production
	Port           string        // :8081
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
	MaxUploadBytes int64         // in bytes, caps payment slip uploads
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
}

type EmailConfig struct {
	ApiKey    string // Resend API key
	From      string // outgoing sender, bare or "Name <local@domain>"
	ShopOwner string // destination for payment slip notifications
}

type SheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string // PEM, real newlines (escaped \n already unfolded)
	SpreadsheetID       string
	ReadRange           string // sheet name, e.g. Sheet1
}
