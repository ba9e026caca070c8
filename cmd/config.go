package cmd

import "time"

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	RedisAddr           string
	TrackingCacheTTL    time.Duration
	OrderDirectoryURL   string
	CourierDirectoryURL string
	OverdueSweepCron    string
}
