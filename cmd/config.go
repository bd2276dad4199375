package cmd

// Config carries the environment-driven settings for the fleet service.
type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	MaintenanceIntervalDays int
}
