// Package config loads service configuration.
//
// LoadConfig reads cmd/<service>/config.yml with viper, loads a .env file with
// godotenv and lets environment variables override any key: AUTH_JWT_SECRET
// sets auth.jwt.secret, SERVER_PORT sets server.port. Config structs embed
// ServiceConfig and implement ApplyDefaults and Validate.
package config
