// Package config provides configuration loading and validation for filedepot.
//
// The package handles YAML configuration files, environment variables, and CLI
// flags with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (FILEDEPOT_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// All config keys map to environment variables with FILEDEPOT_ prefix:
//   - server.port → FILEDEPOT_SERVER_PORT
//   - database.type → FILEDEPOT_DATABASE_TYPE
//   - log.level → FILEDEPOT_LOG_LEVEL
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Database type must be sqlite or postgres
//   - Log level must be debug, info, warn, or error
package config
