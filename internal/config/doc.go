// Package config provides configuration management for the demo API service.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values have sensible defaults for development use; an
// unusable PORT value falls back to the default rather than aborting.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
