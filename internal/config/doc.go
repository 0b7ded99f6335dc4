// Package config provides configuration parsing for htmlconv.
//
// The configuration is stored in htmlconv.json. The CLI looks for it in the
// working directory and its parents; command-line flags override file values.
//
// # Configuration File Structure
//
//	{
//	  "trim": true,
//	  "xmlMode": false,
//	  "maxDepth": 256,
//	  "format": "html",
//	  "library": "jsx",
//	  "pretty": false,
//	  "minify": true,
//	  "maxInputBytes": 10485760,
//	  "server": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "metrics": true,
//	    "allowedOrigins": ["https://example.com"]
//	  },
//	  "s3": {
//	    "region": "us-east-1",
//	    "endpoint": "http://localhost:9000",
//	    "pathStyle": true
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Server.Addr())
package config
