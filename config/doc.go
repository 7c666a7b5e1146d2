// Package config loads relaypage configuration with Viper, supporting YAML,
// JSON and TOML files, environment overrides and hot-reloading.
//
// # Configuration Loading
//
//	cfg, err := config.Init("./config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With an empty path the file "config.*" is searched in /etc/relaypage,
// $HOME/.relaypage, the working directory and the executable's directory.
// A missing file is fine: defaults and environment variables still apply.
//
// # Configuration Format
//
//	app_name: relaypage
//	run_mode: release
//	paging:
//	  encode_cursor: true
//	  secret: "output of relaypage keygen"
//	  default_first: 0
//	  max_first: 100
//	logger:
//	  level: 4          # logrus: 0 panic ... 6 trace
//	  format: json      # json | text
//	  output: stderr    # stdout | stderr | file
//	  output_file: /var/log/relaypage/relaypage.log
//	  sentry:
//	    endpoint: ""
//	  elasticsearch:    # ships every entry when addresses is set
//	    addresses: ["http://localhost:9200"]
//	    index: relaypage-log
//	    rotate_daily: true
//	server:
//	  host: 127.0.0.1
//	  port: 8080
//	tracer:
//	  endpoint: ""      # OTLP gRPC, e.g. localhost:4317
//	  sampling_rate: 1.0
//	dataset:
//	  driver: sqlite3   # file | sqlite3 | postgres | mysql | redis | mongo
//	  source: ./items.db
//	  query: SELECT name, price FROM items ORDER BY name
//	  key_column: name  # empty: rows form a sequence
//	  refresh: 5m
//
// # Environment Variables
//
// Every key can be overridden with the RELAYPAGE_ prefix, dots replaced by
// underscores:
//
//	RELAYPAGE_PAGING_SECRET=... RELAYPAGE_SERVER_PORT=9090 relaypage serve data.json
//
// # Hot Reloading
//
//	config.Watch(func(cfg *config.Config) {
//	    logging.Infof(ctx, "config reloaded")
//	}, nil)
package config
