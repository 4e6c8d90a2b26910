package config

// Version is the application version, set at build time via ldflags:
//
//	go build -ldflags "-X github.com/fightgraph/fightgraph/internal/config.Version=v1.2.3"
var Version = "dev"
