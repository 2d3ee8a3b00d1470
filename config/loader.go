package config

import (
	"os"

	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kurobane/frontdoor/entity"
	"github.com/kurobane/frontdoor/logger"
)

// Load loads configuration and map to Config struct.
// this function always returns although the config file didn't exist.
// Then you can confirm as Exists() on config file exists or not.
func Load() *Config {
	root := findUp()

	c := Defaults()
	c.Root = root
	c.Path = filepath.Join(root, FileName)

	if _, err := os.Stat(c.Path); err == nil {
		c.exists = true
		if _, err = toml.DecodeFile(c.Path, c); err != nil {
			c.log.Errorf("Syntax error found on configuration file!\n%s\n", err.Error())
			os.Exit(1)
		}
	}
	return c
}

// Defaults returns a Config populated with the baseline stack layout:
// an isolated /24 network, a provisioned table with a write autoscaling
// range around the base capacity, and one-year log retention everywhere.
func Defaults() *Config {
	return &Config{
		Project: entity.Project{
			Name:   "frontdoor",
			Region: "us-east-1",
		},
		Network: entity.Network{
			Cidr:                 "10.1.0.0/16",
			SubnetMask:           24,
			FlowLogRetentionDays: 365,
		},
		Table: entity.Table{
			PartitionKey:        "id",
			ReadCapacity:        5,
			WriteCapacity:       100,
			MinWriteCapacity:    10,
			MaxWriteCapacity:    200,
			TargetUtilization:   70,
			PointInTimeRecovery: true,
			Stream:              "NEW_AND_OLD_IMAGES",
		},
		Function: entity.Function{
			Name:             "frontdoor-handler",
			Runtime:          "provided.al2023",
			Handler:          "bootstrap",
			CodePath:         "functions/handler",
			MemorySize:       1024,
			Timeout:          300,
			Tracing:          true,
			LogRetentionDays: 365,
		},
		Gateway: entity.Gateway{
			Stage:            "prod",
			RateLimit:        100,
			BurstLimit:       200,
			Tracing:          true,
			LogRetentionDays: 365,
		},
		Firewall: entity.Firewall{
			Enabled:   false,
			RateLimit: 500,
		},
		Alarms: entity.Alarms{
			FunctionErrors:      entity.Alarm{Threshold: 1, Periods: 1},
			FunctionThrottles:   entity.Alarm{Threshold: 1, Periods: 1},
			GatewayServerErrors: entity.Alarm{Threshold: 5, Periods: 2},
			TableUserErrors:     entity.Alarm{Threshold: 10, Periods: 2},
			TableWriteThrottles: entity.Alarm{Threshold: 5, Periods: 2},
		},
		log: logger.WithNamespace("frontdoor.config"),
	}
}

// findUp finds frontdoor project root from current working directory.
func findUp() string {
	path, _ := os.Getwd()

	for {
		if path == "/" {
			break
		}
		if _, err := os.Stat(filepath.Join(path, FileName)); err == nil {
			return path
		}
		path = filepath.Dir(path)
	}
	path, _ = os.Getwd()
	return path
}
