package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidateRejectsInconsistentConfiguration(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate  func(*Config)
		message string
	}{
		"empty project name": {
			func(c *Config) { c.Project.Name = "" },
			"project_name",
		},
		"unparseable cidr": {
			func(c *Config) { c.Network.Cidr = "10.1.0.0" },
			"cidr",
		},
		"subnet mask wider than network": {
			func(c *Config) { c.Network.SubnetMask = 16 },
			"subnet_mask",
		},
		"subnet mask too tight": {
			func(c *Config) { c.Network.SubnetMask = 30 },
			"subnet_mask",
		},
		"empty partition key": {
			func(c *Config) { c.Table.PartitionKey = "" },
			"partition_key",
		},
		"write capacity above autoscale max": {
			func(c *Config) { c.Table.WriteCapacity = 500 },
			"min <= base <= max",
		},
		"write capacity below autoscale min": {
			func(c *Config) { c.Table.WriteCapacity = 5 },
			"min <= base <= max",
		},
		"degenerate autoscale range": {
			func(c *Config) {
				c.Table.WriteCapacity = 50
				c.Table.MinWriteCapacity = 50
				c.Table.MaxWriteCapacity = 50
			},
			"min <= base <= max",
		},
		"utilization out of range": {
			func(c *Config) { c.Table.TargetUtilization = 95 },
			"target_utilization",
		},
		"unknown runtime": {
			func(c *Config) { c.Function.Runtime = "go1.x" },
			"runtime",
		},
		"memory too small": {
			func(c *Config) { c.Function.MemorySize = 64 },
			"memory_size",
		},
		"timeout too long": {
			func(c *Config) { c.Function.Timeout = 1200 },
			"timeout",
		},
		"burst below rate": {
			func(c *Config) { c.Gateway.BurstLimit = 10 },
			"burst_limit",
		},
		"reservation beyond sustained throttle": {
			func(c *Config) { c.Function.ReservedConcurrency = 400 },
			"reserved_concurrency",
		},
		"firewall rate below provider floor": {
			func(c *Config) {
				c.Firewall.Enabled = true
				c.Firewall.RateLimit = 50
			},
			"rate_limit",
		},
		"zero alarm threshold": {
			func(c *Config) { c.Alarms.TableUserErrors.Threshold = 0 },
			"threshold",
		},
		"zero alarm periods": {
			func(c *Config) { c.Alarms.FunctionErrors.Periods = 0 },
			"periods",
		},
	} {
		t.Run(name, func(t *testing.T) {
			c := Defaults()
			tc.mutate(c)
			err := c.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestValidateAcceptsFittingReservation(t *testing.T) {
	c := Defaults()
	c.Function.ReservedConcurrency = 150
	assert.NoError(t, c.Validate())
}
