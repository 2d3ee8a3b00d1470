package config

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
)

// Validate checks configuration consistency before any construct is
// assembled. Deployment-time failures (quota, naming collisions) stay
// with the provisioning engine; this only rejects graphs that could
// never be consistent.
func (c *Config) Validate() error {
	if c.Project.Name == "" {
		return errors.New("project_name must not be empty")
	}
	if err := c.validateNetwork(); err != nil {
		return errors.Wrap(err, "invalid [network] section")
	}
	if err := c.validateTable(); err != nil {
		return errors.Wrap(err, "invalid [table] section")
	}
	if err := c.validateFunction(); err != nil {
		return errors.Wrap(err, "invalid [function] section")
	}
	if err := c.validateGateway(); err != nil {
		return errors.Wrap(err, "invalid [gateway] section")
	}
	if err := c.validateFirewall(); err != nil {
		return errors.Wrap(err, "invalid [firewall] section")
	}
	for _, a := range c.Alarms.All() {
		if a.Threshold <= 0 {
			return errors.New("invalid [alarms] section: threshold must be positive")
		}
		if a.Periods < 1 {
			return errors.New("invalid [alarms] section: periods must be at least 1")
		}
	}
	return nil
}

func (c *Config) validateNetwork() error {
	_, ipnet, err := net.ParseCIDR(c.Network.Cidr)
	if err != nil {
		return errors.Wrap(err, "cidr is not parseable")
	}
	ones, _ := ipnet.Mask.Size()
	if c.Network.SubnetMask <= ones || c.Network.SubnetMask > 28 {
		return errors.New(fmt.Sprintf("subnet_mask must be tighter than /%d and at most /28", ones))
	}
	if c.Network.FlowLogRetentionDays < 1 {
		return errors.New("flow_log_retention_days must be at least 1")
	}
	return nil
}

func (c *Config) validateTable() error {
	if c.Table.PartitionKey == "" {
		return errors.New("partition_key must not be empty")
	}
	if c.Table.ReadCapacity < 1 || c.Table.WriteCapacity < 1 {
		return errors.New("read_capacity and write_capacity must be at least 1")
	}
	if !c.Table.CapacityRangeValid() {
		return errors.New(fmt.Sprintf(
			"write autoscaling bounds must satisfy min <= base <= max and min < max, got min=%d base=%d max=%d",
			c.Table.MinWriteCapacity, c.Table.WriteCapacity, c.Table.MaxWriteCapacity,
		))
	}
	if c.Table.TargetUtilization < 20 || c.Table.TargetUtilization > 90 {
		return errors.New("target_utilization must be between 20 and 90")
	}
	return nil
}

func (c *Config) validateFunction() error {
	if !c.Function.RuntimeValid() {
		return errors.New(fmt.Sprintf("unknown runtime %q", c.Function.Runtime))
	}
	if c.Function.CodePath == "" {
		return errors.New("code_path must not be empty")
	}
	if c.Function.MemorySize < 128 || c.Function.MemorySize > 10240 {
		return errors.New("memory_size must be between 128 and 10240")
	}
	if c.Function.Timeout < 1 || c.Function.Timeout > 900 {
		return errors.New("timeout must be between 1 and 900 seconds")
	}
	if c.Function.ReservedConcurrency < 0 {
		return errors.New("reserved_concurrency must not be negative")
	}
	return nil
}

func (c *Config) validateGateway() error {
	if c.Gateway.Stage == "" {
		return errors.New("stage must not be empty")
	}
	if c.Gateway.RateLimit < 1 {
		return errors.New("rate_limit must be at least 1")
	}
	if c.Gateway.BurstLimit < c.Gateway.RateLimit {
		return errors.New("burst_limit must not be lower than rate_limit")
	}
	if !c.Gateway.FitsReservation(c.Function) {
		return errors.New(fmt.Sprintf(
			"reserved_concurrency %d exceeds what a rate limit of %d req/s can sustain (%d)",
			c.Function.ReservedConcurrency, c.Gateway.RateLimit, c.Gateway.SustainedCapacity(),
		))
	}
	return nil
}

func (c *Config) validateFirewall() error {
	if !c.Firewall.Enabled {
		return nil
	}
	// WAF rejects rate-based rule limits below 100.
	if c.Firewall.RateLimit < 100 {
		return errors.New("rate_limit must be at least 100 when the firewall is enabled")
	}
	return nil
}
