package entity

// Table maps the [table] section into a DynamoDB table descriptor.
// Write capacity autoscales between MinWriteCapacity and MaxWriteCapacity
// around the provisioned WriteCapacity base.
type Table struct {
	Name                string `toml:"name"`
	PartitionKey        string `toml:"partition_key"`
	ReadCapacity        int    `toml:"read_capacity"`
	WriteCapacity       int    `toml:"write_capacity"`
	MinWriteCapacity    int    `toml:"min_write_capacity"`
	MaxWriteCapacity    int    `toml:"max_write_capacity"`
	TargetUtilization   int    `toml:"target_utilization"`
	PointInTimeRecovery bool   `toml:"point_in_time_recovery"`
	Stream              string `toml:"stream"`
}

// CapacityRangeValid reports whether the autoscaling bounds enclose the
// provisioned base capacity. The range must be strictly wider than a
// single point.
func (t Table) CapacityRangeValid() bool {
	if t.MinWriteCapacity >= t.MaxWriteCapacity {
		return false
	}
	return t.MinWriteCapacity <= t.WriteCapacity && t.WriteCapacity <= t.MaxWriteCapacity
}
