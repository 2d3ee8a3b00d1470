package entity

// Network maps the [network] section. Subnets are always isolated,
// no internet route is provisioned.
type Network struct {
	Cidr                 string `toml:"cidr"`
	SubnetMask           int    `toml:"subnet_mask"`
	FlowLogRetentionDays int    `toml:"flow_log_retention_days"`
}
