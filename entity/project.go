package entity

// Project is the entity struct which maps the top-level project
// section of the configuration.
type Project struct {
	Name    string `toml:"project_name"`
	Profile string `toml:"profile"`
	Region  string `toml:"region"`
	Account string `toml:"account"`
}

// StackName returns the CloudFormation stack name derived from
// the project name.
func (p Project) StackName() string {
	return p.Name + "-stack"
}
