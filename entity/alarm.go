package entity

// Alarm holds a single threshold/evaluation-period pair.
type Alarm struct {
	Threshold float64 `toml:"threshold"`
	Periods   int     `toml:"periods"`
}

// Alarms maps the [alarms] section, one entry per monitored failure mode.
type Alarms struct {
	FunctionErrors      Alarm `toml:"function_errors"`
	FunctionThrottles   Alarm `toml:"function_throttles"`
	GatewayServerErrors Alarm `toml:"gateway_server_errors"`
	TableUserErrors     Alarm `toml:"table_user_errors"`
	TableWriteThrottles Alarm `toml:"table_write_throttles"`
}

// All returns every configured alarm for bulk validation.
func (a Alarms) All() []Alarm {
	return []Alarm{
		a.FunctionErrors,
		a.FunctionThrottles,
		a.GatewayServerErrors,
		a.TableUserErrors,
		a.TableWriteThrottles,
	}
}
