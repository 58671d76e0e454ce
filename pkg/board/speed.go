package board

import "fmt"

// SpeedConfig names a tick-rate/travel-time/cooldown profile. Progress
// arithmetic elsewhere keeps everything integer-tick based.
type SpeedConfig struct {
	Name           string
	TickRateHz     int
	TicksPerSquare int
	CooldownTicks  int
}

var (
	// StandardSpeed: 10 Hz, 1s travel per square, 10s post-move cooldown.
	StandardSpeed = SpeedConfig{Name: "standard", TickRateHz: 10, TicksPerSquare: 10, CooldownTicks: 100}

	// LightningSpeed: 10 Hz, 0.2s travel per square, 2s post-move cooldown.
	LightningSpeed = SpeedConfig{Name: "lightning", TickRateHz: 10, TicksPerSquare: 2, CooldownTicks: 20}
)

// TickPeriodMillis is the wall-clock duration of one tick.
func (s SpeedConfig) TickPeriodMillis() int {
	return 1000 / s.TickRateHz
}

func (s SpeedConfig) String() string {
	return fmt.Sprintf("%v{%vHz, %v ticks/sq, cooldown=%v}", s.Name, s.TickRateHz, s.TicksPerSquare, s.CooldownTicks)
}
