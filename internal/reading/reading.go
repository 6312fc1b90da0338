// Package reading holds the unit-converted sensor readings and the
// aggregate "latest known state" shared by the logger, the MQTT
// producer and the consumers.
package reading

// Kind says which physical quantity a Reading's vector measures.
type Kind int

const (
	Acceleration    Kind = iota // g
	AngularVelocity             // deg/s
	Angle                       // deg
)

func (k Kind) String() string {
	switch k {
	case Acceleration:
		return "accel"
	case AngularVelocity:
		return "gyro"
	case Angle:
		return "angle"
	}
	return "unknown"
}

// Reading is one converted measurement: a vector in the units of its
// kind, plus the temperature the same frame carried. Immutable once
// created.
type Reading struct {
	Kind Kind `json:"kind"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	TempC float64 `json:"temp_c"` // °C
}

// State is the latest known value of every category: acceleration in g,
// angular velocity in deg/s, orientation angles in deg, temperature in
// °C. Field names follow the CSV log columns.
type State struct {
	Ax float64 `json:"ax"`
	Ay float64 `json:"ay"`
	Az float64 `json:"az"`

	Wx float64 `json:"wx"`
	Wy float64 `json:"wy"`
	Wz float64 `json:"wz"`

	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`

	TempC float64 `json:"temp_c"`
}
