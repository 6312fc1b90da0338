package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatorMergesPerKind(t *testing.T) {
	a := NewAggregator()

	s := a.Update(Reading{Kind: Acceleration, X: 0.1, Y: 0.2, Z: 0.9, TempC: 25})
	assert.Equal(t, 0.1, s.Ax)
	assert.Equal(t, 0.9, s.Az)
	assert.Equal(t, 25.0, s.TempC)
	assert.Zero(t, s.Wx)
	assert.Zero(t, s.Roll)

	s = a.Update(Reading{Kind: AngularVelocity, X: 10, Y: 20, Z: 30, TempC: 25.5})
	assert.Equal(t, 10.0, s.Wx)
	assert.Equal(t, 30.0, s.Wz)
	// acceleration untouched
	assert.Equal(t, 0.1, s.Ax)
	// temperature always follows the latest frame
	assert.Equal(t, 25.5, s.TempC)

	s = a.Update(Reading{Kind: Angle, X: 1, Y: 2, Z: 3, TempC: 26})
	assert.Equal(t, 1.0, s.Roll)
	assert.Equal(t, 2.0, s.Pitch)
	assert.Equal(t, 3.0, s.Yaw)
}

func TestAggregatorLastWriterWins(t *testing.T) {
	a := NewAggregator()
	a.Update(Reading{Kind: Acceleration, X: 1, Y: 1, Z: 1, TempC: 20})
	s := a.Update(Reading{Kind: Acceleration, X: 2, Y: 2, Z: 2, TempC: 21})
	assert.Equal(t, 2.0, s.Ax)
	assert.Equal(t, 2.0, s.Ay)
	assert.Equal(t, 2.0, s.Az)
}

func TestSnapshotIsIsolated(t *testing.T) {
	a := NewAggregator()
	a.Update(Reading{Kind: Angle, X: 5, Y: 6, Z: 7, TempC: 22})

	snap := a.Snapshot()
	a.Update(Reading{Kind: Angle, X: 50, Y: 60, Z: 70, TempC: 23})

	// the earlier snapshot is a value copy, not a view
	assert.Equal(t, 5.0, snap.Roll)
	assert.Equal(t, 50.0, a.Snapshot().Roll)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "accel", Acceleration.String())
	assert.Equal(t, "gyro", AngularVelocity.String())
	assert.Equal(t, "angle", Angle.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
