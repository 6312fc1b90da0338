package app

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/wt61_logger/internal/reading"
	"github.com/relabs-tech/wt61_logger/internal/wt61"
)

func TestPipelineEndToEnd(t *testing.T) {
	accel := wt61.EncodeFrame(wt61.PacketAcceleration, 256, 256, 256, 26)
	gyro := wt61.EncodeFrame(wt61.PacketAngularVelocity, 2048, 0, 0, 26)
	angle := wt61.EncodeFrame(wt61.PacketAngle, 8192, 0, 0, 26)

	stream := append(append(append([]byte{0xDE, 0xAD}, accel[:]...), gyro[:]...), angle[:]...)

	var got []reading.Reading
	var last reading.State
	p := NewPipeline(func(r reading.Reading, snap reading.State) {
		got = append(got, r)
		last = snap
	})

	require.NoError(t, p.Run(bytes.NewReader(stream)))

	require.Len(t, got, 3)
	assert.Equal(t, reading.Acceleration, got[0].Kind)
	assert.InDelta(t, 0.125, got[0].X, 1e-9)
	assert.Equal(t, reading.AngularVelocity, got[1].Kind)
	assert.InDelta(t, 125.0, got[1].X, 1e-9)
	assert.Equal(t, reading.Angle, got[2].Kind)
	assert.InDelta(t, 45.0, got[2].X, 1e-9)

	// final snapshot carries all three categories
	assert.InDelta(t, 0.125, last.Ax, 1e-9)
	assert.InDelta(t, 125.0, last.Wx, 1e-9)
	assert.InDelta(t, 45.0, last.Roll, 1e-9)
	assert.InDelta(t, 26.0/340.0+36.25, last.TempC, 1e-9)

	assert.Equal(t, uint64(3), p.Frames())
	assert.Equal(t, uint64(0), p.Rejected())
}

func TestPipelineSurvivesOneByteReads(t *testing.T) {
	f := wt61.EncodeFrame(wt61.PacketAcceleration, 1, 2, 3, 4)

	var got []reading.Reading
	p := NewPipeline(func(r reading.Reading, _ reading.State) {
		got = append(got, r)
	})

	require.NoError(t, p.Run(iotest.OneByteReader(bytes.NewReader(f[:]))))
	assert.Len(t, got, 1)
}

func TestPipelineRecoversFromCorruption(t *testing.T) {
	good := wt61.EncodeFrame(wt61.PacketAngle, 100, 0, 0, 26)
	corrupted := wt61.EncodeFrame(wt61.PacketAcceleration, 1, 1, 1, 26)
	corrupted[10] ^= 0xFF

	var got []reading.Reading
	p := NewPipeline(func(r reading.Reading, _ reading.State) {
		got = append(got, r)
	})

	require.NoError(t, p.Run(bytes.NewReader(append(corrupted[:], good[:]...))))

	require.Len(t, got, 1)
	assert.Equal(t, reading.Angle, got[0].Kind)
	assert.GreaterOrEqual(t, p.Rejected(), uint64(1))
}

func TestPipelineDropsUnknownPacketTypes(t *testing.T) {
	unknown := wt61.EncodeFrame(wt61.PacketType(0x54), 1, 2, 3, 4)
	good := wt61.EncodeFrame(wt61.PacketAcceleration, 1, 2, 3, 4)

	var got []reading.Reading
	p := NewPipeline(func(r reading.Reading, _ reading.State) {
		got = append(got, r)
	})

	require.NoError(t, p.Run(bytes.NewReader(append(unknown[:], good[:]...))))

	// the unknown frame scans as valid but never reaches the aggregator
	require.Len(t, got, 1)
	assert.Equal(t, reading.Acceleration, got[0].Kind)
	assert.Equal(t, uint64(2), p.Frames())
	assert.Equal(t, uint64(1), p.Unsupported())
}

func TestPipelineEOFIsGraceful(t *testing.T) {
	p := NewPipeline(nil)
	assert.NoError(t, p.Run(bytes.NewReader(nil)))
}

func TestPipelineSurfacesTransportFault(t *testing.T) {
	boom := errors.New("device unplugged")
	p := NewPipeline(nil)
	err := p.Run(iotest.ErrReader(boom))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestMockStreamProducesValidFrames(t *testing.T) {
	var got []reading.Reading
	p := NewPipeline(func(r reading.Reading, _ reading.State) {
		got = append(got, r)
	})

	src := NewMockStream(0)
	buf := make([]byte, 64)
	for len(got) < 6 {
		n, err := src.Read(buf)
		require.NoError(t, err)
		p.feed(buf[:n])
	}

	assert.Zero(t, p.Rejected())
	assert.Zero(t, p.Unsupported())
	kinds := map[reading.Kind]bool{}
	for _, r := range got {
		kinds[r.Kind] = true
	}
	assert.Len(t, kinds, 3)
}
