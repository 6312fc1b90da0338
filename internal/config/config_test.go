package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wt61_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `# WT61 logger configuration
SERIAL_PORT = /dev/ttyUSB0
BAUD_RATE = 115200

MQTT_BROKER = tcp://localhost:1883
MQTT_CLIENT_ID_PRODUCER = wt61-producer

TOPIC_ACCEL = wt61/accel
TOPIC_GYRO = wt61/gyro
TOPIC_ANGLE = wt61/angle
TOPIC_STATE = wt61/state

CSV_DIR = /var/log/wt61
CSV_BASE_NAME = log

CONSOLE_UPDATE_INTERVAL = 100
DISPLAY_UPDATE_INTERVAL = 250
WEB_SERVER_PORT = 8080
`

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB0", cfg.SerialPort)
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTTBroker)
	assert.Equal(t, "wt61/accel", cfg.TopicAccel)
	assert.Equal(t, "wt61/state", cfg.TopicState)
	assert.Equal(t, "log", cfg.CSVBaseName)
	assert.Equal(t, 8080, cfg.WebServerPort)
	assert.Equal(t, 250, cfg.DisplayUpdateInterval)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+"NOT_A_KEY = 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := Load(writeConfig(t, "SERIAL_PORT /dev/ttyUSB0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config line 1")
}

func TestLoadRejectsBadNumber(t *testing.T) {
	_, err := Load(writeConfig(t, "BAUD_RATE = fast\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid BAUD_RATE")
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		drop   string
		expect string
	}{
		{"missing serial port", "SERIAL_PORT", "SERIAL_PORT is required"},
		{"missing baud rate", "BAUD_RATE", "BAUD_RATE is required"},
		{"missing broker", "MQTT_BROKER", "MQTT_BROKER is required"},
		{"missing csv base name", "CSV_BASE_NAME", "CSV_BASE_NAME is required"},
		{"missing console interval", "CONSOLE_UPDATE_INTERVAL", "CONSOLE_UPDATE_INTERVAL is required"},
		{"missing display interval", "DISPLAY_UPDATE_INTERVAL", "DISPLAY_UPDATE_INTERVAL is required"},
		{"missing web server port", "WEB_SERVER_PORT", "WEB_SERVER_PORT is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			for _, line := range strings.Split(validConfig, "\n") {
				if strings.HasPrefix(strings.TrimSpace(line), tc.drop) {
					continue
				}
				out.WriteString(line + "\n")
			}
			_, err := Load(writeConfig(t, out.String()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expect)
		})
	}
}
