package detect_test

import (
	"fmt"
	"testing"

	"github.com/nvup/nvup/pkg/detect"
	"github.com/nvup/nvup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeHost(present ...string) detect.LookPathFunc {
	set := make(map[string]bool, len(present))
	for _, p := range present {
		set[p] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", fmt.Errorf("%s: executable file not found in $PATH", name)
	}
}

func TestDetect_Pacman(t *testing.T) {
	m, err := detect.Detect(fakeHost("pacman"))
	require.NoError(t, err)
	assert.Equal(t, detect.Pacman, m)
}

func TestDetect_Apt(t *testing.T) {
	m, err := detect.Detect(fakeHost("apt-get"))
	require.NoError(t, err)
	assert.Equal(t, detect.Apt, m)
}

func TestDetect_PacmanWinsWhenBothPresent(t *testing.T) {
	m, err := detect.Detect(fakeHost("pacman", "apt-get"))
	require.NoError(t, err)
	assert.Equal(t, detect.Pacman, m)
}

func TestDetect_IsDeterministic(t *testing.T) {
	host := fakeHost("pacman", "apt-get")
	first, err := detect.Detect(host)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		m, err := detect.Detect(host)
		require.NoError(t, err)
		assert.Equal(t, first, m)
	}
}

func TestDetect_Unsupported(t *testing.T) {
	_, err := detect.Detect(fakeHost())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedOS))
	assert.Contains(t, err.Error(), "manually")
}

func TestManager_Binary(t *testing.T) {
	assert.Equal(t, "pacman", detect.Pacman.Binary())
	assert.Equal(t, "apt-get", detect.Apt.Binary())
}
