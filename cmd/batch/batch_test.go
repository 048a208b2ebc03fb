package batch

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
cases:
  - n: 2
    expect: {width: 3, height: 2, area: 6}
  - n: 3
    unitSquare: false
`)
	config, err := loadConfig(path)
	require.NoError(t, err)
	require.Len(t, config.Cases, 2)

	first := config.Cases[0]
	assert.Equal(t, 2, first.N)
	assert.Nil(t, first.UnitSquare)
	require.NotNil(t, first.Expect)
	assert.Equal(t, Expectation{Width: 3, Height: 2, Area: 6}, *first.Expect)

	second := config.Cases[1]
	assert.Equal(t, 3, second.N)
	require.NotNil(t, second.UnitSquare)
	assert.False(t, *second.UnitSquare)
	assert.Nil(t, second.Expect)
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want string
	}{
		{Name: "not yaml", Text: "cases: [n: }", Want: "error parsing config file"},
		{Name: "no cases", Text: "cases: []", Want: "lists no cases"},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.Text))
			assert.ErrorContains(t, err, tt.Want)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestRunCase(t *testing.T) {
	unitless := false
	tests := []struct {
		Name    string
		Case    Case
		Width   int
		Height  int
		WantErr string
	}{
		{
			Name:  "solves without expectations",
			Case:  Case{N: 2},
			Width: 3, Height: 2,
		},
		{
			Name:  "meets a matching expectation",
			Case:  Case{N: 3, Expect: &Expectation{Width: 5, Height: 3, Area: 15}},
			Width: 5, Height: 3,
		},
		{
			Name:  "solves with the unit square excluded",
			Case:  Case{N: 2, UnitSquare: &unitless},
			Width: 3, Height: 2,
		},
		{
			Name:    "reports a mismatched expectation",
			Case:    Case{N: 2, Expect: &Expectation{Width: 6, Height: 1, Area: 6}},
			WantErr: "solved 3x2 area 6, expected 6x1 area 6",
		},
		{
			Name:    "reports an invalid size",
			Case:    Case{N: 0},
			WantErr: "invalid instance size 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			packing, err := runCase(tt.Case)
			if tt.WantErr != "" {
				assert.ErrorContains(t, err, tt.WantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.Width, packing.Width)
			assert.Equal(t, tt.Height, packing.Height)
			assert.NoError(t, packing.Validate())
		})
	}
}

func TestRunCasesCountsFailures(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	config := Config{Cases: []Case{
		{N: 2, Expect: &Expectation{Width: 3, Height: 2, Area: 6}},
		{N: 2, Expect: &Expectation{Width: 2, Height: 3, Area: 6}},
		{N: 0},
	}}
	err := runCases(logrus.NewEntry(log), config)
	assert.EqualError(t, err, "2 of 3 cases failed")
}

func TestRunCasesAllPass(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	config := Config{Cases: []Case{{N: 1}, {N: 2}}}
	assert.NoError(t, runCases(logrus.NewEntry(log), config))
}
