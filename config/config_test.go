package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, []string{"**/*.hcl"}, c.Inputs)
	assert.Equal(t, DriverFS, c.Output.Driver)
	assert.Equal(t, "out", c.Output.FSRoot)
	assert.True(t, c.Output.Overwrite)
	assert.Equal(t, 300*time.Millisecond, c.Watch.Debounce)
	assert.Equal(t, 4, c.Document.FormatVersion)
	require.NoError(t, c.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: DEBUG
inputs: [defs/**/*.hcl]
output:
  driver: s3
  prefix: feeder-12/
  s3:
    bucket: poles
    endpoint: http://localhost:9000
    path_style: true
watch:
  debounce: 1s
document:
  selected_load_case: 2
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, []string{"defs/**/*.hcl"}, c.Inputs)
	assert.Equal(t, []string{".git/**"}, c.Exclude)
	assert.Equal(t, Store{
		Driver:    DriverS3,
		FSRoot:    "out",
		Prefix:    "feeder-12/",
		Overwrite: true,
		S3:        S3{Bucket: "poles", Endpoint: "http://localhost:9000", PathStyle: true},
	}, c.Output)
	assert.Equal(t, time.Second, c.Watch.Debounce)
	assert.Equal(t, Document{FormatVersion: 4, SelectedLoadCase: 2}, c.Document)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(envLogLevel, "warn")
	t.Setenv(envDriver, "S3")
	t.Setenv(envBucket, "from-env")

	c, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, DriverS3, c.Output.Driver)
	assert.Equal(t, "from-env", c.Output.S3.Bucket)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		yaml  string
		match string
	}{
		{name: "syntax", yaml: "inputs: [", match: "parse"},
		{name: "driver", yaml: "output: {driver: ftp}", match: `"ftp"`},
		{name: "bucket", yaml: "output: {driver: s3}", match: "bucket"},
		{name: "level", yaml: "log_level: loud", match: "loud"},
		{name: "debounce", yaml: "watch: {debounce: -1s}", match: "debounce"},
		{name: "load case", yaml: "document: {selected_load_case: -1}", match: "selected_load_case"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.match)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", FileName)
	require.NoError(t, WriteDefault(path))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	require.NoError(t, os.WriteFile(path, []byte("log_level: error\n"), 0o644))
	require.NoError(t, WriteDefault(path))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", c.LogLevel)
}
