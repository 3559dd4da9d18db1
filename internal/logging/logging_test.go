package logging

import (
	"bytes"
	stdlog "log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name       string
		provider   Provider
		filename   string
		expectType Logger
		expectErr  bool
	}{
		{
			name:       "jellog log",
			provider:   Jellog,
			filename:   "test-jellog.log",
			expectType: jellogLogger{},
		},
		{
			name:       "standard log",
			provider:   StdLog,
			filename:   "test-std.log",
			expectType: stdLogger{},
		},
		{
			name:      "NoLog provider is an error",
			provider:  NoLog,
			filename:  "test-none.log",
			expectErr: true,
		},
		{
			name:      "unknown provider is an error",
			provider:  Provider(-1),
			filename:  "test-unknown.log",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tempDir := t.TempDir()
			filePath := filepath.Join(tempDir, tc.filename)

			actual, err := New(tc.provider, filePath)

			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
				assert.IsType(tc.expectType, actual)
			}
		})
	}
}

func Test_ParseProvider(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Provider
		expectErr bool
	}{
		{name: "blank", input: "", expect: NoLog},
		{name: "none", input: "none", expect: NoLog},
		{name: "jellog", input: "Jellog", expect: Jellog},
		{name: "std", input: "STD", expect: StdLog},
		{name: "unknown", input: "syslog", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseProvider(tc.input)

			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
				assert.Equal(tc.expect, actual)
				assert.Equal(actual.String(), tc.expect.String())
			}
		})
	}
}

func Test_WithRun(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	base := stdLogger{std: stdlog.New(&buf, "", 0)}

	log := WithRun(base, "abc")
	log.Info("starting")
	log.Warnf("probe %s slow", "random")

	assert.Equal("INFO  [abc] starting\nWARN  [abc] probe random slow\n", buf.String())
}
