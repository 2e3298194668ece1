package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*Config)
		valid  bool
	}

	cases := []testCase{
		{name: "defaults are valid", mutate: func(*Config) {}, valid: true},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, valid: false},
		{name: "negative events", mutate: func(c *Config) { c.Events = -1 }, valid: false},
		{name: "negative fixed energy", mutate: func(c *Config) { c.FixedEnergyMeV = -1 }, valid: false},
		{name: "unknown logging level", mutate: func(c *Config) { c.LoggingLevel = "verbose" }, valid: false},
		{name: "debug logging level", mutate: func(c *Config) { c.LoggingLevel = "debug" }, valid: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conf := Default()
			tc.mutate(&conf)
			err := conf.Check()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSetLoggingLevel(t *testing.T) {
	assert.NoError(t, SetLoggingLevel("warn"))
	assert.Error(t, SetLoggingLevel("chatty"))
	assert.NoError(t, SetLoggingLevel("info"))
}
