package utils

import (
	"log/slog"
	"os"
	"time"
)

// The deployment's home zone: timed events are converted into it and the
// calendar envelope advertises it. Overridable via the TIMEZONE env var.
const defaultTimezone = "Australia/Melbourne"

const defaultOutputPath = "unified_calendar.ics"

type Config struct {
	location  *time.Location
	output    string
	archiveDB string
}

func NewConfig() *Config {
	return &Config{
		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			if timezoneStr == "" {
				timezoneStr = defaultTimezone
			}
			loc, err := time.LoadLocation(timezoneStr)
			if err != nil {
				slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		output: func() string {
			output := os.Getenv("UNICAL_OUTPUT")
			if output == "" {
				output = defaultOutputPath
			}
			slog.Debug("env", "UNICAL_OUTPUT", output)
			return output
		}(),

		archiveDB: func() string {
			archiveDB := os.Getenv("UNICAL_ARCHIVE_DB")
			slog.Debug("env", "UNICAL_ARCHIVE_DB", archiveDB)
			return archiveDB
		}(),
	}
}

// Get TIMEZONE env, default to Australia/Melbourne
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get UNICAL_OUTPUT env, default to unified_calendar.ics
func (c *Config) GetOutput() string {
	return c.output
}

// Get UNICAL_ARCHIVE_DB env, empty when archiving is off
func (c *Config) GetArchiveDB() string {
	return c.archiveDB
}
