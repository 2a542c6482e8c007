package config

import (
	"testing"
	"time"
)

func TestValidateCronSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		wantErr  bool
	}{
		{name: "daily at 00:05", schedule: "5 0 * * *", wantErr: false},
		{name: "every 6 hours", schedule: "0 */6 * * *", wantErr: false},
		{name: "weekdays", schedule: "30 9 * * 1-5", wantErr: false},
		{name: "empty", schedule: "", wantErr: true},
		{name: "too few fields", schedule: "5 0 *", wantErr: true},
		{name: "garbage", schedule: "not a cron", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCronSchedule(%q) error = %v, wantErr %v", tt.schedule, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "UTC", timezone: "UTC", wantErr: false},
		{name: "IANA name", timezone: "Asia/Tokyo", wantErr: false},
		{name: "empty", timezone: "", wantErr: true},
		{name: "bogus", timezone: "Mars/Olympus_Mons", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimezone(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimezone(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	if err := ValidatePositiveDuration(time.Second); err != nil {
		t.Errorf("positive duration rejected: %v", err)
	}
	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("zero duration accepted")
	}
	if err := ValidatePositiveDuration(-time.Second); err == nil {
		t.Error("negative duration accepted")
	}
}

func TestValidateIntRange(t *testing.T) {
	if err := ValidateIntRange(5, 1, 10); err != nil {
		t.Errorf("in-range value rejected: %v", err)
	}
	if err := ValidateIntRange(0, 1, 10); err == nil {
		t.Error("below-range value accepted")
	}
	if err := ValidateIntRange(11, 1, 10); err == nil {
		t.Error("above-range value accepted")
	}
}
