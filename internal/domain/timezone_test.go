package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveTimezone(t *testing.T) {
	tests := []struct {
		name         string
		zone         string
		siteDefault  string
		wantName     string
		wantFallback bool
	}{
		{
			name:         "valid location zone",
			zone:         "Europe/Budapest",
			siteDefault:  "UTC",
			wantName:     "Europe/Budapest",
			wantFallback: false,
		},
		{
			name:         "unknown zone falls back to site default",
			zone:         "Mars/Olympus",
			siteDefault:  "Europe/Budapest",
			wantName:     "Europe/Budapest",
			wantFallback: true,
		},
		{
			name:         "empty zone falls back to site default",
			zone:         "",
			siteDefault:  "Europe/Budapest",
			wantName:     "Europe/Budapest",
			wantFallback: true,
		},
		{
			name:         "both unknown fall back to UTC",
			zone:         "Mars/Olympus",
			siteDefault:  "Venus/Cloud",
			wantName:     "UTC",
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, fallback := ResolveTimezone(tt.zone, tt.siteDefault)
			assert.Equal(t, tt.wantName, zone.String())
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

func TestISOWeekday(t *testing.T) {
	// 2026-03-16 понедельник, 2026-03-22 воскресенье
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, ISOWeekday(monday))
	assert.Equal(t, 7, ISOWeekday(sunday))
}
