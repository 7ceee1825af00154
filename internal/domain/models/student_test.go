package models_test

import (
	"testing"
	"time"

	"github.com/pablutus/catequesis/internal/domain/models"
)

func TestAgeAt_YearDifferenceOnly(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		birth time.Time
		want  int
	}{
		// The birthday-not-yet-reached case still counts the full year.
		{time.Date(2016, 11, 30, 0, 0, 0, 0, time.UTC), 10},
		{time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), 10},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, c := range cases {
		if got := models.AgeAt(c.birth, now); got != c.want {
			t.Errorf("AgeAt(%v): got %d, want %d", c.birth, got, c.want)
		}
	}
}
