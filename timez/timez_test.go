package timez

import "testing"

func TestUTCDate(t *testing.T) {
	t1 := UTCDate(2023, 10, 1)
	t2 := UTCDate(2023, 3, 0)
	if t1.Year() != 2023 || t1.Month() != 10 || t1.Day() != 1 {
		t.Errorf("Expected date to be 2023-10-01, got %s", t1)
	}
	if t2.Month() != 2 || t2.Day() != 28 {
		t.Errorf("Expected date to be 2023-02-28, got %s", t2)
	}
}
