package main

import (
	"fmt"
	"strconv"
	"strings"
)

// ageValue is a pflag.Value that accepts an age as months ("60", "60개월") or
// years ("5세") and normalizes it to months.
type ageValue struct {
	months int
}

func (a *ageValue) String() string {
	return fmt.Sprintf("%d개월", a.months)
}

func (a *ageValue) Set(raw string) error {
	value := strings.TrimSpace(raw)

	years := false
	switch {
	case strings.HasSuffix(value, "개월"):
		value = strings.TrimSuffix(value, "개월")
	case strings.HasSuffix(value, "세"):
		value = strings.TrimSuffix(value, "세")
		years = true
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid age %q: use months (60, 60개월) or years (5세)", raw)
	}
	if n < 0 {
		return fmt.Errorf("age must not be negative: %q", raw)
	}
	if years {
		n *= 12
	}
	a.months = n
	return nil
}

func (a *ageValue) Type() string {
	return "age"
}
