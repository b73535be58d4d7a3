package sms

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverPayamak selects the payamak-panel REST gateway.
	DriverPayamak = "payamak"
	// DriverLog selects the logging backend for development.
	DriverLog = "log"
)

// ErrUnknownDriver indicates an unsupported SMS driver.
var ErrUnknownDriver = errors.New("sms: unknown driver")

// FactoryOptions groups config for supported SMS backends.
type FactoryOptions struct {
	// Payamak provides configuration for the payamak driver.
	Payamak PayamakConfig
}

// NewFromDriver constructs an SMS implementation by driver name.
func NewFromDriver(driver string, opts FactoryOptions) (SMS, error) {
	switch strings.TrimSpace(driver) {
	case DriverPayamak:
		return NewPayamak(opts.Payamak)
	case DriverLog:
		return NewLog(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
