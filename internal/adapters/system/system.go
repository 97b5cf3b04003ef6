// Package system adapts the wall clock and the random id generator to the
// service ports.
package system

import (
	"time"

	"github.com/google/uuid"

	"notes/internal/domain"
	"notes/internal/ports"
)

var (
	_ ports.Clock      = SystemClock{}
	_ ports.IDProvider = RandomIDProvider{}
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// RandomIDProvider mints UUIDv4 task ids.
type RandomIDProvider struct{}

// NewID returns a fresh random id.
func (RandomIDProvider) NewID() domain.TaskID { return domain.TaskID(uuid.NewString()) }
