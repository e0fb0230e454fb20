// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	// ErrDuplicateSound reports a second registration of an already taken
	// name. The first registration stays in effect.
	ErrDuplicateSound = errors.New("sound name already registered")

	// ErrSoundNotFound reports a play or stop request for a name that was
	// never registered.
	ErrSoundNotFound = errors.New("sound not found")

	// ErrNoFreeChannel reports that every channel in the pool is busy. The
	// request is dropped; nothing is preempted.
	ErrNoFreeChannel = errors.New("no free channel")

	ErrUnknownCategory = errors.New("unknown sound category")
	ErrUnknownPriority = errors.New("unknown sound priority")
)
