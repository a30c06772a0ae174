package service

import "errors"

// MaxPageSize is the pagination ceiling enforced by every list operation.
// Requests with a page size greater than or equal to this value are
// rejected, so the largest accepted size is MaxPageSize-1.
const MaxPageSize = 100

// Business failure kinds surfaced by the services. All of them are
// recoverable, caller-visible errors: the API layer translates them into
// transport responses, the services never panic for them.
var (
	// ErrPersonNotFound covers athlete and coach lookups by id or document.
	ErrPersonNotFound = errors.New("person not found")

	// ErrAppointmentNotFound covers appointment lookups in command paths.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrTrainingSheetNotFound covers training sheet lookups in command paths.
	ErrTrainingSheetNotFound = errors.New("training sheet not found")

	// ErrMaxPageSizeExceeded rejects page requests at or above MaxPageSize.
	ErrMaxPageSizeExceeded = errors.New("maximum pagination exceeded")

	// ErrInvalidInput rejects absent required payloads.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoTrainingSheets signals that a person has no training sheets yet.
	ErrNoTrainingSheets = errors.New("no training sheets found for this person")

	// ErrNoAttachment signals that a training sheet has no stored attachment.
	ErrNoAttachment = errors.New("training sheet has no attachment")
)
