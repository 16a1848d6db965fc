package validation

import (
	"sort"
	"time"

	"activity-sampler/internal/domain"
	"activity-sampler/internal/eventstore"
)

// ActivityRecordDecoder turns raw event store records into activities.
type ActivityRecordDecoder struct {
	validator *Validator
	known     map[string]bool
}

// NewActivityRecordDecoder creates a decoder for the activity record schema.
func NewActivityRecordDecoder() *ActivityRecordDecoder {
	known := make(map[string]bool)
	for _, field := range eventstore.RequiredFields {
		known[field] = true
	}
	for _, field := range eventstore.OptionalFields {
		known[field] = true
	}
	return &ActivityRecordDecoder{validator: NewValidator(), known: known}
}

// Decode validates record and resolves its timestamp into loc. Every schema
// violation is reported in the returned *ValidationError.
func (d *ActivityRecordDecoder) Decode(record eventstore.Record, loc *time.Location) (domain.Activity, error) {
	if loc == nil {
		loc = time.Local
	}
	validationError := NewValidationError()

	unknown := make([]string, 0)
	for key := range record {
		if !d.known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		validationError.AddUnknownFieldError(key, record[key])
	}

	required := make(map[string]string, len(eventstore.RequiredFields))
	for _, field := range eventstore.RequiredFields {
		value, present := record[field]
		if !present || value == nil {
			validationError.AddRequiredError(field)
			continue
		}
		s, ok := value.(string)
		if !ok {
			validationError.AddInvalidTypeError(field, value, "string")
			continue
		}
		if !d.validator.IsNonEmptyString(s) {
			validationError.AddRequiredError(field)
			continue
		}
		required[field] = s
	}

	optional := make(map[string]string, len(eventstore.OptionalFields))
	for _, field := range eventstore.OptionalFields {
		value, present := record[field]
		if !present || value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			validationError.AddInvalidTypeError(field, value, "string")
			continue
		}
		optional[field] = s
	}

	var activity domain.Activity
	if raw, ok := required[eventstore.FieldTimestamp]; ok {
		if t, valid := d.validator.IsValidTimestamp(raw); valid {
			activity.DateTime = t.In(loc)
		} else {
			validationError.AddInvalidFormatError(eventstore.FieldTimestamp, raw, "ISO-8601 instant, e.g. 2025-08-29T09:17:00Z")
		}
	}
	if raw, ok := required[eventstore.FieldDuration]; ok {
		if duration, err := domain.ParseISODuration(raw); err != nil {
			validationError.AddInvalidFormatError(eventstore.FieldDuration, raw, "non-negative ISO-8601 duration, e.g. PT30M")
		} else {
			activity.Duration = duration
		}
	}

	if err := validationError.ErrorOrNil(); err != nil {
		return domain.Activity{}, err
	}

	activity.Client = required[eventstore.FieldClient]
	activity.Project = required[eventstore.FieldProject]
	activity.Task = required[eventstore.FieldTask]
	activity.Notes = optional[eventstore.FieldNotes]
	activity.Category = optional[eventstore.FieldCategory]
	return activity, nil
}

// ActivityValidator checks activities before they are recorded.
type ActivityValidator struct {
	validator *Validator
}

// NewActivityValidator creates a new activity validator
func NewActivityValidator() *ActivityValidator {
	return &ActivityValidator{validator: NewValidator()}
}

// ValidateActivityForLogging validates an activity before it is appended to
// the log.
func (av *ActivityValidator) ValidateActivityForLogging(activity domain.Activity) error {
	validationError := NewValidationError()

	if activity.DateTime.IsZero() {
		validationError.AddRequiredError(eventstore.FieldTimestamp)
	}
	if !av.validator.IsNonNegativeDuration(activity.Duration) {
		validationError.AddInvalidValueError(eventstore.FieldDuration, activity.Duration, "must not be negative")
	}
	if !av.validator.IsNonEmptyString(activity.Client) {
		validationError.AddRequiredError(eventstore.FieldClient)
	}
	if !av.validator.IsNonEmptyString(activity.Project) {
		validationError.AddRequiredError(eventstore.FieldProject)
	}
	if !av.validator.IsNonEmptyString(activity.Task) {
		validationError.AddRequiredError(eventstore.FieldTask)
	}

	return validationError.ErrorOrNil()
}
