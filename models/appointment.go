package models

// CreateAppointmentRequest is candidate appointment data submitted by a
// caller. All fields except Notes are mandatory.
type CreateAppointmentRequest struct {
	DoctorID int     `json:"doctorId"`
	Date     string  `json:"date"` // "yyyy-mm-dd"
	Time     string  `json:"time"` // "HH:mm"
	Reason   string  `json:"reason"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest is a typed partial update. A nil field means
// "leave unchanged". Notes may be present and empty to clear the notes.
type UpdateAppointmentRequest struct {
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
	Reason *string `json:"reason,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// AppointmentDetail is the currently loaded appointment an update request
// is diffed against.
type AppointmentDetail struct {
	ID        int     `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason"`
	Notes     *string `json:"notes,omitempty"`
	Price     string  `json:"price,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// ValidationResult is the fail-soft outcome of a validation call.
type ValidationResult struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Valid returns a passing validation result.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Invalid returns a failing validation result with the given message.
func Invalid(msg string) ValidationResult {
	return ValidationResult{IsValid: false, ErrorMessage: msg}
}
