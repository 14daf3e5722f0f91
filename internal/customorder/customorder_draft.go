package customorder

import (
	"fmt"
	"regexp"
	"strings"
)

// Wizard steps. Personal info, style, measurements, material, then
// submitted once step 4 passes validation.
const (
	StepPersonalInfo = 1
	StepStyle        = 2
	StepMeasurements = 3
	StepMaterial     = 4
	StepSubmitted    = 5
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Measurements are kept as the raw form strings until order creation;
// validation only checks presence.
type Measurements struct {
	Bust     string `json:"bust"`
	Waist    string `json:"waist"`
	Hips     string `json:"hips"`
	Shoulder string `json:"shoulder"`
	Sleeves  string `json:"sleeves"`
	Length   string `json:"length"`
}

type Draft struct {
	Step int `json:"step"`

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	GarmentType      string `json:"garmentType"`
	StyleDescription string `json:"styleDescription"`
	Occasion         string `json:"occasion"`

	Measurements Measurements `json:"measurements"`

	FabricType        string `json:"fabricType"`
	FabricColor       string `json:"fabricColor"`
	DesignDetails     string `json:"designDetails"`
	ReferenceImageURL string `json:"referenceImageUrl"`
	Urgency           string `json:"urgency"`
	SpecialRequests   string `json:"specialRequests"`
}

// NewDraft starts an empty draft on step 1 with the default urgency.
func NewDraft() Draft {
	return Draft{Step: StepPersonalInfo, Urgency: UrgencyStandard}
}

// StepValidationError carries the per-field error set for a step that
// failed validation. The wizard stays on the step and shows the fields.
type StepValidationError struct {
	Step   int
	Fields map[string]string
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %d validation failed", e.Step)
}

// Validate checks the requirements of the given step only. Later steps
// are not inspected, earlier ones were gated when they advanced.
func (d Draft) Validate(step int) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepPersonalInfo:
		if strings.TrimSpace(d.FullName) == "" {
			errs["fullName"] = "Full name is required"
		}
		if !emailPattern.MatchString(d.Email) {
			errs["email"] = "A valid email is required"
		}
		if strings.TrimSpace(d.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
	case StepStyle:
		if _, ok := GarmentCatalog[d.GarmentType]; !ok {
			errs["garmentType"] = "Please select a garment type"
		}
	case StepMeasurements:
		if strings.TrimSpace(d.Measurements.Bust) == "" {
			errs["bust"] = "Bust measurement is required"
		}
		if strings.TrimSpace(d.Measurements.Waist) == "" {
			errs["waist"] = "Waist measurement is required"
		}
		if strings.TrimSpace(d.Measurements.Hips) == "" {
			errs["hips"] = "Hips measurement is required"
		}
		if strings.TrimSpace(d.Measurements.Length) == "" {
			errs["length"] = "Length measurement is required"
		}
	case StepMaterial:
		if _, ok := FabricCatalog[d.FabricType]; !ok {
			errs["fabricType"] = "Please select a fabric type"
		}
	}

	return errs
}

// Advance validates the current step and moves forward on success.
// Step 4 advances to Submitted, which marks the draft as the active
// checkout transfer payload.
func (d *Draft) Advance() error {
	if d.Step < StepPersonalInfo || d.Step > StepMaterial {
		return nil
	}
	if errs := d.Validate(d.Step); len(errs) > 0 {
		return &StepValidationError{Step: d.Step, Fields: errs}
	}
	d.Step++
	return nil
}

// Back moves to the previous step, preserving all field values. Going
// back from step 1 or after submission is a no-op.
func (d *Draft) Back() {
	if d.Step > StepPersonalInfo && d.Step <= StepMaterial {
		d.Step--
	}
}

// Submitted reports whether the draft finished the wizard and is
// waiting to be consumed by checkout.
func (d Draft) Submitted() bool {
	return d.Step == StepSubmitted
}
