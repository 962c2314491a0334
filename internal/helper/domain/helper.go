package domain

import (
	"fmt"
	"time"

	id "helperhub/pkg/domain"
	"helperhub/pkg/platform/clock"
	"helperhub/pkg/platform/sentinel"
	"helperhub/pkg/result"
)

// HelperStatus is the review lifecycle of a helper.
//
// Transitions: pending_review → approved | rejected. No other moves.
type HelperStatus string

const (
	StatusPendingReview HelperStatus = "pending_review"
	StatusApproved      HelperStatus = "approved"
	StatusRejected      HelperStatus = "rejected"
)

// Helper is the aggregate root for an onboarded caregiver.
//
// Invariants:
//   - every attribute is a validated value object; no field can hold an
//     unvalidated primitive
//   - Status starts at pending_review and only moves through Approve/Reject
//   - CreatedAt is immutable after construction
//
// Construction goes through NewHelper, which composes the value-object
// factories; stores rehydrate persisted rows through RehydrateHelper without
// re-running validation.
type Helper struct {
	id           id.HelperID
	email        Email
	firstname    Firstname
	lastname     Lastname
	birthdate    Birthdate
	residence    Residence
	placeOfBirth string
	professions  []Profession
	status       HelperStatus
	createdAt    time.Time
}

// NewHelperParams carries the raw onboarding input. Residence is either a
// French department code or a foreign country; setting both is resolved in
// favour of the foreign path being an error only if the department is empty.
type NewHelperParams struct {
	Email            string
	Firstname        string
	Lastname         string
	Birthdate        time.Time
	FrenchDepartment string
	ForeignCountry   string
	PlaceOfBirth     string
	Professions      []string
}

// NewHelper validates every field and assembles the aggregate. When several
// fields are invalid, the failure that surfaces follows field declaration
// order: email, firstname, lastname, birthdate, residence. That precedence
// is part of the API contract.
func NewHelper(clk clock.Clock, p NewHelperParams) (*Helper, error) {
	residence := func() result.Result[any] {
		if p.ForeignCountry != "" && p.FrenchDepartment == "" {
			return fieldOf(NewForeignResidence(p.ForeignCountry))
		}
		return fieldOf(NewFrenchResidence(p.FrenchDepartment))
	}()

	fields := result.CombineFields([]result.Field{
		{Name: "email", Result: fieldOf(NewEmail(p.Email))},
		{Name: "firstname", Result: fieldOf(NewFirstname(p.Firstname))},
		{Name: "lastname", Result: fieldOf(NewLastname(p.Lastname))},
		{Name: "birthdate", Result: fieldOf(NewBirthdate(p.Birthdate, clk))},
		{Name: "residence", Result: residence},
	})
	values, err := fields.Unwrap()
	if err != nil {
		return nil, err
	}

	return &Helper{
		id:           id.NewHelperID(),
		email:        values["email"].(Email),
		firstname:    values["firstname"].(Firstname),
		lastname:     values["lastname"].(Lastname),
		birthdate:    values["birthdate"].(Birthdate),
		residence:    values["residence"].(Residence),
		placeOfBirth: p.PlaceOfBirth,
		professions:  NewProfessions(p.Professions),
		status:       StatusPendingReview,
		createdAt:    clk.Now(),
	}, nil
}

// fieldOf adapts a (value, error) factory return into a type-erased Result.
func fieldOf[T any](value T, err error) result.Result[any] {
	if err != nil {
		return result.Fail[any](err)
	}
	return result.Ok[any](value)
}

func (h *Helper) ID() id.HelperID { return h.id }

func (h *Helper) Email() Email { return h.email }

func (h *Helper) Firstname() Firstname { return h.firstname }

func (h *Helper) Lastname() Lastname { return h.lastname }

func (h *Helper) Birthdate() Birthdate { return h.birthdate }

func (h *Helper) Residence() Residence { return h.residence }

func (h *Helper) PlaceOfBirth() string { return h.placeOfBirth }

// Professions returns a copy; callers cannot mutate the aggregate through it.
func (h *Helper) Professions() []Profession {
	out := make([]Profession, len(h.professions))
	copy(out, h.professions)
	return out
}

func (h *Helper) Status() HelperStatus { return h.status }

func (h *Helper) CreatedAt() time.Time { return h.createdAt }

// Approve moves a pending helper to approved.
func (h *Helper) Approve() error {
	if h.status != StatusPendingReview {
		return fmt.Errorf("cannot approve helper in status %q: %w", h.status, sentinel.ErrInvalidState)
	}
	h.status = StatusApproved
	return nil
}

// Reject moves a pending helper to rejected.
func (h *Helper) Reject() error {
	if h.status != StatusPendingReview {
		return fmt.Errorf("cannot reject helper in status %q: %w", h.status, sentinel.ErrInvalidState)
	}
	h.status = StatusRejected
	return nil
}

// HelperSnapshot is the persistence shape of a Helper. Stores serialize and
// rehydrate through it; it performs no validation.
type HelperSnapshot struct {
	ID           id.HelperID
	Email        string
	Firstname    string
	Lastname     string
	Birthdate    time.Time
	Country      string
	Department   string
	PlaceOfBirth string
	Professions  []string
	Status       HelperStatus
	CreatedAt    time.Time
}

// Snapshot exports the aggregate for persistence.
func (h *Helper) Snapshot() HelperSnapshot {
	professions := make([]string, len(h.professions))
	for i, p := range h.professions {
		professions[i] = p.String()
	}
	return HelperSnapshot{
		ID:           h.id,
		Email:        h.email.String(),
		Firstname:    h.firstname.String(),
		Lastname:     h.lastname.String(),
		Birthdate:    h.birthdate.Time(),
		Country:      h.residence.Country(),
		Department:   h.residence.Department(),
		PlaceOfBirth: h.placeOfBirth,
		Professions:  professions,
		Status:       h.status,
		CreatedAt:    h.createdAt,
	}
}

// RehydrateHelper rebuilds an aggregate from a stored snapshot. The row was
// validated when written, so value objects are reconstructed directly.
func RehydrateHelper(s HelperSnapshot) *Helper {
	professions := make([]Profession, len(s.Professions))
	for i, name := range s.Professions {
		professions[i] = Profession{value: name}
	}
	return &Helper{
		id:           s.ID,
		email:        Email{value: s.Email},
		firstname:    Firstname{value: s.Firstname},
		lastname:     Lastname{value: s.Lastname},
		birthdate:    Birthdate{value: s.Birthdate},
		residence:    Residence{country: s.Country, department: s.Department},
		placeOfBirth: s.PlaceOfBirth,
		professions:  professions,
		status:       s.Status,
		createdAt:    s.CreatedAt,
	}
}
