package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"helperhub/internal/helper/domain"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
)

type ValueObjectsSuite struct {
	suite.Suite
	now time.Time
	clk *clock.Frozen
}

func TestValueObjectsSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectsSuite))
}

func (s *ValueObjectsSuite) SetupTest() {
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clk = clock.FrozenAt(s.now)
}

func (s *ValueObjectsSuite) TestEmail() {
	s.Run("accepts a valid address and preserves it", func() {
		email, err := domain.NewEmail("  jane.doe@example.com ")
		s.Require().NoError(err)
		s.Equal("jane.doe@example.com", email.String())
	})

	s.Run("rejects empty after trim", func() {
		_, err := domain.NewEmail("   ")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeEmailInvalid))
	})

	s.Run("rejects malformed addresses", func() {
		for _, raw := range []string{"plain", "no@dot", "two@@example.com", "sp ace@example.com", "@example.com", "a@.c"} {
			_, err := domain.NewEmail(raw)
			s.Require().Error(err, "input %q", raw)
			s.True(dErrors.HasCode(err, dErrors.CodeEmailInvalid), "input %q", raw)
		}
	})

	s.Run("rejects addresses over 254 characters", func() {
		raw := strings.Repeat("a", 250) + "@b.co"
		_, err := domain.NewEmail(raw)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeEmailInvalid))
	})

	s.Run("accepts an address of exactly 254 characters", func() {
		raw := strings.Repeat("a", 249) + "@b.co"
		s.Require().Len(raw, 254)
		_, err := domain.NewEmail(raw)
		s.NoError(err)
	})
}

func (s *ValueObjectsSuite) TestPhone() {
	s.Run("empty input yields the zero phone, not an error", func() {
		phone, err := domain.NewPhone("  ")
		s.Require().NoError(err)
		s.True(phone.IsZero())
	})

	s.Run("accepts international formats", func() {
		for _, raw := range []string{"+33612345678", "33612345678", "+491701234567"} {
			phone, err := domain.NewPhone(raw)
			s.Require().NoError(err, "input %q", raw)
			s.Equal(raw, phone.String())
		}
	})

	s.Run("rejects malformed numbers", func() {
		for _, raw := range []string{"0612345678", "+0612345678", "12345", "+3361234567890123", "phone"} {
			_, err := domain.NewPhone(raw)
			s.Require().Error(err, "input %q", raw)
			s.True(dErrors.HasCode(err, dErrors.CodePhoneInvalid), "input %q", raw)
		}
	})
}

func (s *ValueObjectsSuite) TestNames() {
	s.Run("trims and accepts names of two or more characters", func() {
		first, err := domain.NewFirstname("  Jo ")
		s.Require().NoError(err)
		s.Equal("Jo", first.String())

		last, err := domain.NewLastname("Doe")
		s.Require().NoError(err)
		s.Equal("Doe", last.String())
	})

	s.Run("rejects short or empty names", func() {
		_, err := domain.NewFirstname(" J ")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeFirstnameTooShort))

		_, err = domain.NewLastname("")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeLastnameTooShort))
	})
}

func (s *ValueObjectsSuite) TestBirthdate() {
	s.Run("accepts an adult birthdate", func() {
		raw := s.now.AddDate(-30, 0, 0)
		birthdate, err := domain.NewBirthdate(raw, s.clk)
		s.Require().NoError(err)
		s.Equal(raw, birthdate.Time())
	})

	s.Run("rejects the zero time as missing", func() {
		_, err := domain.NewBirthdate(time.Time{}, s.clk)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBirthdateRequired))
	})

	s.Run("rejects now and future dates as in-future", func() {
		for _, raw := range []time.Time{s.now, s.now.Add(time.Second), s.now.AddDate(1, 0, 0)} {
			_, err := domain.NewBirthdate(raw, s.clk)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeBirthdateInFuture))
		}
	})

	s.Run("rejects younger than sixteen", func() {
		_, err := domain.NewBirthdate(s.now.AddDate(-16, 0, 1), s.clk)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBirthdateTooYoung))
	})

	s.Run("accepts exactly sixteen today", func() {
		_, err := domain.NewBirthdate(s.now.AddDate(-16, 0, 0), s.clk)
		s.NoError(err)
	})
}

func (s *ValueObjectsSuite) TestResidence() {
	s.Run("valid French departments", func() {
		for _, dept := range []string{"01", "19", "2A", "2B", "75", "95", "971", "974", "976"} {
			residence, err := domain.NewFrenchResidence(dept)
			s.Require().NoError(err, "department %q", dept)
			s.Equal("France", residence.Country())
			s.Equal(dept, residence.Department())
			s.True(residence.IsFrench())
		}
	})

	s.Run("invalid French departments", func() {
		for _, dept := range []string{"", "00", "96", "99", "2C", "975", "977", "709", "7a"} {
			_, err := domain.NewFrenchResidence(dept)
			s.Require().Error(err, "department %q", dept)
			s.True(dErrors.HasCode(err, dErrors.CodeResidenceDepartmentInvalid), "department %q", dept)
		}
	})

	s.Run("foreign residence in the allow-list", func() {
		residence, err := domain.NewForeignResidence("Germany")
		s.Require().NoError(err)
		s.Equal("Germany", residence.Country())
		s.Empty(residence.Department())
		s.False(residence.IsFrench())
	})

	s.Run("France is rejected on the foreign path", func() {
		for _, country := range []string{"France", "france", " FRANCE "} {
			_, err := domain.NewForeignResidence(country)
			s.Require().Error(err, "country %q", country)
			s.True(dErrors.HasCode(err, dErrors.CodeResidenceCountryNotAllowed))
		}
	})

	s.Run("countries outside the allow-list are rejected", func() {
		for _, country := range []string{"Canada", "Japan", ""} {
			_, err := domain.NewForeignResidence(country)
			s.Require().Error(err, "country %q", country)
			s.True(dErrors.HasCode(err, dErrors.CodeResidenceCountryNotAllowed))
		}
	})
}

func (s *ValueObjectsSuite) TestProfessions() {
	s.Run("normalizes, dedupes and drops empties", func() {
		professions := domain.NewProfessions([]string{" nurse ", "nurse", "", "  ", "childminder"})
		s.Require().Len(professions, 2)
		s.Equal("nurse", professions[0].String())
		s.Equal("childminder", professions[1].String())
	})

	s.Run("validates against the canonical catalog", func() {
		professions := domain.NewProfessions([]string{"nurse", "alchemist"})
		err := domain.ValidateProfessions(professions, []string{"nurse", "childminder"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeProfessionUnknown))

		s.NoError(domain.ValidateProfessions(domain.NewProfessions([]string{"nurse"}), []string{"nurse"}))
	})
}

func (s *ValueObjectsSuite) TestOtpCode() {
	s.Run("accepts exactly six digits", func() {
		code, err := domain.NewOtpCode("042917")
		s.Require().NoError(err)
		s.Equal("042917", code.String())
	})

	s.Run("rejects everything else", func() {
		for _, raw := range []string{"", "12345", "1234567", "12a456", "12 456", "12345x"} {
			_, err := domain.NewOtpCode(raw)
			s.Require().Error(err, "input %q", raw)
			s.True(dErrors.HasCode(err, dErrors.CodeOtpInvalid))
		}
	})
}
