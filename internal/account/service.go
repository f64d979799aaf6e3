// The account service: credential verification against the user store and
// the password-reset flow. Both are stateless per request; the session is
// attached by the caller, not here.

package account

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/kien091/movie-system/internal/auth"
	"github.com/kien091/movie-system/internal/mailer"
	"github.com/kien091/movie-system/internal/models"
	"github.com/kien091/movie-system/internal/store"
)

const (
	tempPasswordLength = 8

	resetSubject    = "Bạn vừa yêu cầu đặt lại mật khẩu"
	resetBodyPrefix = "Mật khẩu mới của bạn là: "
)

// ResetOutcome is the terminal result of one password-reset invocation.
type ResetOutcome int

const (
	ResetEmailSent ResetOutcome = iota
	ResetAccountNotFound
	ResetDeliveryFailed
)

// String returns the wire code for an outcome.
func (o ResetOutcome) String() string {
	switch o {
	case ResetAccountNotFound:
		return "account_not_found"
	case ResetDeliveryFailed:
		return "delivery_failed"
	default:
		return "email_sent"
	}
}

// Message returns the user-facing text for an outcome.
func (o ResetOutcome) Message() string {
	switch o {
	case ResetAccountNotFound:
		return "Tài khoản chưa được đăng kí"
	case ResetDeliveryFailed:
		return "Không thể gửi email đặt lại mật khẩu, vui lòng thử lại sau"
	default:
		return "Mật khẩu đã được gửi về email của bạn"
	}
}

// Service verifies credentials and runs the password-reset flow.
type Service struct {
	st     *store.Store
	mailer mailer.Mailer
	from   string
}

// NewService creates an account service sending reset mail from the given
// sender address.
func NewService(st *store.Store, m mailer.Mailer, from string) *Service {
	return &Service{st: st, mailer: m, from: from}
}

// Authenticate verifies an email/password pair against the stored hash. It
// fails closed: an unknown email and a wrong password are indistinguishable
// to the caller.
func (s *Service) Authenticate(email, password string) (*models.User, bool) {
	user, err := s.st.GetUserByEmail(email)
	if err != nil {
		return nil, false
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, false
	}
	return user, true
}

// ResetPassword looks up the account, rotates its password to a fresh
// temporary one and emails the plaintext to the account's address. An
// unknown email produces ResetAccountNotFound with no side effects. A mail
// delivery failure is surfaced as ResetDeliveryFailed; the password has
// already been rotated at that point, so the returned error is also logged
// for the operator.
func (s *Service) ResetPassword(email string) (ResetOutcome, error) {
	user, err := s.st.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResetAccountNotFound, nil
		}
		return ResetAccountNotFound, fmt.Errorf("could not look up account: %w", err)
	}

	tempPassword, err := auth.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return ResetDeliveryFailed, fmt.Errorf("could not generate temporary password: %w", err)
	}
	passwordHash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return ResetDeliveryFailed, fmt.Errorf("could not hash temporary password: %w", err)
	}
	if err := s.st.UpdateUserPassword(user.ID, passwordHash); err != nil {
		return ResetDeliveryFailed, fmt.Errorf("could not persist new password: %w", err)
	}

	if err := s.mailer.Send(s.from, user.Email, resetSubject, resetBodyPrefix+tempPassword); err != nil {
		log.Printf("Password reset mail to %s failed: %v", user.Email, err)
		return ResetDeliveryFailed, err
	}
	return ResetEmailSent, nil
}
