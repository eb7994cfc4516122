package adapter

import (
	"fmt"
	"strings"
)

const otpSubject = "OTP To Forgot Password"

const otpBodyTemplate = "Dear User,\n\n" +
	"We have received a request to reset your password for your ExpenseTracker account.\n\n" +
	"Your One-Time Password (OTP) for resetting your password is: %s\n\n" +
	"Please use this OTP within the next 10 minutes to complete your password reset process.\n\n" +
	"If you did not request a password reset, please ignore this email.\n\n" +
	"Thank you for using ExpenseTracker.\n\n" +
	"Best Regards,\n" +
	"ExpenseTracker Team"

// NewOTPMessage builds the password recovery email carrying code.
func NewOTPMessage(to, code string) Message {
	return Message{
		To:      to,
		Subject: otpSubject,
		Body:    fmt.Sprintf(otpBodyTemplate, code),
	}
}

func (m Message) validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
	}
	if m.Subject == "" && m.Body == "" {
		return fmt.Errorf("%w: empty message", ErrInvalidMessage)
	}
	return nil
}
