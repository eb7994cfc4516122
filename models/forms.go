package models

// RegistrationForm is the raw sign-up input.
type RegistrationForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginForm is the raw sign-in input.
type LoginForm struct {
	Email    string
	Password string
}

// ExpenseForm is the raw add-expense input. Amount is parsed by the ledger.
type ExpenseForm struct {
	Title    string
	Amount   string
	Date     string
	Category string
}

// BudgetForm is the raw add-budget input.
type BudgetForm struct {
	Amount string
}

// PasswordResetForm carries the new password chosen at the end of recovery.
type PasswordResetForm struct {
	NewPassword     string
	ConfirmPassword string
}
