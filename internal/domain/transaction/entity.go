package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies what a disbursement settles.
type Type string

const (
	TypeSalary    Type = "Salary"
	TypeAdvance   Type = "Advance"
	TypePF        Type = "PF"
	TypeDues      Type = "Dues"
	TypeAllowance Type = "Allowance"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSalary, TypeAdvance, TypePF, TypeDues, TypeAllowance:
		return true
	}
	return false
}

// Mode is the payment channel used for the disbursement.
type Mode string

const (
	ModeCash       Mode = "Cash"
	ModeBank       Mode = "Bank"
	ModePhonePe    Mode = "PhonePe"
	ModeGPay       Mode = "GPay"
	ModeUPI        Mode = "UPI"
	ModeCheque     Mode = "Cheque"
	ModeDebitCard  Mode = "Debit Card"
	ModeCreditCard Mode = "Credit Card"
	ModeBhimUPI    Mode = "Bhim UPI"
	ModePaytm      Mode = "Paytm"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeCash, ModeBank, ModePhonePe, ModeGPay, ModeUPI, ModeCheque,
		ModeDebitCard, ModeCreditCard, ModeBhimUPI, ModePaytm:
		return true
	}
	return false
}

// Transaction is an immutable disbursement event in the payment ledger.
// Append-only: there is no update or delete path.
type Transaction struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	Date        time.Time       `json:"date"`
	VoucherNo   string          `json:"voucherNo"`
	Type        Type            `json:"type"`
	Mode        Mode            `json:"mode"`
	Amount      decimal.Decimal `json:"amount"`
	Month       string          `json:"month"`
	Year        int             `json:"year"`
	ReferenceID *string         `json:"referenceId,omitempty"`
}
