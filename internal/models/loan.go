package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoanType is the kind of loan a member requests.
//
// The type is informational: every loan draws from the flexible layer,
// including loans of type "emergency".
type LoanType string

const (
	LoanTypeUrgent    LoanType = "urgent"
	LoanTypeStandard  LoanType = "standard"
	LoanTypeEmergency LoanType = "emergency"
)

// LoanStatus is the review state of a loan.
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
)

// Loan represents money lent to a member from the flexible layer.
//
// A loan under review does not consume capacity. Once approved, the full
// principal counts against the flexible layer for the year of ApprovedAt
// (or CreatedAt when ApprovedAt is not set).
type Loan struct {
	DefaultModel
	MemberID        uuid.UUID
	Member          Member `json:"-"`
	Type            LoanType
	Title           string
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status          LoanStatus
	RepaymentMonths uint `gorm:"default:12"`
	ApprovedAt      *time.Time
}

// RepaymentStatus is the state of a single installment.
type RepaymentStatus string

const (
	RepaymentStatusScheduled RepaymentStatus = "scheduled"
	RepaymentStatusPaid      RepaymentStatus = "paid"
	RepaymentStatusOverdue   RepaymentStatus = "overdue"
)

// LoanRepayment is one installment of a loan's repayment schedule.
//
// Marking an installment paid does not release principal back to the
// flexible layer. The loan amount stays consumed in full from approval on.
type LoanRepayment struct {
	DefaultModel
	LoanID            uuid.UUID       `gorm:"uniqueIndex:repayment_loan_installment"`
	Loan              Loan            `json:"-"`
	InstallmentNumber uint            `gorm:"uniqueIndex:repayment_loan_installment"`
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate           time.Time
	PaidAt            *time.Time
	Status            RepaymentStatus
}

var (
	ErrLoanTypeInvalid               = errors.New("the specified loan type is invalid")
	ErrLoanStatusInvalid             = errors.New("the specified loan status is invalid")
	ErrLoanAmountNotPositive         = errors.New("loan amounts must be larger than zero")
	ErrAllocationYearNotUnique       = errors.New("there already is an allocation snapshot for this year")
	ErrRepaymentInstallmentNotUnique = errors.New("the installment number must be unique per loan")
)

func (l *Loan) BeforeSave(_ *gorm.DB) error {
	l.Title = strings.TrimSpace(l.Title)

	if l.Status == "" {
		l.Status = LoanStatusPending
	}

	switch l.Type {
	case LoanTypeUrgent, LoanTypeStandard, LoanTypeEmergency:
	default:
		return fmt.Errorf("%w: %s", ErrLoanTypeInvalid, l.Type)
	}

	switch l.Status {
	case LoanStatusPending, LoanStatusApproved, LoanStatusRejected:
	default:
		return fmt.Errorf("%w: %s", ErrLoanStatusInvalid, l.Status)
	}

	if !l.Amount.IsPositive() {
		return ErrLoanAmountNotPositive
	}

	if l.ApprovedAt != nil {
		t := l.ApprovedAt.In(time.UTC)
		l.ApprovedAt = &t
	}

	return nil
}

func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	_ = l.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Loan)
	return tx.First(&Member{}, toSave.MemberID).Error
}

// SetStatus transitions the loan's review state. Approval stamps ApprovedAt,
// which anchors the loan's consumption to the approval year.
func (l *Loan) SetStatus(db *gorm.DB, status LoanStatus) error {
	update := Loan{Status: status}
	if status == LoanStatusApproved {
		now := time.Now().In(time.UTC)
		update.ApprovedAt = &now
	}

	return db.Model(l).Updates(update).Error
}

// CreateRepaymentSchedule splits the loan amount evenly across
// RepaymentMonths installments with monthly due dates, starting one month
// after creation. Amounts are rounded to three decimal places, matching the
// currency precision used for all fund amounts.
func (l Loan) CreateRepaymentSchedule(db *gorm.DB) ([]LoanRepayment, error) {
	if l.RepaymentMonths == 0 {
		return []LoanRepayment{}, nil
	}

	monthly := l.Amount.Div(decimal.NewFromInt(int64(l.RepaymentMonths))).Round(3)
	now := time.Now().In(time.UTC)

	repayments := make([]LoanRepayment, 0, l.RepaymentMonths)
	for i := uint(1); i <= l.RepaymentMonths; i++ {
		repayments = append(repayments, LoanRepayment{
			LoanID:            l.ID,
			InstallmentNumber: i,
			Amount:            monthly,
			DueDate:           now.AddDate(0, int(i), 0),
			Status:            RepaymentStatusScheduled,
		})
	}

	err := db.Create(&repayments).Error
	if err != nil {
		return []LoanRepayment{}, err
	}

	return repayments, nil
}

// MarkPaid marks the installment as paid and stamps the payment time.
func (r *LoanRepayment) MarkPaid(db *gorm.DB) error {
	now := time.Now().In(time.UTC)

	return db.Model(r).Updates(LoanRepayment{
		Status: RepaymentStatusPaid,
		PaidAt: &now,
	}).Error
}

// Repayments returns the loan's schedule ordered by installment number.
func (l Loan) Repayments(db *gorm.DB) ([]LoanRepayment, error) {
	var repayments []LoanRepayment

	err := db.
		Where(LoanRepayment{LoanID: l.ID}).
		Order("installment_number ASC").
		Find(&repayments).Error
	if err != nil {
		return []LoanRepayment{}, err
	}

	return repayments, nil
}
