package capital_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sunduq/backend/internal/capital"
	"github.com/sunduq/backend/internal/models"
)

func currentYear() uint {
	return uint(time.Now().In(time.UTC).Year())
}

func (suite *TestSuiteStandard) TestAllocateDefaultSplit() {
	result := capital.Allocate(2024, decimal.NewFromInt(1000), capital.Usage{}, capital.DefaultPercentages())

	suite.Assert().Equal(uint(2024), result.Year)
	suite.assertEqualDecimal(decimal.NewFromInt(450), result.Protected.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(150), result.Emergency.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Flexible.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Growth.Amount)

	// The four layers always cover the net assets completely
	sum := result.Protected.Amount.
		Add(result.Emergency.Amount).
		Add(result.Flexible.Amount).
		Add(result.Growth.Amount)
	suite.assertEqualDecimal(result.NetAssets, sum)
}

func (suite *TestSuiteStandard) TestAllocateGrowthIsLocked() {
	used := capital.Usage{Flexible: decimal.NewFromInt(50)}
	result := capital.Allocate(2024, decimal.NewFromInt(1000), used, capital.DefaultPercentages())

	// The growth layer accumulates, it can not be drawn from
	suite.assertEqualDecimal(decimal.Zero, result.Growth.Used)
	suite.assertEqualDecimal(decimal.Zero, result.Growth.Available)
}

func (suite *TestSuiteStandard) TestAllocateFloorsAvailable() {
	used := capital.Usage{Flexible: decimal.NewFromInt(250)}
	result := capital.Allocate(2024, decimal.NewFromInt(1000), used, capital.DefaultPercentages())

	// 250 used on a layer of 200 must not report a negative balance
	suite.assertEqualDecimal(decimal.NewFromInt(250), result.Flexible.Used)
	suite.assertEqualDecimal(decimal.Zero, result.Flexible.Available)
}

func (suite *TestSuiteStandard) TestNetAssetsFloorsAtZero() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(100), models.ContributionStatusApproved)
	suite.createTestExpense(models.ExpenseCategoryGeneral, decimal.NewFromInt(250))

	netAssets, err := capital.NetAssets(models.DB, currentYear())
	suite.Require().Nil(err)
	suite.assertEqualDecimal(decimal.Zero, netAssets)
}

func (suite *TestSuiteStandard) TestNetAssetsIgnoresPending() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(100), models.ContributionStatusApproved)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(40), models.ContributionStatusPending)

	netAssets, err := capital.NetAssets(models.DB, currentYear())
	suite.Require().Nil(err)
	suite.assertEqualDecimal(decimal.NewFromInt(100), netAssets)
}

func (suite *TestSuiteStandard) TestNetAssetsDeclaredYear() {
	member := suite.createTestMember(models.MemberRoleMember)

	// Approved today, but declared for 2019. The contribution counts
	// towards the declared year, not the year of approval.
	contribution := suite.createTestContribution(member.ID, 2019, decimal.NewFromInt(100), models.ContributionStatusPending)
	suite.Require().Nil(contribution.Approve(models.DB))

	netAssets, err := capital.NetAssets(models.DB, 2019)
	suite.Require().Nil(err)
	suite.assertEqualDecimal(decimal.NewFromInt(100), netAssets)

	netAssets, err = capital.NetAssets(models.DB, currentYear())
	suite.Require().Nil(err)
	suite.assertEqualDecimal(decimal.Zero, netAssets)
}

func (suite *TestSuiteStandard) TestRebalanceScenario() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	result, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	suite.assertEqualDecimal(decimal.NewFromInt(1000), result.NetAssets)
	suite.assertEqualDecimal(decimal.NewFromInt(450), result.Protected.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(150), result.Emergency.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Flexible.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Growth.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Flexible.Available)
}

func (suite *TestSuiteStandard) TestRebalanceIdempotent() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	first, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	lockedAt := allocation.LockedAt

	// Without ledger changes, a second run produces the same snapshot
	second, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	suite.assertEqualDecimal(first.NetAssets, second.NetAssets)
	suite.assertEqualDecimal(first.Flexible.Available, second.Flexible.Available)

	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	suite.Assert().True(lockedAt.Equal(allocation.LockedAt), "LockedAt must not change on recompute")
}

func (suite *TestSuiteStandard) TestPendingLoanDoesNotConsume() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)
	suite.createTestLoan(member.ID, decimal.NewFromInt(100))

	result, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	suite.assertEqualDecimal(decimal.Zero, result.Flexible.Used)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Flexible.Available)
}

func (suite *TestSuiteStandard) TestApprovedLoanConsumesFlexible() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	loan := suite.createTestLoan(member.ID, decimal.NewFromInt(100))
	suite.Require().Nil(loan.SetStatus(models.DB, models.LoanStatusApproved))

	result, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	// The loan reduces the net assets and consumes flexible capacity
	suite.assertEqualDecimal(decimal.NewFromInt(900), result.NetAssets)
	suite.assertEqualDecimal(decimal.NewFromInt(100), result.Flexible.Used)
	suite.assertEqualDecimal(decimal.NewFromInt(80), result.Flexible.Available)
}

func (suite *TestSuiteStandard) TestEmergencyLoanDrawsFlexible() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	loan := models.Loan{
		MemberID: member.ID,
		Type:     models.LoanTypeEmergency,
		Title:    "Roof repair",
		Amount:   decimal.NewFromInt(50),
	}
	suite.Require().Nil(models.DB.Create(&loan).Error)
	suite.Require().Nil(loan.SetStatus(models.DB, models.LoanStatusApproved))

	result, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	// The loan type is informational, all loans draw from the flexible layer
	suite.assertEqualDecimal(decimal.NewFromInt(50), result.Flexible.Used)
	suite.assertEqualDecimal(decimal.Zero, result.Emergency.Used)
}

func (suite *TestSuiteStandard) TestExpenseCategorization() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)
	suite.createTestExpense(models.ExpenseCategoryEmergency, decimal.NewFromInt(30))
	suite.createTestExpense(models.ExpenseCategoryZakat, decimal.NewFromInt(20))

	result, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	// 1000 - 30 - 20 = 950 net assets
	suite.assertEqualDecimal(decimal.NewFromInt(950), result.NetAssets)
	suite.assertEqualDecimal(decimal.NewFromInt(30), result.Emergency.Used)
	suite.assertEqualDecimal(decimal.NewFromInt(20), result.Flexible.Used)

	// Emergency layer: 950 × 15 % = 142.5, minus 30 used
	suite.assertEqualDecimal(decimal.NewFromFloat(142.5), result.Emergency.Amount)
	suite.assertEqualDecimal(decimal.NewFromFloat(112.5), result.Emergency.Available)
}

func (suite *TestSuiteStandard) TestPercentagesFromSettings() {
	settings := models.FamilySettings{
		ProtectedPercent: 50,
		EmergencyPercent: 20,
		FlexiblePercent:  20,
		GrowthPercent:    10,
	}
	suite.Require().Nil(models.DB.Create(&settings).Error)

	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	result, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	suite.assertEqualDecimal(decimal.NewFromInt(500), result.Protected.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Emergency.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Flexible.Amount)
	suite.assertEqualDecimal(decimal.NewFromInt(100), result.Growth.Amount)
}

func (suite *TestSuiteStandard) TestCheckLoan() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	// Flexible layer is 200, a 250 loan does not fit
	check, err := capital.CheckLoan(models.DB, decimal.NewFromInt(250), currentYear())
	suite.Require().Nil(err)
	suite.Assert().False(check.Allowed)
	suite.Assert().Equal(capital.LayerFlexible, check.Layer)
	suite.Assert().Contains(check.Reason, "exceeds the available balance")
	suite.assertEqualDecimal(decimal.NewFromInt(200), check.Available)

	// A 150 loan fits
	check, err = capital.CheckLoan(models.DB, decimal.NewFromInt(150), currentYear())
	suite.Require().Nil(err)
	suite.Assert().True(check.Allowed)
	suite.Assert().Empty(check.Reason)

	// The full available balance fits as well, the gate rejects
	// strictly larger amounts only
	check, err = capital.CheckLoan(models.DB, decimal.NewFromInt(200), currentYear())
	suite.Require().Nil(err)
	suite.Assert().True(check.Allowed)
}

func (suite *TestSuiteStandard) TestCheckExpense() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	// Emergency expenses are checked against the emergency reserve of 150
	check, err := capital.CheckExpense(models.DB, decimal.NewFromInt(160), models.ExpenseCategoryEmergency, currentYear())
	suite.Require().Nil(err)
	suite.Assert().False(check.Allowed)
	suite.Assert().Equal(capital.LayerEmergency, check.Layer)

	check, err = capital.CheckExpense(models.DB, decimal.NewFromInt(140), models.ExpenseCategoryEmergency, currentYear())
	suite.Require().Nil(err)
	suite.Assert().True(check.Allowed)

	// All other categories are checked against the flexible layer
	check, err = capital.CheckExpense(models.DB, decimal.NewFromInt(160), models.ExpenseCategoryCharity, currentYear())
	suite.Require().Nil(err)
	suite.Assert().True(check.Allowed)
	suite.Assert().Equal(capital.LayerFlexible, check.Layer)
}

func (suite *TestSuiteStandard) TestResetRestoresLedgerUsage() {
	guardian := suite.createTestMember(models.MemberRoleGuardian)
	suite.createTestContribution(guardian.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	loan := suite.createTestLoan(guardian.ID, decimal.NewFromInt(100))
	suite.Require().Nil(loan.SetStatus(models.DB, models.LoanStatusApproved))

	_, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	result, err := capital.Reset(models.DB, currentYear(), guardian.ID)
	suite.Require().Nil(err)

	// The loan is still in the ledger, so the recompute restores its usage
	suite.assertEqualDecimal(decimal.NewFromInt(100), result.Flexible.Used)

	// The reset stamps are persisted
	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: currentYear()}).First(&allocation).Error)
	suite.Require().NotNil(allocation.ResetAt)
	suite.Require().NotNil(allocation.ResetBy)
	suite.Assert().Equal(guardian.ID, *allocation.ResetBy)
}

func (suite *TestSuiteStandard) TestResetForgivesDeletedRecords() {
	guardian := suite.createTestMember(models.MemberRoleGuardian)
	suite.createTestContribution(guardian.ID, currentYear(), decimal.NewFromInt(1000), models.ContributionStatusApproved)

	loan := suite.createTestLoan(guardian.ID, decimal.NewFromInt(100))
	suite.Require().Nil(loan.SetStatus(models.DB, models.LoanStatusApproved))

	_, err := capital.Rebalance(models.DB, currentYear())
	suite.Require().Nil(err)

	// Deleting the loan and resetting frees the capacity
	suite.Require().Nil(models.DB.Delete(&loan).Error)

	result, err := capital.Reset(models.DB, currentYear(), guardian.ID)
	suite.Require().Nil(err)

	suite.assertEqualDecimal(decimal.Zero, result.Flexible.Used)
	suite.assertEqualDecimal(decimal.NewFromInt(200), result.Flexible.Available)
}

func (suite *TestSuiteStandard) TestResetWithoutSnapshot() {
	guardian := suite.createTestMember(models.MemberRoleGuardian)

	result, err := capital.Reset(models.DB, 2030, guardian.ID)
	suite.Require().Nil(err)
	suite.assertEqualDecimal(decimal.Zero, result.NetAssets)

	// A reset on a year without a snapshot creates one without reset stamps
	var allocation models.CapitalAllocation
	suite.Require().Nil(models.DB.Where(models.CapitalAllocation{Year: 2030}).First(&allocation).Error)
	suite.Assert().Nil(allocation.ResetAt)
	suite.Assert().Nil(allocation.ResetBy)
}

func (suite *TestSuiteStandard) TestGetAllocation() {
	member := suite.createTestMember(models.MemberRoleMember)
	suite.createTestContribution(member.ID, currentYear(), decimal.NewFromInt(500), models.ContributionStatusApproved)

	result, err := capital.GetAllocation(models.DB, currentYear())
	suite.Require().Nil(err)
	suite.assertEqualDecimal(decimal.NewFromInt(500), result.NetAssets)

	// The read created the snapshot row
	var count int64
	suite.Require().Nil(models.DB.Model(&models.CapitalAllocation{}).Where("year = ?", currentYear()).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
