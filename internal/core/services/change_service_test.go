package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/SscSPs/change_maker/internal/core/domain"
	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/SscSPs/change_maker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock RandomSource ---
type MockRandomSource struct {
	mock.Mock
}

func (m *MockRandomSource) IntN(n int) int {
	args := m.Called(n)
	return args.Int(0)
}

// --- Test Suite ---
type ChangeServiceTestSuite struct {
	suite.Suite
	usd     *domain.Currency
	eur     *domain.Currency
	random  *MockRandomSource
	service portssvc.ChangeSvc
}

func (suite *ChangeServiceTestSuite) SetupTest() {
	for _, c := range domain.BuiltinCurrencies() {
		switch c.CurrencyCode {
		case "USD":
			suite.usd = c
		case "EUR":
			suite.eur = c
		}
	}
	suite.random = new(MockRandomSource)
	suite.service = services.NewChangeService(services.WithRandomSource(suite.random))
}

func tx(owed, paid string) domain.Transaction {
	return domain.Transaction{Owed: decimal.RequireFromString(owed), Paid: decimal.RequireFromString(paid)}
}

func (suite *ChangeServiceTestSuite) TestComputeChange_Greedy() {
	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("2.12", "2.99"))

	suite.Require().NoError(err)
	suite.Equal(domain.StrategyGreedy, res.Strategy)
	suite.Equal("3 quarters,1 dime,2 pennies", res.String())
	suite.True(decimal.RequireFromString("0.87").Equal(res.Total()))
	suite.random.AssertNotCalled(suite.T(), "IntN", mock.Anything)
}

func (suite *ChangeServiceTestSuite) TestComputeChange_SingularLabel() {
	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("1.97", "3.33"))

	suite.Require().NoError(err)
	suite.Equal("1 1 dollar bill,1 quarter,1 dime,1 penny", res.String())
}

func (suite *ChangeServiceTestSuite) TestComputeChange_RandomizedSequence() {
	// 100 is too big and becomes ineligible, then two 1 dollar bills are drawn.
	suite.random.On("IntN", 9).Return(0).Once()
	suite.random.On("IntN", 8).Return(3).Twice()

	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("3.00", "5.00"))

	suite.Require().NoError(err)
	suite.Equal(domain.StrategyRandomized, res.Strategy)
	suite.Equal("2 1 dollar bills", res.String())
	suite.random.AssertExpectations(suite.T())
}

func (suite *ChangeServiceTestSuite) TestComputeChange_ZeroChange() {
	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("1.00", "1.00"))

	suite.Require().NoError(err)
	suite.Empty(res.Counts)
	suite.Equal("", res.String())
}

func (suite *ChangeServiceTestSuite) TestComputeChange_InsufficientPayment() {
	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("5.00", "3.00"))

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrInsufficientPayment)
}

func (suite *ChangeServiceTestSuite) TestComputeChange_QuantizesBeforeSubtracting() {
	// 2.125 rounds down to 2.12, so 0.88 is handed back.
	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("2.125", "3.00"))

	suite.Require().NoError(err)
	suite.Equal("3 quarters,1 dime,3 pennies", res.String())
}

func (suite *ChangeServiceTestSuite) TestComputeChange_AmountTooLarge() {
	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("0.01", "1e25"))

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrAmountTooLarge)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ChangeServiceTestSuite) TestComputeChange_LargestCountableAmount() {
	// 100 dollar bills are counted well inside int64 even for the largest valid payment.
	res, err := suite.service.ComputeChange(context.Background(), suite.usd, tx("0.01", "92233720368547758.07"))

	suite.Require().NoError(err)
	suite.Equal(domain.StrategyGreedy, res.Strategy)
	suite.True(res.Change.Equal(res.Total()), "%s != %s", res.Change, res.Total())
}

func (suite *ChangeServiceTestSuite) TestDecompose_ChangeTooLarge() {
	_, err := suite.service.Decompose(context.Background(), suite.usd, decimal.RequireFromString("0.01"), decimal.RequireFromString("1e25"))
	suite.ErrorIs(err, apperrors.ErrAmountTooLarge)
}

func (suite *ChangeServiceTestSuite) TestDecompose_NegativeChange() {
	_, err := suite.service.Decompose(context.Background(), suite.usd, decimal.NewFromInt(1), decimal.NewFromInt(-1))
	suite.ErrorIs(err, apperrors.ErrNegativeAmount)
}

func (suite *ChangeServiceTestSuite) TestDecompose_NotMultipleOfMinorUnit() {
	_, err := suite.service.Decompose(context.Background(), suite.usd, decimal.RequireFromString("0.01"), decimal.RequireFromString("0.005"))
	suite.ErrorIs(err, apperrors.ErrNonTerminatingDecomposition)
}

func (suite *ChangeServiceTestSuite) TestDecompose_UnsortedDenominations() {
	tied := newTestCurrency(suite.T(), "TST", [][3]string{
		{"1", "one", "ones"},
		{"1", "other one", "other ones"},
	})

	_, err := suite.service.Decompose(context.Background(), tied, decimal.NewFromInt(1), decimal.NewFromInt(2))

	suite.ErrorIs(err, apperrors.ErrUnsortedDenominations)
}

func (suite *ChangeServiceTestSuite) TestDecompose_GreedyLeftover() {
	// 0.30 is a multiple of the 0.10 minor unit but greedy takes the quarter first.
	odd := newTestCurrency(suite.T(), "TST", [][3]string{
		{"0.25", "quarter", "quarters"},
		{"0.10", "dime", "dimes"},
	})

	_, err := suite.service.Decompose(context.Background(), odd, decimal.RequireFromString("0.10"), decimal.RequireFromString("0.30"))

	suite.ErrorIs(err, apperrors.ErrNonTerminatingDecomposition)
}

func (suite *ChangeServiceTestSuite) TestDecompose_RandomizedDeadEnd() {
	odd := newTestCurrency(suite.T(), "TST", [][3]string{
		{"0.25", "quarter", "quarters"},
		{"0.10", "dime", "dimes"},
	})
	suite.random.On("IntN", 2).Return(0).Twice()
	suite.random.On("IntN", 1).Return(0).Once()

	_, err := suite.service.Decompose(context.Background(), odd, decimal.RequireFromString("0.30"), decimal.RequireFromString("0.30"))

	suite.ErrorIs(err, apperrors.ErrNonTerminatingDecomposition)
	suite.random.AssertExpectations(suite.T())
}

func (suite *ChangeServiceTestSuite) TestGreedy_IsMinimalForBuiltins() {
	for _, currency := range []*domain.Currency{suite.usd, suite.eur} {
		values := make([]int64, len(currency.Denominations))
		for i, d := range currency.Denominations {
			values[i] = d.Value.Shift(2).IntPart()
		}
		best := minimumPieces(values, 1000)

		for cents := int64(1); cents <= 1000; cents++ {
			change := decimal.New(cents, -2)
			// 0.01 is never a multiple of 0.03, so this is always greedy.
			res, err := suite.service.Decompose(context.Background(), currency, decimal.RequireFromString("0.01"), change)
			suite.Require().NoError(err)
			suite.Equal(domain.StrategyGreedy, res.Strategy)
			suite.True(change.Equal(res.Total()), "%s %s", currency.CurrencyCode, change)
			suite.Equal(best[cents], res.Pieces(), "%s %s", currency.CurrencyCode, change)
		}
	}
}

// minimumPieces is the coin-change dynamic program: best[a] is the fewest pieces summing to a.
func minimumPieces(values []int64, limit int64) []int64 {
	best := make([]int64, limit+1)
	for a := int64(1); a <= limit; a++ {
		best[a] = -1
		for _, v := range values {
			if v <= a && best[a-v] >= 0 && (best[a] < 0 || best[a-v]+1 < best[a]) {
				best[a] = best[a-v] + 1
			}
		}
	}
	return best
}

// --- Run Suite ---
func TestChangeService(t *testing.T) {
	suite.Run(t, new(ChangeServiceTestSuite))
}

func TestRandomized_SumsToChangeForAnySeed(t *testing.T) {
	usd := domain.BuiltinCurrencies()[0]
	require.Equal(t, "USD", usd.CurrencyCode)

	for seed := uint64(1); seed <= 200; seed++ {
		svc := services.NewChangeService(services.WithRandomSource(services.NewLockedSource(seed)))

		res, err := svc.ComputeChange(context.Background(), usd, tx("3.00", "5.00"))

		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, domain.StrategyRandomized, res.Strategy)
		assert.True(t, decimal.NewFromInt(2).Equal(res.Total()), "seed %d: %s", seed, res)
		for i := 1; i < len(res.Counts); i++ {
			assert.True(t, res.Counts[i-1].Denomination.Value.GreaterThan(res.Counts[i].Denomination.Value), "seed %d: order", seed)
		}
	}
}

func TestComputeChange_OwedMultipleOfThreeCents(t *testing.T) {
	usd := domain.BuiltinCurrencies()[0]
	svc := services.NewChangeService(services.WithRandomSource(services.NewLockedSource(3)))

	// 2.13 is 71 × 0.03, so it takes the randomized path.
	res, err := svc.ComputeChange(context.Background(), usd, tx("2.13", "3.00"))

	require.NoError(t, err)
	assert.Equal(t, domain.StrategyRandomized, res.Strategy)
	assert.True(t, decimal.RequireFromString("0.87").Equal(res.Total()), res.String())
}

func TestLockedSource_Reproducible(t *testing.T) {
	a := services.NewLockedSource(7)
	b := services.NewLockedSource(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(9), b.IntN(9))
	}
}

func TestGreedy_Deterministic(t *testing.T) {
	usd := domain.BuiltinCurrencies()[0]
	svc := services.NewChangeService()

	first, err := svc.ComputeChange(context.Background(), usd, tx("12.34", "100.00"))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := svc.ComputeChange(context.Background(), usd, tx("12.34", "100.00"))
		require.NoError(t, err)
		assert.Equal(t, first.String(), again.String())
	}
}

func newTestCurrency(t *testing.T, code string, table [][3]string) *domain.Currency {
	t.Helper()
	units := make([]domain.Denomination, 0, len(table))
	for _, row := range table {
		unit, err := domain.NewDenomination(row[0], row[1], row[2])
		require.NoError(t, err)
		units = append(units, unit)
	}
	c, err := domain.NewCurrency(code, units)
	require.NoError(t, err)
	return c
}
