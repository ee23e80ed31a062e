package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/krw_rates_dashboard/internal/core/ports/services"
	"github.com/SscSPs/krw_rates_dashboard/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DatasetReader ---
type MockDatasetReader struct {
	mock.Mock
}

func (m *MockDatasetReader) Observations(ctx context.Context) ([]domain.Observation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Observation), args.Error(1)
}

func (m *MockDatasetReader) Stats(ctx context.Context) (domain.ReshapeStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReshapeStats), args.Error(1)
}

var _ portssvc.DatasetReaderSvc = (*MockDatasetReader)(nil)

// --- Test Suite ---
type SelectionServiceTestSuite struct {
	suite.Suite
	dataset *MockDatasetReader
	service portssvc.SelectionSvcFacade
}

func (suite *SelectionServiceTestSuite) SetupTest() {
	suite.dataset = new(MockDatasetReader)
	suite.service = services.NewSelectionService(suite.dataset)
}

func (suite *SelectionServiceTestSuite) TestOptions() {
	ctx := context.Background()
	suite.dataset.On("Observations", ctx).Return(sampleObservations(), nil).Once()

	opts, err := suite.service.Options(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"원/미국달러", "원/일본엔(100엔)"}, opts.Currencies)
	suite.Equal("원/미국달러", opts.DefaultCurrency)
	suite.Equal([]string{"말일자료", "평균자료"}, opts.Measures)
	suite.dataset.AssertExpectations(suite.T())
}

func (suite *SelectionServiceTestSuite) TestOptions_CustomMarker() {
	ctx := context.Background()
	svc := services.NewSelectionService(suite.dataset, services.WithDefaultCurrencyMarker("일본엔"))
	suite.dataset.On("Observations", ctx).Return(sampleObservations(), nil).Once()

	opts, err := svc.Options(ctx)

	suite.Require().NoError(err)
	suite.Equal("원/일본엔(100엔)", opts.DefaultCurrency)
}

func (suite *SelectionServiceTestSuite) TestSelect_FillsDefaultCurrency() {
	ctx := context.Background()
	suite.dataset.On("Observations", ctx).Return(sampleObservations(), nil).Once()

	result, err := suite.service.Select(ctx, domain.Selection{Measures: []string{"말일자료"}})

	suite.Require().NoError(err)
	suite.Equal("원/미국달러", result.Selection.Currency)
	suite.Len(result.Observations, 3)
}

func (suite *SelectionServiceTestSuite) TestSelect_EmptyIsNotAnError() {
	ctx := context.Background()
	suite.dataset.On("Observations", ctx).Return(sampleObservations(), nil).Once()

	result, err := suite.service.Select(ctx, domain.Selection{Currency: "원/유로"})

	suite.Require().NoError(err)
	suite.True(result.Empty())
}

func (suite *SelectionServiceTestSuite) TestSelect_DatasetError() {
	ctx := context.Background()
	suite.dataset.On("Observations", ctx).Return(nil, apperrors.ErrDecodeFailure).Once()

	result, err := suite.service.Select(ctx, domain.Selection{})

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDecodeFailure)
}

func (suite *SelectionServiceTestSuite) TestSummarize_Empty() {
	summary, err := suite.service.Summarize(context.Background(), []domain.Observation{})

	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrEmptySelection)
}

func (suite *SelectionServiceTestSuite) TestSummarize() {
	obs := services.FilterObservations(sampleObservations(), domain.Selection{Currency: "원/미국달러", Measures: []string{"말일자료"}})

	summary, err := suite.service.Summarize(context.Background(), obs)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "2024/03", summary.Latest.Period)
	assert.Equal(suite.T(), "1180", summary.Min.String())
	assert.Equal(suite.T(), "1250.75", summary.Max.String())
}

// --- Run Test Suite ---
func TestSelectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionServiceTestSuite))
}
