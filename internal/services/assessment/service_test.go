package assessment

import (
	"context"
	"testing"
	"time"

	"revas/internal/models"
	"revas/internal/repositories"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockShopRepo struct {
	mock.Mock
}

func (m *MockShopRepo) Create(shop *models.Shop) error {
	return m.Called(shop).Error(0)
}

func (m *MockShopRepo) GetByID(id uint) (*models.Shop, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shop), args.Error(1)
}

func (m *MockShopRepo) GetByShopNumber(shopNumber string) (*models.Shop, error) {
	args := m.Called(shopNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shop), args.Error(1)
}

func (m *MockShopRepo) Update(shop *models.Shop) error {
	return m.Called(shop).Error(0)
}

func (m *MockShopRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockShopRepo) List(filter repositories.ShopFilter, offset, limit int) ([]models.Shop, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]models.Shop), args.Get(1).(int64), args.Error(2)
}

func (m *MockShopRepo) UpdateComplianceStatus(shopID uint, status string) error {
	return m.Called(shopID, status).Error(0)
}

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(payment *models.Payment) error {
	return m.Called(payment).Error(0)
}

func (m *MockPaymentRepo) GetByID(id uint) (*models.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepo) Update(payment *models.Payment) error {
	return m.Called(payment).Error(0)
}

func (m *MockPaymentRepo) List(filter repositories.PaymentFilter) ([]models.Payment, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByShop(shopID uint, offset, limit int) ([]models.Payment, int64, error) {
	args := m.Called(shopID, offset, limit)
	return args.Get(0).([]models.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepo) UpdatePenalty(paymentID uint, penaltyAmount float64, status string) error {
	return m.Called(paymentID, penaltyAmount, status).Error(0)
}

type MockRevenueTypeRepo struct {
	mock.Mock
}

func (m *MockRevenueTypeRepo) Create(rt *models.RevenueType) error {
	return m.Called(rt).Error(0)
}

func (m *MockRevenueTypeRepo) GetByID(id uint) (*models.RevenueType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RevenueType), args.Error(1)
}

func (m *MockRevenueTypeRepo) Update(rt *models.RevenueType) error {
	return m.Called(rt).Error(0)
}

func (m *MockRevenueTypeRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockRevenueTypeRepo) List() ([]models.RevenueType, error) {
	args := m.Called()
	return args.Get(0).([]models.RevenueType), args.Error(1)
}

func (m *MockRevenueTypeRepo) ListActive() ([]models.RevenueType, error) {
	args := m.Called()
	return args.Get(0).([]models.RevenueType), args.Error(1)
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(shops *MockShopRepo, payments *MockPaymentRepo, revenueTypes *MockRevenueTypeRepo) Service {
	return NewService(
		shops,
		payments,
		revenueTypes,
		NewCalculator(DefaultRateSchedule()),
		clockwork.NewFakeClockAt(testNow),
		&NoopMetricsCollector{},
	)
}

func testShop() *models.Shop {
	return &models.Shop{
		ShopNumber:       "WRD-001",
		BusinessName:     "Mama Peace Kitchen",
		BusinessType:     "restaurant",
		ShopSizeCategory: models.ShopSizeSmall,
		Ward:             "Effurun",
		OwnerName:        "Peace Oghenekaro",
		ComplianceStatus: models.ComplianceCompliant,
		Status:           models.ShopStatusActive,
	}
}

func TestService_Fees(t *testing.T) {
	shops := new(MockShopRepo)
	payments := new(MockPaymentRepo)
	revenueTypes := new(MockRevenueTypeRepo)
	svc := newTestService(shops, payments, revenueTypes)

	t.Run("itemizes annual fees", func(t *testing.T) {
		shops.On("GetByID", uint(1)).Return(testShop(), nil).Once()

		fees, err := svc.Fees(context.Background(), 1)
		assert.NoError(t, err)
		// small restaurant in Effurun: registration 10000 (special),
		// permit 10000*1.2*1.1=13200, levy 1000*1.5=1500, premises 5000*1.2=6000
		assert.Equal(t, float64(10000), fees.RegistrationFee)
		assert.Equal(t, float64(13200), fees.AnnualPermitFee)
		assert.Equal(t, float64(1500), fees.EnvironmentalLevy)
		assert.Equal(t, float64(6000), fees.PremisesTax)
		assert.Equal(t, float64(30700), fees.Total)

		shops.AssertExpectations(t)
	})

	t.Run("unknown shop", func(t *testing.T) {
		shops.On("GetByID", uint(99)).Return(nil, repositories.ErrShopNotFound).Once()

		_, err := svc.Fees(context.Background(), 99)
		assert.ErrorIs(t, err, repositories.ErrShopNotFound)
	})

	t.Run("unparseable size category", func(t *testing.T) {
		s := testShop()
		s.ShopSizeCategory = "huge"
		shops.On("GetByID", uint(2)).Return(s, nil).Once()

		_, err := svc.Fees(context.Background(), 2)
		assert.ErrorIs(t, err, ErrInvalidShopSize)
	})
}

func TestService_TotalDue(t *testing.T) {
	year := 2025

	tests := []struct {
		name      string
		setupMock func(*MockShopRepo, *MockPaymentRepo, *MockRevenueTypeRepo)
		wantDue   float64
		wantPaid  float64
		wantPen   float64
		wantErr   error
	}{
		{
			name: "no payments on record",
			setupMock: func(shops *MockShopRepo, payments *MockPaymentRepo, revenueTypes *MockRevenueTypeRepo) {
				shops.On("GetByID", uint(1)).Return(testShop(), nil)
				revenueTypes.On("ListActive").Return([]models.RevenueType{}, nil)
				payments.On("List", mock.Anything).Return([]models.Payment{}, nil)
			},
			wantDue: 30700,
		},
		{
			name: "fully paid on time",
			setupMock: func(shops *MockShopRepo, payments *MockPaymentRepo, revenueTypes *MockRevenueTypeRepo) {
				shops.On("GetByID", uint(1)).Return(testShop(), nil)
				revenueTypes.On("ListActive").Return([]models.RevenueType{}, nil)
				payments.On("List", mock.Anything).Return([]models.Payment{
					{
						ShopID:         1,
						AssessmentYear: year,
						AmountDue:      30700,
						AmountPaid:     30700,
						DueDate:        testNow.AddDate(0, 1, 0),
						PaymentStatus:  models.PaymentStatusPaid,
					},
				}, nil)
			},
			wantDue:  0,
			wantPaid: 30700,
		},
		{
			name: "pending past due accrues a penalty",
			setupMock: func(shops *MockShopRepo, payments *MockPaymentRepo, revenueTypes *MockRevenueTypeRepo) {
				shops.On("GetByID", uint(1)).Return(testShop(), nil)
				revenueTypes.On("ListActive").Return([]models.RevenueType{}, nil)
				payments.On("List", mock.Anything).Return([]models.Payment{
					{
						ShopID:         1,
						AssessmentYear: year,
						AmountDue:      10000,
						// 35 days overdue: 10000*0.05 + 10000*0.01*1 = 600
						DueDate:       testNow.AddDate(0, 0, -35),
						PaymentStatus: models.PaymentStatusPending,
					},
				}, nil)
			},
			wantDue: 31300,
			wantPen: 600,
		},
		{
			name: "partial payment reduces the base and accrues on the rest",
			setupMock: func(shops *MockShopRepo, payments *MockPaymentRepo, revenueTypes *MockRevenueTypeRepo) {
				shops.On("GetByID", uint(1)).Return(testShop(), nil)
				revenueTypes.On("ListActive").Return([]models.RevenueType{}, nil)
				payments.On("List", mock.Anything).Return([]models.Payment{
					{
						ShopID:         1,
						AssessmentYear: year,
						AmountDue:      20000,
						AmountPaid:     12000,
						// 65 days overdue on 8000: 8000*0.05 + 8000*0.01*2 = 560
						DueDate:       testNow.AddDate(0, 0, -65),
						PaymentStatus: models.PaymentStatusPartiallyPaid,
					},
				}, nil)
			},
			wantDue:  19260, // 30700 - 12000 + 560
			wantPaid: 12000,
			wantPen:  560,
		},
		{
			name: "unknown shop",
			setupMock: func(shops *MockShopRepo, payments *MockPaymentRepo, revenueTypes *MockRevenueTypeRepo) {
				shops.On("GetByID", uint(1)).Return(nil, repositories.ErrShopNotFound)
			},
			wantErr: repositories.ErrShopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shops := new(MockShopRepo)
			payments := new(MockPaymentRepo)
			revenueTypes := new(MockRevenueTypeRepo)
			tt.setupMock(shops, payments, revenueTypes)

			svc := newTestService(shops, payments, revenueTypes)
			result, err := svc.TotalDue(context.Background(), 1, year)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantDue, result.TotalDue)
			assert.Equal(t, tt.wantPaid, result.TotalPaid)
			assert.Equal(t, tt.wantPen, result.Penalties)

			shops.AssertExpectations(t)
			payments.AssertExpectations(t)
		})
	}
}

func TestService_TotalDue_InvalidYear(t *testing.T) {
	svc := newTestService(new(MockShopRepo), new(MockPaymentRepo), new(MockRevenueTypeRepo))

	_, err := svc.TotalDue(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestService_TotalDue_Idempotent(t *testing.T) {
	// TotalDue is a pure read: calling it twice with a frozen clock yields
	// the same figure and persists nothing.
	shops := new(MockShopRepo)
	payments := new(MockPaymentRepo)
	revenueTypes := new(MockRevenueTypeRepo)

	shops.On("GetByID", uint(1)).Return(testShop(), nil)
	revenueTypes.On("ListActive").Return([]models.RevenueType{}, nil)
	payments.On("List", mock.Anything).Return([]models.Payment{
		{
			ShopID:         1,
			AssessmentYear: 2025,
			AmountDue:      10000,
			DueDate:        testNow.AddDate(0, 0, -35),
			PaymentStatus:  models.PaymentStatusOverdue,
		},
	}, nil)

	svc := newTestService(shops, payments, revenueTypes)

	first, err := svc.TotalDue(context.Background(), 1, 2025)
	assert.NoError(t, err)
	second, err := svc.TotalDue(context.Background(), 1, 2025)
	assert.NoError(t, err)
	assert.Equal(t, first.TotalDue, second.TotalDue)

	payments.AssertNotCalled(t, "UpdatePenalty", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ApplyPenalties(t *testing.T) {
	shops := new(MockShopRepo)
	payments := new(MockPaymentRepo)
	revenueTypes := new(MockRevenueTypeRepo)

	overdue := models.Payment{
		ShopID:         1,
		AssessmentYear: 2025,
		AmountDue:      10000,
		DueDate:        testNow.AddDate(0, 0, -35),
		PaymentStatus:  models.PaymentStatusPending,
	}
	overdue.ID = 7
	notYetDue := models.Payment{
		ShopID:         1,
		AssessmentYear: 2025,
		AmountDue:      5000,
		DueDate:        testNow.AddDate(0, 1, 0),
		PaymentStatus:  models.PaymentStatusPending,
	}
	notYetDue.ID = 8

	shops.On("GetByID", uint(1)).Return(testShop(), nil)
	payments.On("List", mock.Anything).Return([]models.Payment{overdue, notYetDue}, nil)
	payments.On("UpdatePenalty", uint(7), float64(600), models.PaymentStatusOverdue).Return(nil)

	svc := newTestService(shops, payments, revenueTypes)

	updated, err := svc.ApplyPenalties(context.Background(), 1, 2025)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated)

	payments.AssertExpectations(t)
	payments.AssertNotCalled(t, "UpdatePenalty", uint(8), mock.Anything, mock.Anything)
}
