package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"revas/internal/models"
	"revas/internal/repositories"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByShop(shopID uint, offset, limit int) ([]models.Payment, int64, error) {
	args := m.Called(shopID, offset, limit)
	return args.Get(0).([]models.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepo) UpdatePenalty(paymentID uint, penaltyAmount float64, status string) error {
	return m.Called(paymentID, penaltyAmount, status).Error(0)
}

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

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Charge(amount float64, description, cardToken string) (string, error) {
	args := m.Called(amount, description, cardToken)
	return args.String(0), args.Error(1)
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockPaymentRepo, shops *MockShopRepo, gateway Gateway) Service {
	return NewService(repo, shops, gateway, clockwork.NewFakeClockAt(testNow))
}

func pendingAssessment() *models.Payment {
	p := &models.Payment{
		ShopID:         1,
		AssessmentYear: 2025,
		AmountDue:      10000,
		DueDate:        testNow.AddDate(0, 1, 0),
		PaymentStatus:  models.PaymentStatusPending,
		ReceiptNumber:  "RCP-TEST0001",
	}
	p.ID = 5
	return p
}

func TestService_CreateAssessment(t *testing.T) {
	t.Run("creates a pending assessment", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		shops := new(MockShopRepo)

		shops.On("GetByID", uint(1)).Return(&models.Shop{ShopNumber: "WRD-001"}, nil)
		repo.On("Create", mock.MatchedBy(func(p *models.Payment) bool {
			return p.ShopID == 1 &&
				p.AmountDue == 25000 &&
				p.PaymentStatus == models.PaymentStatusPending &&
				p.ReceiptNumber != ""
		})).Return(nil)

		svc := newTestService(repo, shops, nil)

		p, err := svc.CreateAssessment(context.Background(), AssessmentRequest{
			ShopID:         1,
			RevenueTypeID:  2,
			AssessmentYear: 2025,
			AmountDue:      25000,
			DueDate:        testNow.AddDate(0, 3, 0),
		}, 9)
		assert.NoError(t, err)
		assert.Equal(t, uint(9), p.RecordedBy)

		repo.AssertExpectations(t)
	})

	t.Run("surfaces a duplicate receipt number", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		shops := new(MockShopRepo)

		shops.On("GetByID", uint(1)).Return(&models.Shop{ShopNumber: "WRD-001"}, nil)
		repo.On("Create", mock.Anything).Return(repositories.ErrDuplicateReceipt)

		svc := newTestService(repo, shops, nil)

		_, err := svc.CreateAssessment(context.Background(), AssessmentRequest{
			ShopID:         1,
			RevenueTypeID:  2,
			AssessmentYear: 2025,
			AmountDue:      25000,
			DueDate:        testNow.AddDate(0, 3, 0),
		}, 9)
		assert.ErrorIs(t, err, repositories.ErrDuplicateReceipt)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc := newTestService(new(MockPaymentRepo), new(MockShopRepo), nil)

		_, err := svc.CreateAssessment(context.Background(), AssessmentRequest{
			ShopID:    1,
			AmountDue: 0,
			DueDate:   testNow,
		}, 9)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects a zero due date", func(t *testing.T) {
		svc := newTestService(new(MockPaymentRepo), new(MockShopRepo), nil)

		_, err := svc.CreateAssessment(context.Background(), AssessmentRequest{
			ShopID:    1,
			AmountDue: 1000,
		}, 9)
		assert.ErrorIs(t, err, ErrInvalidDueDate)
	})
}

func TestService_RecordPayment(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		setupMock  func(*MockPaymentRepo)
		wantStatus string
		wantErr    error
	}{
		{
			name:   "full payment marks paid and stamps the date",
			amount: 10000,
			setupMock: func(repo *MockPaymentRepo) {
				repo.On("GetByID", uint(5)).Return(pendingAssessment(), nil)
				repo.On("Update", mock.MatchedBy(func(p *models.Payment) bool {
					return p.PaymentStatus == models.PaymentStatusPaid &&
						p.PaymentDate != nil && p.PaymentDate.Equal(testNow)
				})).Return(nil)
			},
			wantStatus: models.PaymentStatusPaid,
		},
		{
			name:   "partial payment",
			amount: 4000,
			setupMock: func(repo *MockPaymentRepo) {
				repo.On("GetByID", uint(5)).Return(pendingAssessment(), nil)
				repo.On("Update", mock.MatchedBy(func(p *models.Payment) bool {
					return p.PaymentStatus == models.PaymentStatusPartiallyPaid &&
						p.AmountPaid == 4000 && p.PaymentDate == nil
				})).Return(nil)
			},
			wantStatus: models.PaymentStatusPartiallyPaid,
		},
		{
			name:   "overpayment is rejected",
			amount: 10001,
			setupMock: func(repo *MockPaymentRepo) {
				repo.On("GetByID", uint(5)).Return(pendingAssessment(), nil)
			},
			wantErr: ErrOverpayment,
		},
		{
			name:   "already settled",
			amount: 100,
			setupMock: func(repo *MockPaymentRepo) {
				p := pendingAssessment()
				p.AmountPaid = p.AmountDue
				p.PaymentStatus = models.PaymentStatusPaid
				repo.On("GetByID", uint(5)).Return(p, nil)
			},
			wantErr: ErrAlreadyPaid,
		},
		{
			name:    "non-positive amount",
			amount:  0,
			wantErr: ErrInvalidAmount,
		},
		{
			name:   "unknown assessment",
			amount: 1000,
			setupMock: func(repo *MockPaymentRepo) {
				repo.On("GetByID", uint(5)).Return(nil, repositories.ErrPaymentNotFound)
			},
			wantErr: repositories.ErrPaymentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPaymentRepo)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := newTestService(repo, new(MockShopRepo), nil)

			p, err := svc.RecordPayment(context.Background(), RecordRequest{
				PaymentID: 5,
				Amount:    tt.amount,
				Method:    models.PaymentMethodCash,
			}, 9)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, p.PaymentStatus)

			repo.AssertExpectations(t)
		})
	}
}

func TestService_RecordPayment_PenaltyRaisesTheCap(t *testing.T) {
	// An accrued penalty is part of what is owed, so a payment covering
	// due plus penalty settles the record.
	repo := new(MockPaymentRepo)
	p := pendingAssessment()
	p.PenaltyAmount = 600
	repo.On("GetByID", uint(5)).Return(p, nil)
	repo.On("Update", mock.MatchedBy(func(got *models.Payment) bool {
		return got.PaymentStatus == models.PaymentStatusPaid && got.AmountPaid == 10600
	})).Return(nil)

	svc := newTestService(repo, new(MockShopRepo), nil)

	got, err := svc.RecordPayment(context.Background(), RecordRequest{
		PaymentID: 5,
		Amount:    10600,
		Method:    models.PaymentMethodTransfer,
	}, 9)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)
}

func TestService_PayOnline(t *testing.T) {
	t.Run("charges the gateway then records", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		gateway := new(MockGateway)

		repo.On("GetByID", uint(5)).Return(pendingAssessment(), nil)
		gateway.On("Charge", float64(10000), mock.Anything, "tok_visa").Return("ch_123", nil)
		repo.On("Update", mock.MatchedBy(func(p *models.Payment) bool {
			return p.PaymentMethod == models.PaymentMethodOnline &&
				p.Reference == "ch_123" &&
				p.PaymentStatus == models.PaymentStatusPaid
		})).Return(nil)

		svc := newTestService(repo, new(MockShopRepo), gateway)

		_, err := svc.PayOnline(context.Background(), OnlineRequest{
			PaymentID: 5,
			Amount:    10000,
			CardToken: "tok_visa",
		}, 9)
		assert.NoError(t, err)

		gateway.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("gateway decline surfaces without recording", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		gateway := new(MockGateway)

		repo.On("GetByID", uint(5)).Return(pendingAssessment(), nil)
		gateway.On("Charge", float64(10000), mock.Anything, "tok_bad").
			Return("", ErrGatewayDeclined)

		svc := newTestService(repo, new(MockShopRepo), gateway)

		_, err := svc.PayOnline(context.Background(), OnlineRequest{
			PaymentID: 5,
			Amount:    10000,
			CardToken: "tok_bad",
		}, 9)
		assert.True(t, errors.Is(err, ErrGatewayDeclined))

		repo.AssertNotCalled(t, "Update", mock.Anything)
	})
}
