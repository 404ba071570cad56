package compliance

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
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByShop(shopID uint, offset, limit int) ([]models.Payment, int64, error) {
	args := m.Called(shopID, offset, limit)
	return args.Get(0).([]models.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepo) UpdatePenalty(paymentID uint, penaltyAmount float64, status string) error {
	return m.Called(paymentID, penaltyAmount, status).Error(0)
}

type MockPermitRepo struct {
	mock.Mock
}

func (m *MockPermitRepo) Create(permit *models.Permit) error {
	return m.Called(permit).Error(0)
}

func (m *MockPermitRepo) GetByID(id uint) (*models.Permit, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Permit), args.Error(1)
}

func (m *MockPermitRepo) Update(permit *models.Permit) error {
	return m.Called(permit).Error(0)
}

func (m *MockPermitRepo) List(filter repositories.PermitFilter) ([]models.Permit, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Permit), args.Error(1)
}

func (m *MockPermitRepo) ListByShop(shopID uint) ([]models.Permit, error) {
	args := m.Called(shopID)
	return args.Get(0).([]models.Permit), args.Error(1)
}

func (m *MockPermitRepo) MarkExpired(before time.Time) (int64, error) {
	args := m.Called(before)
	return args.Get(0).(int64), args.Error(1)
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func overduePayment() models.Payment {
	return models.Payment{
		ShopID:        1,
		AmountDue:     10000,
		DueDate:       testNow.AddDate(0, 0, -10),
		PaymentStatus: models.PaymentStatusPending,
	}
}

func expiredPermit() models.Permit {
	return models.Permit{
		ShopID:       1,
		PermitType:   models.PermitTypeOperation,
		PermitNumber: "PMT-TEST0001",
		ExpiryDate:   testNow.AddDate(0, -1, 0),
		PermitStatus: models.PermitStatusActive,
	}
}

func TestService_Classify(t *testing.T) {
	tests := []struct {
		name     string
		payments []models.Payment
		permits  []models.Permit
		want     string
	}{
		{
			name:     "clean record is compliant",
			payments: []models.Payment{},
			permits:  []models.Permit{},
			want:     models.ComplianceCompliant,
		},
		{
			name:     "overdue payments only",
			payments: []models.Payment{overduePayment()},
			permits:  []models.Permit{},
			want:     models.ComplianceOverduePayments,
		},
		{
			name:     "expired permits only",
			payments: []models.Payment{},
			permits:  []models.Permit{expiredPermit()},
			want:     models.ComplianceExpiredPermits,
		},
		{
			name:     "both problems",
			payments: []models.Payment{overduePayment()},
			permits:  []models.Permit{expiredPermit()},
			want:     models.ComplianceNonCompliant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shops := new(MockShopRepo)
			payments := new(MockPaymentRepo)
			permits := new(MockPermitRepo)

			shops.On("GetByID", uint(1)).Return(&models.Shop{ShopNumber: "WRD-001"}, nil)
			payments.On("List", mock.Anything).Return(tt.payments, nil)
			permits.On("List", mock.Anything).Return(tt.permits, nil)

			svc := NewService(shops, payments, permits, clockwork.NewFakeClockAt(testNow))

			got, err := svc.Classify(context.Background(), 1)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)

			shops.AssertExpectations(t)
			payments.AssertExpectations(t)
			permits.AssertExpectations(t)
		})
	}
}

func TestService_Classify_UnknownShop(t *testing.T) {
	shops := new(MockShopRepo)
	shops.On("GetByID", uint(99)).Return(nil, repositories.ErrShopNotFound)

	svc := NewService(shops, new(MockPaymentRepo), new(MockPermitRepo), clockwork.NewFakeClockAt(testNow))

	_, err := svc.Classify(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrShopNotFound)
}

func TestService_Refresh(t *testing.T) {
	shops := new(MockShopRepo)
	payments := new(MockPaymentRepo)
	permits := new(MockPermitRepo)

	shops.On("GetByID", uint(1)).Return(&models.Shop{ShopNumber: "WRD-001"}, nil)
	payments.On("List", mock.Anything).Return([]models.Payment{overduePayment()}, nil)
	permits.On("List", mock.Anything).Return([]models.Permit{}, nil)
	shops.On("UpdateComplianceStatus", uint(1), models.ComplianceOverduePayments).Return(nil)

	svc := NewService(shops, payments, permits, clockwork.NewFakeClockAt(testNow))

	status, err := svc.Refresh(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, models.ComplianceOverduePayments, status)

	shops.AssertExpectations(t)
}
