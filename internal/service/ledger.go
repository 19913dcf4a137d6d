package service

import (
	"context"
	"fmt"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
	events     EventSink

	// One lock per host keeps the balance check and the withdrawal posting
	// atomic; postings for different hosts never contend.
	hostLocks *keyedMutex
}

func NewLedgerService(
	ledgerRepo repository.LedgerRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	events EventSink,
) LedgerService {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
		events:     events,
		hostLocks:  newKeyedMutex(),
	}
}

func (s *ledgerService) AvailableBalance(ctx context.Context, hostID int32) (int64, error) {
	return s.ledgerRepo.GetBalance(ctx, hostID)
}

func (s *ledgerService) PostEarning(ctx context.Context, hostID, bookingID int32, amount int64, description string) (*domain.Transaction, error) {
	if amount < 0 {
		return nil, fmt.Errorf("earning amount must not be negative, got %d", amount)
	}
	return s.post(ctx, hostID, &bookingID, domain.TransactionTypeEarning, amount, description)
}

func (s *ledgerService) PostReversal(ctx context.Context, hostID, bookingID int32, amount int64, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("reversal amount must be positive, got %d", amount)
	}
	// A reversal is an earning with a negative amount: the ledger stays
	// append-only and the balance sum nets the pair to zero.
	return s.post(ctx, hostID, &bookingID, domain.TransactionTypeEarning, -amount, description)
}

func (s *ledgerService) post(ctx context.Context, hostID int32, bookingID *int32, txType domain.TransactionType, amount int64, description string) (*domain.Transaction, error) {
	s.hostLocks.Lock(hostID)
	defer s.hostLocks.Unlock(hostID)

	tx := &domain.Transaction{
		HostID:      hostID,
		BookingID:   bookingID,
		Type:        txType,
		Amount:      amount,
		Status:      domain.TransactionStatusCompleted,
		Description: description,
	}
	if err := s.ledgerRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *ledgerService) EarningsForBooking(ctx context.Context, bookingID int32) (int64, error) {
	return s.ledgerRepo.SumEarningsByBooking(ctx, bookingID)
}

func (s *ledgerService) RequestWithdrawal(ctx context.Context, hostID int32, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("withdrawal amount must be positive, got %d", amount)
	}

	s.hostLocks.Lock(hostID)

	balance, err := s.ledgerRepo.GetBalance(ctx, hostID)
	if err != nil {
		s.hostLocks.Unlock(hostID)
		return nil, err
	}
	if amount > balance {
		s.hostLocks.Unlock(hostID)
		return nil, fmt.Errorf("requested %d, available %d: %w", amount, balance, domain.ErrInsufficientFunds)
	}

	// Settlement to COMPLETED is the payment processor's job; the engine
	// only records the request and holds the funds.
	tx := &domain.Transaction{
		HostID:      hostID,
		Type:        domain.TransactionTypeWithdrawal,
		Amount:      amount,
		Status:      domain.TransactionStatusPending,
		Description: "Withdrawal request",
	}
	if err := s.ledgerRepo.CreateTransaction(ctx, tx); err != nil {
		s.hostLocks.Unlock(hostID)
		return nil, err
	}
	s.hostLocks.Unlock(hostID)

	if host, err := s.userRepo.GetByID(ctx, hostID); err == nil {
		_ = s.emailSvc.SendWithdrawalNotification(ctx, host.Email, amount)
	}
	s.events.Publish(ctx, domain.Event{
		Type:        domain.EventWithdrawalRequested,
		RecipientID: hostID,
		Title:       "Withdrawal requested",
		Message:     fmt.Sprintf("Your withdrawal request of %d is being processed", amount),
		Attributes:  map[string]string{"transaction_id": fmt.Sprintf("%d", tx.ID)},
	})
	return tx, nil
}

func (s *ledgerService) GetTransactions(ctx context.Context, hostID int32, page, pageSize int32) ([]domain.Transaction, int32, error) {
	return s.ledgerRepo.ListTransactions(ctx, hostID, page, pageSize)
}

func (s *ledgerService) GetSummary(ctx context.Context, hostID int32) (*domain.WalletSummary, error) {
	return s.ledgerRepo.GetSummary(ctx, hostID)
}
