package finalize_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/internal/infra/events"
	bookingRepo "github.com/Lingges29/mypark/internal/infra/storage/booking"
)

// UseCase settles a booking's payment: clamps redeemed points, records the
// payment, attaches a receipt token and adjusts the reward balance
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	userClient   UserServiceClient
	publisher    EventPublisher
	txManager    TransactionManager
	cache        AnalyticsInvalidator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking-finalization usecase
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	userClient UserServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	cache AnalyticsInvalidator,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		userClient:   userClient,
		publisher:    publisher,
		txManager:    txManager,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute confirms the payment for a booking. Redeemed points are clamped
// to the balance and to whole multiples of ten, never rejected. The payment
// row and the receipt attachment commit atomically; the reward adjustment
// and the confirmation event follow after the commit.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinalizeBooking: user=%d, booking=%d, redeem=%d",
		req.UserID, req.BookingID, req.RedeemPoints)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FinalizeBooking: validation failed: %v", err)
		return nil, err
	}

	balance, err := uc.userClient.GetRewardPoints(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("FinalizeBooking: failed to get reward balance for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get reward balance: %v", ErrInternal, err)
	}

	receiptRef := uuid.NewString()
	now := uc.timeProvider.Now()

	var (
		booking  *domain.Booking
		redeemed int
		discount float64
		final    float64
		earned   int
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("FinalizeBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("FinalizeBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if b.UserID != req.UserID {
			uc.logger.Warn("FinalizeBooking: booking id=%d belongs to user=%d, not user=%d",
				req.BookingID, b.UserID, req.UserID)
			return ErrBookingNotOwned
		}

		if b.IsPaid() {
			uc.logger.Warn("FinalizeBooking: booking id=%d already finalized", req.BookingID)
			return ErrAlreadyFinalized
		}

		redeemed = domain.RedeemablePoints(req.RedeemPoints, balance)
		discount = domain.DiscountForPoints(redeemed)
		final = b.Amount - discount
		if final < 0 {
			final = 0
		}
		earned = domain.EarnedPoints(final)

		if _, err := uc.paymentRepo.Create(txCtx, b.ID, now); err != nil {
			uc.logger.Error("FinalizeBooking: failed to record payment for booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.AttachReceipt(txCtx, b.ID, receiptRef); err != nil {
			uc.logger.Error("FinalizeBooking: failed to attach receipt to booking id=%d: %v", b.ID, err)
			return fmt.Errorf("%w: failed to attach receipt: %v", ErrInternal, err)
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	newBalance := balance
	if delta := earned - redeemed; delta != 0 {
		// The payment is already committed; a failed balance adjustment is
		// logged and reconciled out of band
		adjusted, err := uc.userClient.AdjustRewardPoints(ctx, req.UserID, delta)
		if err != nil {
			uc.logger.Error("FinalizeBooking: failed to adjust reward balance for user=%d by %d: %v",
				req.UserID, delta, err)
		} else {
			newBalance = adjusted
		}
	}

	event := events.BookingConfirmed{
		EventID:    uuid.NewString(),
		BookingID:  booking.ID,
		SlotID:     booking.SlotID,
		UserID:     booking.UserID,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Amount:     final,
		ReceiptRef: receiptRef,
		OccurredAt: now,
	}
	if err := uc.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		uc.logger.Error("FinalizeBooking: failed to publish confirmation for booking id=%d: %v",
			booking.ID, err)
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("FinalizeBooking: analytics cache invalidation failed: %v", err)
	}

	uc.logger.Info("FinalizeBooking: booking id=%d settled, final=%.2f, redeemed=%d, earned=%d",
		booking.ID, final, redeemed, earned)

	return &Response{
		BookingID:      booking.ID,
		ReceiptRef:     receiptRef,
		Amount:         booking.Amount,
		Discount:       discount,
		FinalAmount:    final,
		PointsRedeemed: redeemed,
		PointsEarned:   earned,
		PointsBalance:  newBalance,
	}, nil
}
