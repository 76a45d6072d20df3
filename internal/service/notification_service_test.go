package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func approvedDeposit() *domain.Deposit {
	approved := int64(500000)
	return &domain.Deposit{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Method:          domain.MethodBankTransfer,
		State:           domain.StateApproved,
		RequestedAmount: 500000,
		ApprovedAmount:  &approved,
		Currency:        "VND",
	}
}

// Publish callbacks run on the worker goroutine, so they use assert only.

func TestNotificationService_DepositChanged_PublishesSignedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockEventPublisher(ctrl)
	sigSvc := NewHMACSignatureService()
	svc := NewNotificationService(publisher, sigSvc, "events-secret", newTestLogger())

	d := approvedDeposit()
	entry := &domain.LedgerEntry{ID: uuid.New(), NetAmount: 492500}

	publisher.EXPECT().Publish(gomock.Any(), d.ID.String(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload []byte, headers map[string]string) error {
			var event domain.DepositEvent
			if !assert.NoError(t, json.Unmarshal(payload, &event)) {
				return nil
			}
			assert.Equal(t, domain.EventDepositApproved, event.Type)
			assert.Equal(t, d.ID, event.DepositID)
			if assert.NotNil(t, event.NetCredited) {
				assert.Equal(t, int64(492500), *event.NetCredited)
			}

			assert.Equal(t, string(domain.EventDepositApproved), headers[HeaderEventType])
			assert.Equal(t, event.EventID.String(), headers[HeaderEventID])
			ts, err := strconv.ParseInt(headers[HeaderTimestamp], 10, 64)
			assert.NoError(t, err)
			assert.True(t, sigSvc.Verify("events-secret", EventSigningString(ts, payload), headers[HeaderSignature]))
			return nil
		})

	svc.DepositChanged(context.Background(), d, entry)
	svc.Close()
}

func TestNotificationService_DepositChanged_EventPerState(t *testing.T) {
	tests := []struct {
		state domain.DepositState
		want  domain.EventType
	}{
		{domain.StateCreated, domain.EventDepositInitiated},
		{domain.StateUnderReview, domain.EventDepositProofSubmitted},
		{domain.StateRejected, domain.EventDepositRejected},
		{domain.StateExpired, domain.EventDepositExpired},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := mocks.NewMockEventPublisher(ctrl)
			svc := NewNotificationService(publisher, NewHMACSignatureService(), "s", newTestLogger())

			d := approvedDeposit()
			d.State = tt.state
			d.ApprovedAmount = nil

			publisher.EXPECT().Publish(gomock.Any(), d.ID.String(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, _ []byte, headers map[string]string) error {
					assert.Equal(t, string(tt.want), headers[HeaderEventType])
					return nil
				})

			svc.DepositChanged(context.Background(), d, nil)
			svc.Close()
		})
	}
}

func TestNotificationService_DepositChanged_PublishErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockEventPublisher(ctrl)
	svc := NewNotificationService(publisher, NewHMACSignatureService(), "s", newTestLogger())

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("kafka: leader not available"))

	assert.NotPanics(t, func() {
		svc.DepositChanged(context.Background(), approvedDeposit(), nil)
		svc.Close()
	})
}

func TestNotificationService_DepositChanged_DetachedFromRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockEventPublisher(ctrl)
	svc := NewNotificationService(publisher, NewHMACSignatureService(), "s", newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ []byte, _ map[string]string) error {
			assert.NoError(t, ctx.Err())
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(publishTimeout), deadline, time.Second)
			return nil
		})

	svc.DepositChanged(ctx, approvedDeposit(), nil)
	svc.Close()
}

func TestNotificationService_DepositChanged_DoesNotWaitForBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockEventPublisher(ctrl)
	svc := newNotificationService(publisher, NewHMACSignatureService(), "s", 1, newTestLogger())

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, []byte, map[string]string) error {
			started <- struct{}{}
			<-release
			return nil
		}).Times(2)

	svc.DepositChanged(context.Background(), approvedDeposit(), nil)
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never picked up the first event")
	}

	// The worker is stuck on the broker: one event fits the queue, the next is dropped.
	begin := time.Now()
	svc.DepositChanged(context.Background(), approvedDeposit(), nil)
	svc.DepositChanged(context.Background(), approvedDeposit(), nil)
	assert.Less(t, time.Since(begin), 100*time.Millisecond)

	close(release)
	svc.Close()
}

func TestNotificationService_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockEventPublisher(ctrl)
	svc := NewNotificationService(publisher, NewHMACSignatureService(), "s", newTestLogger())

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	for range 3 {
		svc.DepositChanged(context.Background(), approvedDeposit(), nil)
	}
	svc.Close()
	svc.Close()

	// Events after Close are dropped, not published and not panicking.
	assert.NotPanics(t, func() {
		svc.DepositChanged(context.Background(), approvedDeposit(), nil)
	})
}
