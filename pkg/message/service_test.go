// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package message

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/notification"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package message -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthorizerInterface
	tx       *MockTxManagerInterface
	notifier *MockNotifierInterface
	auditor  *MockAuditorInterface
}

var (
	landlord = authorization.Principal{ID: "landlord-1", Role: types.RoleLandlord}
	tenant   = authorization.Principal{ID: "tenant-1", Role: types.RoleTenant}
	stranger = authorization.Principal{ID: "tenant-2", Role: types.RoleTenant}
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthorizerInterface(ctrl),
		tx:       NewMockTxManagerInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		auditor:  NewMockAuditorInterface(ctrl),
	}

	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	logger := logging.NewNoopLogger()
	return NewService(m.storage, m.authz, m.tx, m.notifier, m.auditor, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), m
}

func strPtr(s string) *string { return &s }

func TestService_SendMessage(t *testing.T) {
	testCases := []struct {
		name         string
		principal    authorization.Principal
		input        *MessageInput
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:      "landlord messages tenant",
			principal: landlord,
			input:     &MessageInput{RecipientID: "tenant-1", Content: " hi "},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.authz.EXPECT().CanMessage(gomock.Any(), landlord, "tenant-1", nil, nil).Return(true)
				m.storage.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg *types.Message) (*types.Message, error) {
						if msg.Content != "hi" || msg.Category != defaultCategory || msg.SenderID != landlord.ID || msg.Attachments == nil {
							t.Errorf("unexpected message %+v", msg)
						}
						msg.ID = "msg-1"
						return msg, nil
					})
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, p notification.Payload) {
						if p.RecipientID != "tenant-1" || p.Path != "/messages/msg-1" || p.Type != notification.TypeMessage {
							t.Errorf("unexpected notification %+v", p)
						}
					})
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "message.send", "message", "msg-1", gomock.Any())
			},
		},
		{
			name:      "tenant of an unrelated property is refused",
			principal: stranger,
			input:     &MessageInput{RecipientID: "tenant-1", Content: "hi"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.authz.EXPECT().CanMessage(gomock.Any(), stranger, "tenant-1", nil, nil).Return(false)
			},
			expectedKind: apperrors.KindAuthorization,
		},
		{
			name:         "empty content",
			principal:    landlord,
			input:        &MessageInput{RecipientID: "tenant-1", Content: "   "},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "content too long",
			principal:    landlord,
			input:        &MessageInput{RecipientID: "tenant-1", Content: strings.Repeat("a", maxContentLength+1)},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "messaging yourself",
			principal:    landlord,
			input:        &MessageInput{RecipientID: landlord.ID, Content: "hi"},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:      "unknown recipient",
			principal: landlord,
			input:     &MessageInput{RecipientID: "ghost", Content: "hi"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedKind: apperrors.KindNotFound,
		},
		{
			name:      "own upload attached",
			principal: landlord,
			input:     &MessageInput{RecipientID: "tenant-1", Content: "lease copy", Attachments: []string{"media-1"}},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetMedia(gomock.Any(), "media-1").Return(&types.Media{ID: "media-1", UploadedBy: landlord.ID}, nil)
				m.authz.EXPECT().CanMessage(gomock.Any(), landlord, "tenant-1", nil, nil).Return(true)
				m.storage.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg *types.Message) (*types.Message, error) {
						if len(msg.Attachments) != 1 || msg.Attachments[0] != "media-1" {
							t.Errorf("unexpected attachments %v", msg.Attachments)
						}
						msg.ID = "msg-2"
						return msg, nil
					})
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
				m.auditor.EXPECT().Record(gomock.Any(), landlord.ID, "message.send", "message", "msg-2", gomock.Any())
			},
		},
		{
			name:      "someone else's upload attached",
			principal: stranger,
			input:     &MessageInput{RecipientID: "tenant-1", Content: "hi", Attachments: []string{"proof-1"}},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetMedia(gomock.Any(), "proof-1").Return(&types.Media{ID: "proof-1", UploadedBy: "tenant-1"}, nil)
			},
			expectedKind: apperrors.KindAuthorization,
		},
		{
			name:      "unknown parent",
			principal: landlord,
			input:     &MessageInput{RecipientID: "tenant-1", Content: "hi", ParentMessageID: strPtr("msg-0")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetMessage(gomock.Any(), "msg-0").Return(nil, storage.ErrNotFound)
			},
			expectedKind: apperrors.KindNotFound,
		},
		{
			name:      "parent from another conversation",
			principal: landlord,
			input:     &MessageInput{RecipientID: "tenant-1", Content: "hi", ParentMessageID: strPtr("msg-0")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetMessage(gomock.Any(), "msg-0").Return(&types.Message{ID: "msg-0", SenderID: "tenant-2", RecipientID: "landlord-1"}, nil)
			},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:      "unit outside the property",
			principal: landlord,
			input:     &MessageInput{RecipientID: "tenant-1", Content: "hi", PropertyID: strPtr("prop-1"), UnitID: strPtr("unit-9")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetUser(gomock.Any(), "tenant-1").Return(&types.User{ID: "tenant-1"}, nil)
				m.storage.EXPECT().GetUnit(gomock.Any(), "unit-9").Return(&types.Unit{ID: "unit-9", PropertyID: "prop-2"}, nil)
			},
			expectedKind: apperrors.KindValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.SendMessage(context.Background(), tc.principal, tc.input)

			if tc.expectedKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.KindOf(err) != tc.expectedKind {
				t.Errorf("expected %s, got %v", tc.expectedKind, err)
			}
		})
	}
}

func TestService_ListMessages(t *testing.T) {
	testCases := []struct {
		name         string
		query        *MessageQuery
		setupMocks   func(*mocks)
		expectedKind apperrors.Kind
	}{
		{
			name:  "inbox by default",
			query: &MessageQuery{UnreadOnly: true},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListMessages(gomock.Any(), storage.MessageFilter{UserID: tenant.ID, Box: storage.Inbox, UnreadOnly: true}).
					Return([]*types.Message{}, nil)
			},
		},
		{
			name:         "invalid box",
			query:        &MessageQuery{Box: "archive"},
			setupMocks:   func(*mocks) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:  "property not visible",
			query: &MessageQuery{Box: storage.Sent, PropertyID: "prop-2"},
			setupMocks: func(m *mocks) {
				m.authz.EXPECT().CanViewProperty(gomock.Any(), tenant, "prop-2").Return(false)
			},
			expectedKind: apperrors.KindAuthorization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.ListMessages(context.Background(), tenant, tc.query)

			if tc.expectedKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.KindOf(err) != tc.expectedKind {
				t.Errorf("expected %s, got %v", tc.expectedKind, err)
			}
		})
	}
}

func TestService_MarkAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().MarkMessagesRead(gomock.Any(), tenant.ID, []string{"msg-1", "msg-2"}).Return(int64(1), nil)

	n, err := s.MarkAsRead(context.Background(), tenant, []string{"msg-1", "msg-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 message marked, got %d", n)
	}

	if _, err := s.MarkAsRead(context.Background(), tenant, nil); apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestService_DeleteMessage(t *testing.T) {
	testCases := []struct {
		name         string
		principal    authorization.Principal
		expectedKind apperrors.Kind
	}{
		{name: "sender", principal: landlord},
		{name: "recipient", principal: tenant},
		{name: "someone else", principal: stranger, expectedKind: apperrors.KindAuthorization},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)

			m.storage.EXPECT().GetMessage(gomock.Any(), "msg-1").Return(&types.Message{ID: "msg-1", SenderID: landlord.ID, RecipientID: tenant.ID}, nil)
			if tc.expectedKind == "" {
				m.storage.EXPECT().SoftDeleteMessage(gomock.Any(), "msg-1").Return(nil)
				m.auditor.EXPECT().Record(gomock.Any(), tc.principal.ID, "message.delete", "message", "msg-1", gomock.Any())
			}

			err := s.DeleteMessage(context.Background(), tc.principal, "msg-1")

			if tc.expectedKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if apperrors.KindOf(err) != tc.expectedKind {
				t.Errorf("expected %s, got %v", tc.expectedKind, err)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	short := "see you at the viewing"
	if preview(short) != short {
		t.Errorf("short content should be kept whole")
	}

	long := strings.Repeat("é", previewLength+5)
	if got := []rune(preview(long)); len(got) != previewLength+3 {
		t.Errorf("expected %d runes, got %d", previewLength+3, len(got))
	}
}
