package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"sejour-backend/internal/domain"
	"sejour-backend/internal/repository"
)

type conversationService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	events      EventSink
}

func NewConversationService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	events EventSink,
) ConversationService {
	return &conversationService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		events:      events,
	}
}

// BuildConversations is the pure projection from a message log to the
// per-counterpart conversation list: latest message wins, unread counts
// messages addressed to userID that are still unread, and the result is
// ordered by last-message recency descending. include adds empty
// placeholder threads, which always sort last.
func BuildConversations(userID int32, msgs []domain.Message, include ...int32) []domain.Conversation {
	byCounterpart := make(map[int32]*domain.Conversation)

	for i := range msgs {
		m := msgs[i]
		counterpart := m.SenderID
		if counterpart == userID {
			counterpart = m.ReceiverID
		}
		if counterpart == userID {
			continue
		}

		c, ok := byCounterpart[counterpart]
		if !ok {
			c = &domain.Conversation{CounterpartID: counterpart}
			byCounterpart[counterpart] = c
		}
		if c.LastMessage == nil || m.CreatedOn.After(c.LastMessage.CreatedOn) {
			c.LastMessage = &msgs[i]
		}
		if m.ReceiverID == userID && !m.Read {
			c.UnreadCount++
		}
	}

	for _, id := range include {
		if id == userID {
			continue
		}
		if _, ok := byCounterpart[id]; !ok {
			byCounterpart[id] = &domain.Conversation{CounterpartID: id}
		}
	}

	conversations := make([]domain.Conversation, 0, len(byCounterpart))
	for _, c := range byCounterpart {
		conversations = append(conversations, *c)
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		a, b := conversations[i].LastMessage, conversations[j].LastMessage
		switch {
		case a == nil && b == nil:
			return conversations[i].CounterpartID < conversations[j].CounterpartID
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.CreatedOn.After(b.CreatedOn)
		}
	})
	return conversations
}

func (s *conversationService) ConversationsFor(ctx context.Context, userID int32, include ...int32) ([]domain.Conversation, error) {
	msgs, err := s.messageRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversations := BuildConversations(userID, msgs, include...)
	for i := range conversations {
		if user, err := s.userRepo.GetByID(ctx, conversations[i].CounterpartID); err == nil {
			conversations[i].Counterpart = user
		}
	}
	return conversations, nil
}

func (s *conversationService) Thread(ctx context.Context, userID, counterpartID int32) ([]domain.Message, error) {
	return s.messageRepo.ListThread(ctx, userID, counterpartID)
}

func (s *conversationService) SendMessage(ctx context.Context, senderID, receiverID int32, text string) (*domain.Message, error) {
	if text == "" {
		return nil, errors.New("message text must not be empty")
	}
	if senderID == receiverID {
		return nil, errors.New("cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	m := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	sender, _ := s.userRepo.GetByID(ctx, senderID)
	senderName := "Someone"
	if sender != nil {
		senderName = sender.Name
	}
	s.events.Publish(ctx, domain.Event{
		Type:        domain.EventMessageReceived,
		RecipientID: receiverID,
		Title:       "New message",
		Message:     fmt.Sprintf("%s sent you a message", senderName),
		Attributes:  map[string]string{"sender_id": fmt.Sprintf("%d", senderID)},
	})
	return m, nil
}

func (s *conversationService) MarkRead(ctx context.Context, userID, counterpartID int32) error {
	return s.messageRepo.MarkThreadRead(ctx, userID, counterpartID)
}
