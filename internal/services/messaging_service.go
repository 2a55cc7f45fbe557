package services

import (
	"time"

	"monprof_backend/internal/models"
	"monprof_backend/internal/models/messaging"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

type MessagingService interface {
	StartThread(callerID, otherUserID string) (*dto.StartThreadResponse, error)
	GetInbox(userID string) ([]dto.ThreadSummaryDTO, error)
	OpenThread(threadID, userID string) (*dto.ThreadDetailDTO, error)
	PostMessage(threadID, senderID string, req *dto.PostMessageRequest) (*dto.MessageDTO, error)
	CountUnread(userID string) (*dto.UnreadCountResponse, error)
}

type MessagingServiceImpl struct {
	msgRepo     repositories.MessagingRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewMessagingService(
	msgRepo repositories.MessagingRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) MessagingService {
	return &MessagingServiceImpl{
		msgRepo:     msgRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// StartThread opens (or reopens) the single conversation between two
// users. Participants are stored as an ordered pair, so both sides
// always land on the same thread.
func (s *MessagingServiceImpl) StartThread(callerID, otherUserID string) (*dto.StartThreadResponse, error) {
	if callerID == otherUserID {
		return nil, apperrors.ErrSelfThread
	}

	other, err := s.userRepo.FindByID(otherUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !other.IsActive {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	// A tutor is reachable only once their profile went public.
	if other.Role == models.UserRoleTutor {
		profile, err := s.profileRepo.FindTutorProfileByUserID(other.ID)
		if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if profile == nil || !profile.IsVisible() {
			return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
		}
	}

	thread, err := s.msgRepo.GetOrCreateThread(callerID, other.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StartThreadResponse{ThreadID: thread.ID}, nil
}

// GetInbox lists the caller's conversations, most recent activity first.
func (s *MessagingServiceImpl) GetInbox(userID string) ([]dto.ThreadSummaryDTO, error) {
	threads, err := s.msgRepo.FindUserThreads(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ThreadSummaryDTO, 0, len(threads))
	for i := range threads {
		thread := &threads[i]

		other, err := s.participantDTO(thread.OtherParticipant(userID))
		if err != nil {
			return nil, err
		}

		summary := dto.ThreadSummaryDTO{
			ID:            thread.ID,
			Other:         other,
			LastMessageAt: thread.LastMessageAt,
		}

		last, err := s.msgRepo.FindLastMessage(thread.ID)
		if err != nil && !apperrors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if last != nil {
			m := dto.NewMessageDTO(last)
			summary.LastMessage = &m
		}

		unread, err := s.msgRepo.CountThreadUnread(thread.ID, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		summary.UnreadCount = unread

		items = append(items, summary)
	}
	return items, nil
}

// OpenThread returns the conversation and marks the other party's
// messages as read. Non-participants are refused.
func (s *MessagingServiceImpl) OpenThread(threadID, userID string) (*dto.ThreadDetailDTO, error) {
	thread, err := s.loadThreadFor(threadID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.msgRepo.MarkThreadRead(thread.ID, userID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.msgRepo.FindThreadMessages(thread.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	other, err := s.participantDTO(thread.OtherParticipant(userID))
	if err != nil {
		return nil, err
	}

	detail := &dto.ThreadDetailDTO{
		ID:       thread.ID,
		Other:    other,
		Messages: make([]dto.MessageDTO, 0, len(messages)),
	}
	for i := range messages {
		detail.Messages = append(detail.Messages, dto.NewMessageDTO(&messages[i]))
	}
	return detail, nil
}

func (s *MessagingServiceImpl) PostMessage(threadID, senderID string, req *dto.PostMessageRequest) (*dto.MessageDTO, error) {
	thread, err := s.loadThreadFor(threadID, senderID)
	if err != nil {
		return nil, err
	}

	message := &messaging.Message{
		ThreadID: thread.ID,
		SenderID: senderID,
		Content:  req.Content,
	}
	if err := s.msgRepo.CreateMessage(message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.msgRepo.TouchThread(thread.ID, time.Now()); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewMessageDTO(message)
	return &result, nil
}

func (s *MessagingServiceImpl) CountUnread(userID string) (*dto.UnreadCountResponse, error) {
	count, err := s.msgRepo.CountUserUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *MessagingServiceImpl) loadThreadFor(threadID, userID string) (*messaging.Thread, error) {
	thread, err := s.msgRepo.FindThreadByID(threadID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrThreadNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !thread.HasParticipant(userID) {
		return nil, apperrors.ErrThreadAccessDenied
	}
	return thread, nil
}

func (s *MessagingServiceImpl) participantDTO(userID string) (dto.ParticipantDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// The account may have been deleted; keep the thread readable.
			return dto.ParticipantDTO{ID: userID, Name: "Compte supprimé"}, nil
		}
		return dto.ParticipantDTO{}, apperrors.InternalError(err)
	}

	p := dto.ParticipantDTO{
		ID:   user.ID,
		Name: user.FullName(),
		Role: string(user.Role),
	}
	if user.TutorProfile != nil {
		p.PhotoURL = user.TutorProfile.PhotoURL
	}
	return p, nil
}
