package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"familykitchen/internal/domain"

	"gorm.io/gorm"
)

const maxTextLen = 1000

type Service struct {
	comments CommentRepository
	dishes   DishChecker
}

func NewService(comments CommentRepository, dishes DishChecker) *Service {
	return &Service{
		comments: comments,
		dishes:   dishes,
	}
}

// Create posts a comment under the author's current display name.
func (s *Service) Create(ctx context.Context, author *domain.User, dishID int64, req CommentRequest) (*domain.Comment, error) {
	text, err := cleanText(req.Text)
	if err != nil {
		return nil, err
	}
	if err := s.ensureDish(ctx, dishID); err != nil {
		return nil, err
	}

	c := &domain.Comment{
		DishID:     dishID,
		UserID:     author.ID,
		MemberName: author.MemberName(),
		Text:       text,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, actor *domain.User, dishID, commentID int64, req CommentRequest) (*domain.Comment, error) {
	text, err := cleanText(req.Text)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, actor, dishID, commentID); err != nil {
		return nil, err
	}

	c, err := s.comments.UpdateText(ctx, dishID, commentID, text)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, actor *domain.User, dishID, commentID int64) error {
	if _, err := s.authorize(ctx, actor, dishID, commentID); err != nil {
		return err
	}
	return notFound(s.comments.Delete(ctx, dishID, commentID))
}

// ToggleLike flips the caller's like and returns the recounted total.
func (s *Service) ToggleLike(ctx context.Context, actor *domain.User, dishID, commentID int64) (*LikeResponse, error) {
	if _, err := s.comments.GetByID(ctx, dishID, commentID); err != nil {
		return nil, notFound(err)
	}

	liked, likes, err := s.comments.ToggleLike(ctx, commentID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return &LikeResponse{Liked: liked, Likes: likes}, nil
}

// authorize loads the comment and checks that actor is its author or a member.
func (s *Service) authorize(ctx context.Context, actor *domain.User, dishID, commentID int64) (*domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, dishID, commentID)
	if err != nil {
		return nil, notFound(err)
	}
	if !c.CanModify(actor) {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *Service) ensureDish(ctx context.Context, dishID int64) error {
	ok, err := s.dishes.Exists(ctx, dishID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDishNotFound
	}
	return nil
}

func cleanText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" || utf8.RuneCountInString(text) > maxTextLen {
		return "", ErrInvalidText
	}
	return text, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	return err
}
