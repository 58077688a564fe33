package tags

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/osse101/MinesocBot_Go/internal/domain"
	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/metrics"
	"github.com/osse101/MinesocBot_Go/internal/repository"
)

// Service manages guild tags. Names are normalised with NormalizeName before every lookup.
type Service interface {
	Create(ctx context.Context, guildID, ownerID int64, name, content string) (*domain.Tag, error)
	// Show returns the tag and counts one use; unknown names are domain.ErrNotFound.
	Show(ctx context.Context, guildID int64, name string) (*domain.Tag, error)
	// Peek returns the tag without counting a use.
	Peek(ctx context.Context, guildID int64, name string) (*domain.Tag, error)
	// Edit, Rename and Delete return domain.ErrTagNotOwned when another member owns the tag.
	Edit(ctx context.Context, guildID, ownerID int64, name, content string) error
	Rename(ctx context.Context, guildID, ownerID int64, name, newName string) error
	Delete(ctx context.Context, guildID, ownerID int64, name string) error
	Owned(ctx context.Context, guildID, ownerID int64) ([]domain.Tag, error)
	// Names lists up to limit tag names starting with prefix
	Names(ctx context.Context, guildID int64, prefix string, limit int) ([]string, error)
	Board(ctx context.Context, guildID int64) (*domain.TagBoard, error)
}

type service struct {
	repo repository.Tags
}

// NewService creates a new tag service
func NewService(repo repository.Tags) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, guildID, ownerID int64, name, content string) (*domain.Tag, error) {
	name = NormalizeName(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	content, err := validateContent(content)
	if err != nil {
		return nil, err
	}

	tag, err := s.repo.Create(ctx, &domain.Tag{GuildID: guildID, Name: name, OwnerID: ownerID, Content: content})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}
	metrics.TagOperations.WithLabelValues(metrics.TagOpCreate).Inc()
	logger.FromContext(ctx).Info(LogMsgTagCreated, "guildID", guildID, "ownerID", ownerID, "name", name)
	return tag, nil
}

func (s *service) Show(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	tag, err := s.repo.Use(ctx, guildID, NormalizeName(name))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, err)
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	metrics.TagOperations.WithLabelValues(metrics.TagOpShow).Inc()
	return tag, nil
}

func (s *service) Peek(ctx context.Context, guildID int64, name string) (*domain.Tag, error) {
	tag, err := s.repo.Get(ctx, guildID, NormalizeName(name))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, err)
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	return tag, nil
}

func (s *service) Edit(ctx context.Context, guildID, ownerID int64, name, content string) error {
	name = NormalizeName(name)
	content, err := validateContent(content)
	if err != nil {
		return err
	}

	changed, err := s.repo.UpdateContent(ctx, guildID, ownerID, name, content)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateFailed, err)
	}
	if !changed {
		return s.whyUnchanged(ctx, guildID, name)
	}
	logger.FromContext(ctx).Info(LogMsgTagEdited, "guildID", guildID, "ownerID", ownerID, "name", name)
	return nil
}

func (s *service) Rename(ctx context.Context, guildID, ownerID int64, name, newName string) error {
	name = NormalizeName(name)
	newName = NormalizeName(newName)
	if err := ValidateName(newName); err != nil {
		return err
	}

	changed, err := s.repo.Rename(ctx, guildID, ownerID, name, newName)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateFailed, err)
	}
	if !changed {
		return s.whyUnchanged(ctx, guildID, name)
	}
	logger.FromContext(ctx).Info(LogMsgTagRenamed, "guildID", guildID, "ownerID", ownerID, "from", name, "to", newName)
	return nil
}

func (s *service) Delete(ctx context.Context, guildID, ownerID int64, name string) error {
	name = NormalizeName(name)
	deleted, err := s.repo.Delete(ctx, guildID, ownerID, name)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, err)
	}
	if !deleted {
		return s.whyUnchanged(ctx, guildID, name)
	}
	metrics.TagOperations.WithLabelValues(metrics.TagOpDelete).Inc()
	logger.FromContext(ctx).Info(LogMsgTagDeleted, "guildID", guildID, "ownerID", ownerID, "name", name)
	return nil
}

// whyUnchanged tells a missing tag apart from one held by another member
func (s *service) whyUnchanged(ctx context.Context, guildID int64, name string) error {
	tag, err := s.repo.Get(ctx, guildID, name)
	if err != nil {
		return fmt.Errorf(ErrMsgReadFailed, err)
	}
	if tag == nil {
		return domain.ErrNotFound
	}
	return domain.ErrTagNotOwned
}

func (s *service) Owned(ctx context.Context, guildID, ownerID int64) ([]domain.Tag, error) {
	owned, err := s.repo.ListByOwner(ctx, guildID, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return owned, nil
}

func (s *service) Names(ctx context.Context, guildID int64, prefix string, limit int) ([]string, error) {
	if limit <= 0 || limit > MaxListed {
		limit = MaxListed
	}
	names, err := s.repo.SearchNames(ctx, guildID, NormalizeName(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return names, nil
}

func (s *service) Board(ctx context.Context, guildID int64) (*domain.TagBoard, error) {
	used, err := s.repo.MostUsed(ctx, guildID, domain.TagBoardSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	oldest, err := s.repo.Oldest(ctx, guildID, domain.TagBoardSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return &domain.TagBoard{MostUsed: used, Oldest: oldest}, nil
}

// NormalizeName trims and lower-cases a tag name
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateName checks a normalised name against the length, whitespace and reserved word rules
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: %s", domain.ErrTagNameInvalid, ErrMsgNameEmpty)
	case utf8.RuneCountInString(name) > domain.MaxTagNameLength:
		return fmt.Errorf("%w: "+ErrMsgNameTooLongFmt, domain.ErrTagNameInvalid, domain.MaxTagNameLength)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: %s", domain.ErrTagNameInvalid, ErrMsgNameWhitespace)
	case slices.Contains(ReservedNames, name):
		return fmt.Errorf("%w: "+ErrMsgNameReservedFmt, domain.ErrTagNameInvalid, name)
	}
	return nil
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgContentEmpty)
	}
	if utf8.RuneCountInString(content) > domain.MaxTagContentLength {
		return "", fmt.Errorf("%w: "+ErrMsgContentTooLongFmt, domain.ErrInvalidInput, domain.MaxTagContentLength)
	}
	return content, nil
}
