package testimonials

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/i18n"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/logging"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"
)

// Submission is the public form payload for new testimonials.
type Submission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	Language string `json:"language"`
}

// Validate checks the public submission before it enters moderation.
func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(2, 120)),
		validation.Field(&s.Email, is.Email),
		validation.Field(&s.Content, validation.Required, validation.Length(10, 2000)),
		validation.Field(&s.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// Service manages visitor testimonials and their moderation queue.
type Service interface {
	Submit(ctx context.Context, submission Submission) (*Testimonial, error)
	Approve(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	Reject(ctx context.Context, id uuid.UUID, notes string) (*Testimonial, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	ListApproved(ctx context.Context, language string, limit int) ([]*Testimonial, error)
	ListFeatured(ctx context.Context, language string) ([]*Testimonial, error)
	ListPending(ctx context.Context) ([]*Testimonial, error)
	Stats(ctx context.Context) (RatingStats, error)
}

// Filter narrows testimonial listings.
type Filter struct {
	Status       Status
	Language     string
	FeaturedOnly bool
	Limit        int
}

// Repository abstracts storage operations for testimonials.
type Repository interface {
	Create(ctx context.Context, record *Testimonial) (*Testimonial, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Testimonial, error)
	List(ctx context.Context, filter Filter) ([]*Testimonial, error)
	Update(ctx context.Context, record *Testimonial) (*Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs a testimonial service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit stores a new testimonial in the moderation queue.
func (s *service) Submit(ctx context.Context, submission Submission) (*Testimonial, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	record := &Testimonial{
		ID:        s.id(),
		Name:      strings.TrimSpace(submission.Name),
		Email:     strings.TrimSpace(submission.Email),
		Content:   strings.TrimSpace(submission.Content),
		Rating:    submission.Rating,
		Language:  i18n.Normalize(submission.Language),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("testimonial submitted", "id", created.ID, "rating", created.Rating)
	return created, nil
}

// Approve publishes a pending testimonial. Moderation decisions are final.
func (s *service) Approve(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	record, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	record.Status = StatusApproved
	record.ApprovedAt = &now
	record.UpdatedAt = now
	return s.repo.Update(ctx, record)
}

// Reject declines a pending testimonial, keeping the moderator's notes.
func (s *service) Reject(ctx context.Context, id uuid.UUID, notes string) (*Testimonial, error) {
	record, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	record.Status = StatusRejected
	record.ModerationNotes = strings.TrimSpace(notes)
	record.RejectedAt = &now
	record.UpdatedAt = now
	return s.repo.Update(ctx, record)
}

// SetFeatured toggles the homepage highlight on an approved testimonial.
func (s *service) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) (*Testimonial, error) {
	if id == uuid.Nil {
		return nil, ErrTestimonialIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status != StatusApproved {
		return nil, ErrAlreadyModerated
	}
	record.IsFeatured = featured
	record.UpdatedAt = s.now()
	return s.repo.Update(ctx, record)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrTestimonialIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	if id == uuid.Nil {
		return nil, ErrTestimonialIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListApproved(ctx context.Context, language string, limit int) ([]*Testimonial, error) {
	return s.repo.List(ctx, Filter{
		Status:   StatusApproved,
		Language: i18n.Normalize(language),
		Limit:    limit,
	})
}

func (s *service) ListFeatured(ctx context.Context, language string) ([]*Testimonial, error) {
	return s.repo.List(ctx, Filter{
		Status:       StatusApproved,
		Language:     i18n.Normalize(language),
		FeaturedOnly: true,
	})
}

func (s *service) ListPending(ctx context.Context) ([]*Testimonial, error) {
	return s.repo.List(ctx, Filter{Status: StatusPending})
}

// Stats averages the ratings of approved testimonials across languages.
func (s *service) Stats(ctx context.Context) (RatingStats, error) {
	approved, err := s.repo.List(ctx, Filter{Status: StatusApproved})
	if err != nil {
		return RatingStats{}, err
	}
	stats := RatingStats{Count: len(approved)}
	if stats.Count == 0 {
		return stats, nil
	}
	total := 0
	for _, record := range approved {
		total += record.Rating
	}
	stats.Average = float64(total) / float64(stats.Count)
	return stats, nil
}

func (s *service) pending(ctx context.Context, id uuid.UUID) (*Testimonial, error) {
	if id == uuid.Nil {
		return nil, ErrTestimonialIDRequired
	}
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status != StatusPending {
		return nil, ErrAlreadyModerated
	}
	return record, nil
}
