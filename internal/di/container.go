package di

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/content"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/faq"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/logging"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/logging/gologger"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/packages"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/runtimeconfig"
	platformscheduler "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/scheduler"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/internal/testimonials"
	"github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"
)

// ErrDatabaseRequired is returned when the bun storage provider is selected
// without supplying a database handle.
var ErrDatabaseRequired = errors.New("di: bun storage provider requires a database")

// Container wires repositories and services according to the runtime
// configuration. Construct it once at startup and share it.
type Container struct {
	cfg            runtimeconfig.Config
	db             *bun.DB
	clock          func() time.Time
	loggerProvider interfaces.LoggerProvider
	scheduler      interfaces.Scheduler

	posts        content.Service
	categories   content.CategoryService
	packageSvc   packages.Service
	faqSvc       faq.Service
	testimonySvc testimonials.Service
}

// Option customizes container construction.
type Option func(*Container)

// WithDB supplies the bun database handle used by the bun storage provider.
func WithDB(db *bun.DB) Option {
	return func(c *Container) {
		c.db = db
	}
}

// WithClock overrides the clock shared by every service.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLoggerProvider overrides the logging backend.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithScheduler overrides the scheduler used for publish automation.
func WithScheduler(scheduler interfaces.Scheduler) Option {
	return func(c *Container) {
		if scheduler != nil {
			c.scheduler = scheduler
		}
	}
}

// New validates the configuration and assembles the service graph.
func New(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		cfg:   cfg,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}
	if c.scheduler == nil {
		if cfg.Features.Scheduling {
			c.scheduler = platformscheduler.NewInMemory(platformscheduler.WithClock(c.clock))
		} else {
			c.scheduler = platformscheduler.NewNoOp()
		}
	}

	postRepo, categoryRepo, packageRepo, faqRepo, testimonialRepo, err := c.buildRepositories()
	if err != nil {
		return nil, err
	}

	c.posts = content.NewService(postRepo,
		content.WithClock(c.clock),
		content.WithLogger(c.loggerProvider.GetLogger("content")),
		content.WithScheduler(c.scheduler),
		content.WithFallbackContent(cfg.Features.DefaultContent),
	)
	c.categories = content.NewCategoryService(categoryRepo,
		content.WithCategoryClock(c.clock),
		content.WithCategoryLogger(c.loggerProvider.GetLogger("content")),
		content.WithCategoryFallbackContent(cfg.Features.DefaultContent),
	)
	if cfg.Features.Packages {
		c.packageSvc = packages.NewService(packageRepo,
			packages.WithClock(c.clock),
			packages.WithLogger(c.loggerProvider.GetLogger("packages")),
			packages.WithFallbackContent(cfg.Features.DefaultContent),
		)
	}
	if cfg.Features.FAQ {
		c.faqSvc = faq.NewService(faqRepo,
			faq.WithClock(c.clock),
			faq.WithLogger(c.loggerProvider.GetLogger("faq")),
		)
	}
	if cfg.Features.Testimonials {
		c.testimonySvc = testimonials.NewService(testimonialRepo,
			testimonials.WithClock(c.clock),
			testimonials.WithLogger(c.loggerProvider.GetLogger("testimonials")),
		)
	}

	return c, nil
}

func (c *Container) buildRepositories() (
	content.PostRepository,
	content.CategoryRepository,
	packages.Repository,
	faq.Repository,
	testimonials.Repository,
	error,
) {
	provider := strings.ToLower(strings.TrimSpace(c.cfg.Storage.Provider))
	switch provider {
	case "bun":
		if c.db == nil {
			return nil, nil, nil, nil, nil, ErrDatabaseRequired
		}
		return content.NewBunPostRepository(c.db),
			content.NewBunCategoryRepository(c.db),
			packages.NewBunRepository(c.db),
			faq.NewBunRepository(c.db),
			testimonials.NewBunRepository(c.db),
			nil
	case "", "memory":
		return content.NewMemoryPostRepository(),
			content.NewMemoryCategoryRepository(),
			packages.NewMemoryRepository(),
			faq.NewMemoryRepository(),
			testimonials.NewMemoryRepository(),
			nil
	default:
		return nil, nil, nil, nil, nil,
			fmt.Errorf("%w: %s", runtimeconfig.ErrStorageProviderUnknown, provider)
	}
}

func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return logging.NoOpProvider(), nil
	}
	format := cfg.Logging.Format
	if strings.EqualFold(strings.TrimSpace(cfg.Logging.Provider), "console") && format == "" {
		format = "console"
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    format,
		AddSource: cfg.Logging.AddSource,
	})
}

// Posts returns the blog post service.
func (c *Container) Posts() content.Service { return c.posts }

// Categories returns the blog category service.
func (c *Container) Categories() content.CategoryService { return c.categories }

// Packages returns the package catalogue service, nil when disabled.
func (c *Container) Packages() packages.Service { return c.packageSvc }

// FAQ returns the FAQ service, nil when disabled.
func (c *Container) FAQ() faq.Service { return c.faqSvc }

// Testimonials returns the testimonial service, nil when disabled.
func (c *Container) Testimonials() testimonials.Service { return c.testimonySvc }

// Scheduler exposes the publish scheduler.
func (c *Container) Scheduler() interfaces.Scheduler { return c.scheduler }

// Logger returns a named logger from the configured provider.
func (c *Container) Logger(name string) interfaces.Logger {
	return c.loggerProvider.GetLogger(name)
}
