package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/abdhesh369/my-portfolio/cache"
	"github.com/abdhesh369/my-portfolio/models"
)

type Database struct {
	projectRepo    *ProjectRepo
	skillRepo      *SkillRepo
	experienceRepo *ExperienceRepo
	messageRepo    *MessageRepo
}

// Options tunes the repositories. The zero value uses the default cache TTL
// and the wall clock; a negative CacheTTL turns the read cache off.
type Options struct {
	CacheTTL time.Duration
	// CacheObserver, if set, is asked for a hit/miss callback per cached table.
	CacheObserver func(table string) func(hit bool)
	Now           func() time.Time
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB, opts Options) Database {
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}

	return Database{
		projectRepo:    NewProjectRepo(db),
		skillRepo:      NewSkillRepo(db, cache.New[models.Skill](ttl, cacheOptions(opts, "skills")...)),
		experienceRepo: NewExperienceRepo(db, cache.New[models.Experience](ttl, cacheOptions(opts, "experiences")...)),
		messageRepo:    NewMessageRepo(db, opts.Now),
	}
}

func cacheOptions(opts Options, table string) []cache.Option {
	var out []cache.Option
	if opts.Now != nil {
		out = append(out, cache.WithClock(opts.Now))
	}
	if opts.CacheObserver != nil {
		out = append(out, cache.WithObserver(opts.CacheObserver(table)))
	}
	return out
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

// Migrate creates or extends the four portfolio tables.
func (d Database) Migrate() error {
	return models.AutoMigrate(d.projectRepo.GetDB())
}

// Transaction runs fn against repositories bound to a single transaction. The
// read caches are shared with d and invalidated once the transaction ends,
// whether it committed or not.
func (d Database) Transaction(ctx context.Context, fn func(tx Database) error) error {
	defer d.experienceRepo.cache.Invalidate()
	defer d.skillRepo.cache.Invalidate()

	return d.projectRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Database{
			projectRepo:    NewProjectRepo(tx),
			skillRepo:      NewSkillRepo(tx, d.skillRepo.cache),
			experienceRepo: NewExperienceRepo(tx, d.experienceRepo.cache),
			messageRepo:    NewMessageRepo(tx, d.messageRepo.now),
		})
	})
}
