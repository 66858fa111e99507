package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/catalog/comic-catalog-service/domain/entities"
	domainerrors "inkwell/contexts/catalog/comic-catalog-service/domain/errors"
	"inkwell/contexts/catalog/comic-catalog-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetComic(ctx context.Context, comicID string) (entities.Comic, error) {
	var row comicModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(comicID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comic{}, domainerrors.ErrComicNotFound
		}
		return entities.Comic{}, r.logError("catalog_repo_get_comic_failed", err,
			"comic_id", strings.TrimSpace(comicID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) GetComicBySlug(ctx context.Context, slug string) (entities.Comic, error) {
	var row comicModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", strings.TrimSpace(slug)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comic{}, domainerrors.ErrComicNotFound
		}
		return entities.Comic{}, r.logError("catalog_repo_get_comic_by_slug_failed", err,
			"slug", strings.TrimSpace(slug),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&comicModel{}).
		Where("slug = ?", strings.TrimSpace(slug)).
		Count(&count).Error; err != nil {
		return false, r.logError("catalog_repo_slug_taken_failed", err, "slug", strings.TrimSpace(slug))
	}
	return count > 0, nil
}

func (r *Repository) CreateComic(ctx context.Context, comic entities.Comic) error {
	row := comicModelFromEntity(comic)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrSlugTaken
		}
		return r.logError("catalog_repo_create_comic_failed", err, "comic_id", row.ID)
	}
	return nil
}

func (r *Repository) AdjustLikes(ctx context.Context, comicID string, delta int) (int, error) {
	comicID = strings.TrimSpace(comicID)
	result := r.db.WithContext(ctx).
		Model(&comicModel{}).
		Where("id = ?", comicID).
		Update("likes", gorm.Expr("GREATEST(likes + ?, 0)", delta))
	if result.Error != nil {
		return 0, r.logError("catalog_repo_adjust_likes_failed", result.Error, "comic_id", comicID)
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrComicNotFound
	}

	var row comicModel
	if err := r.db.WithContext(ctx).
		Select("likes").
		Where("id = ?", comicID).
		First(&row).Error; err != nil {
		return 0, r.logError("catalog_repo_reload_likes_failed", err, "comic_id", comicID)
	}
	return row.Likes, nil
}

func (r *Repository) CreateChapter(ctx context.Context, chapter entities.Chapter) error {
	row := chapterModelFromEntity(chapter)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("catalog_repo_create_chapter_failed", err,
			"chapter_id", row.ID,
			"comic_id", row.ComicID,
		)
	}
	return nil
}

func (r *Repository) GetChapter(ctx context.Context, chapterID string) (entities.Chapter, error) {
	var row chapterModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(chapterID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Chapter{}, domainerrors.ErrChapterNotFound
		}
		return entities.Chapter{}, r.logError("catalog_repo_get_chapter_failed", err,
			"chapter_id", strings.TrimSpace(chapterID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListChaptersByComic(ctx context.Context, comicID string) ([]entities.Chapter, error) {
	var rows []chapterModel
	if err := r.db.WithContext(ctx).
		Where("comic_id = ?", strings.TrimSpace(comicID)).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("catalog_repo_list_chapters_failed", err,
			"comic_id", strings.TrimSpace(comicID),
		)
	}
	items := make([]entities.Chapter, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "catalog/comic-catalog-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("catalog repository operation failed", fields...)
	return err
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type comicModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Slug      string    `gorm:"column:slug"`
	Name      string    `gorm:"column:name"`
	Author    string    `gorm:"column:author"`
	Content   string    `gorm:"column:content"`
	Status    string    `gorm:"column:status"`
	ThumbURL  string    `gorm:"column:thumb_url"`
	VIP       bool      `gorm:"column:vip"`
	Likes     int       `gorm:"column:likes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (comicModel) TableName() string {
	return "comics"
}

func comicModelFromEntity(comic entities.Comic) comicModel {
	row := comicModel{
		ID:        strings.TrimSpace(comic.ComicID),
		Slug:      strings.TrimSpace(comic.Slug),
		Name:      strings.TrimSpace(comic.Name),
		Author:    strings.TrimSpace(comic.Author),
		Content:   comic.Content,
		Status:    strings.TrimSpace(comic.Status),
		ThumbURL:  strings.TrimSpace(comic.ThumbURL),
		VIP:       comic.VIP,
		Likes:     comic.Likes,
		CreatedAt: comic.CreatedAt.UTC(),
		UpdatedAt: comic.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m comicModel) toEntity() entities.Comic {
	return entities.Comic{
		ComicID:   m.ID,
		Slug:      m.Slug,
		Name:      m.Name,
		Author:    m.Author,
		Content:   m.Content,
		Status:    m.Status,
		ThumbURL:  m.ThumbURL,
		VIP:       m.VIP,
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type chapterModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	ComicID   string    `gorm:"column:comic_id"`
	Name      string    `gorm:"column:name"`
	Path      string    `gorm:"column:path"`
	Images    string    `gorm:"column:images"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (chapterModel) TableName() string {
	return "chapters"
}

func chapterModelFromEntity(chapter entities.Chapter) chapterModel {
	row := chapterModel{
		ID:        strings.TrimSpace(chapter.ChapterID),
		ComicID:   strings.TrimSpace(chapter.ComicID),
		Name:      strings.TrimSpace(chapter.Name),
		Path:      strings.TrimSpace(chapter.Path),
		Images:    strings.Join(chapter.Images, "\n"),
		CreatedAt: chapter.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

func (m chapterModel) toEntity() entities.Chapter {
	var images []string
	if m.Images != "" {
		images = strings.Split(m.Images, "\n")
	}
	return entities.Chapter{
		ChapterID: m.ID,
		ComicID:   m.ComicID,
		Name:      m.Name,
		Path:      m.Path,
		Images:    images,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
