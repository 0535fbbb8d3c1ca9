package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/dtos"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

type BlogService struct {
	DB *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{DB: db}
}

// slugify turns a title into a URL slug: lowercase, runs of non-alphanumerics
// collapsed to single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (s *BlogService) Create(authorID uint, req *dtos.BlogPostRequest) (*models.BlogPost, error) {
	post := models.BlogPost{
		AuthorID:    authorID,
		Title:       req.Title,
		Slug:        slugify(req.Title),
		Content:     req.Content,
		IsPublished: req.IsPublished,
	}
	err := s.DB.Create(&post).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update edits a post in place. The slug is kept stable so published links
// do not break when a title is reworded.
func (s *BlogService) Update(postID uint, req *dtos.BlogPostRequest) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.DB.First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.IsPublished = req.IsPublished
	if err := s.DB.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *BlogService) Delete(postID uint) error {
	res := s.DB.Delete(&models.BlogPost{}, postID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BlogService) ListPublished() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := s.DB.Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (s *BlogService) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.DB.Where("slug = ? AND is_published = ?", slug, true).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}
