package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/storage"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImageStore keeps uploaded product photos; *storage.LocalImageStore in production.
type ImageStore interface {
	Save(r io.Reader, filename string) (string, error)
	Delete(url string) error
}

// ImageUpload is one opened multipart file.
type ImageUpload struct {
	Name string
	Body io.Reader
}

type ProductInput struct {
	ProductName string `form:"productName"`
	Description string `form:"description"`
	Price       string `form:"price"`
}

type ProductService struct {
	repo   *repository.ProductRepository
	images ImageStore
}

func NewProductService(repo *repository.ProductRepository, images ImageStore) *ProductService {
	return &ProductService{repo: repo, images: images}
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, apperr.Validation("Price must be a number")
	}
	return d, nil
}

// saveImages เก็บรูปทั้งหมด ถ้าพังกลางทางลบที่เก็บไปแล้ว
func (s *ProductService) saveImages(files []ImageUpload) ([]string, error) {
	if len(files) > storage.MaxImages {
		return nil, apperr.Validation(fmt.Sprintf("A maximum of %d images is allowed", storage.MaxImages))
	}
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.images.Save(f.Body, f.Name)
		if err != nil {
			s.dropImages(urls)
			if apperr.KindOf(err) == apperr.KindValidation {
				return nil, err
			}
			return nil, apperr.Internal(fmt.Errorf("save image %s: %w", f.Name, err))
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *ProductService) dropImages(urls []string) {
	for _, u := range urls {
		if err := s.images.Delete(u); err != nil {
			slog.Warn("image cleanup failed", "url", u, "error", err)
		}
	}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput, files []ImageUpload) (*entity.Product, error) {
	if len(files) == 0 {
		return nil, apperr.Validation("At least one or more image is required")
	}
	name := strings.TrimSpace(in.ProductName)
	desc := strings.TrimSpace(in.Description)
	if name == "" || desc == "" || strings.TrimSpace(in.Price) == "" {
		return nil, apperr.Validation("Product name, description and price are required")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	urls, err := s.saveImages(files)
	if err != nil {
		return nil, err
	}

	p := &entity.Product{ProductName: name, Description: desc, Price: price, Images: urls}
	if err := s.repo.Create(ctx, p); err != nil {
		s.dropImages(urls)
		return nil, apperr.Internal(fmt.Errorf("create product: %w", err))
	}
	return p, nil
}

// Update keeps old values for empty fields; images are replaced only when new
// ones are uploaded.
func (s *ProductService) Update(ctx context.Context, id uint, in ProductInput, files []ImageUpload) (*entity.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(in.ProductName); v != "" {
		p.ProductName = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		p.Description = v
	}
	if strings.TrimSpace(in.Price) != "" {
		price, err := parsePrice(in.Price)
		if err != nil {
			return nil, err
		}
		p.Price = price
	}

	var old []string
	if len(files) > 0 {
		urls, err := s.saveImages(files)
		if err != nil {
			return nil, err
		}
		old, p.Images = p.Images, urls
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if len(files) > 0 {
			s.dropImages(p.Images)
		}
		return nil, apperr.Internal(fmt.Errorf("update product %d: %w", id, err))
	}
	s.dropImages(old)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.Validation("No products IDs found for deletion")
	}
	n, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, apperr.Internal(fmt.Errorf("delete products: %w", err))
	}
	if n == 0 {
		return 0, apperr.NotFound("No product found to delete with the provided IDs")
	}
	return n, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found")
		}
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}
