package controllers

import (
	"fmt"
	"mime/multipart"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/resp"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct{ Products *services.ProductService }

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

// openImages เปิดไฟล์ field "image" ทั้งหมด; caller ต้องเรียก close
func openImages(c *gin.Context) ([]services.ImageUpload, func(), error) {
	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = form.File["image"]
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	out := make([]services.ImageUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		out = append(out, services.ImageUpload{Name: fh.Filename, Body: f})
	}
	return out, closeAll, nil
}

// POST /api/product/create-product (multipart)
func (pc *ProductController) Create(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, "Invalid form data")
		return
	}
	images, closeAll, err := openImages(c)
	if err != nil {
		resp.BadRequest(c, "Could not read uploaded image")
		return
	}
	defer closeAll()

	product, err := pc.Products.Create(c.Request.Context(), in, images)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "Product created successfully", "product", product)
}

// PUT /api/product/update-product/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.ProductInput
	if err := c.ShouldBind(&in); err != nil {
		resp.BadRequest(c, "Invalid form data")
		return
	}
	images, closeAll, err := openImages(c)
	if err != nil {
		resp.BadRequest(c, "Could not read uploaded image")
		return
	}
	defer closeAll()

	product, err := pc.Products.Update(c.Request.Context(), id, in, images)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Updated successfully", "product", product)
}

type deleteProductsReq struct {
	IDs []uint `json:"ids"`
}

// POST /api/product/delete-product
func (pc *ProductController) DeleteMany(c *gin.Context) {
	var req deleteProductsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}
	n, err := pc.Products.Delete(c.Request.Context(), req.IDs)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, fmt.Sprintf("%d products deleted successfully", n))
}

// GET /api/product/one-product/:id
func (pc *ProductController) GetOne(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	product, err := pc.Products.Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "Product gotten successful", "product", product)
}

// GET /api/product/all-product
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Products.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "All products fetched", "product", products)
}
